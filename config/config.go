package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App      App
		CORS     CORS
		Cache    Cache
		HTTP     HTTP
		Log      Log
		Pg       Pg
		Redis    Redis
		Swagger  Swagger
		Schedule Schedule
		JWT      JWT
		Places   Places
		Catalog  Catalog
		Storage  Storage
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"America/Bogota"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration       int `env:"CACHE_DURATIONS,required"`
		SearchDuration int `env:"CACHE_SEARCH_DURATIONS" envDefault:"300"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT,required"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required" envDefault:"info"`
	}

	Pg struct {
		PoolMax  int    `env:"PG_POOL_MAX,required"`
		Host     string `env:"PG_HOST,required"`
		Port     int    `env:"PG_PORT,required"`
		User     string `env:"PG_USER"`
		Password string `env:"PG_PASSWORD"`
		Dbname   string `env:"PG_DATABASE,required"`
		SSLMode  string `env:"PG_SSLMODE,required"`
		Timezone string `env:"PG_TIMEZONE" envDefault:"UTC"`

		ConnAttempts       int `env:"PG_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeoutSeconds int `env:"PG_CONN_TIMEOUT_SECONDS" envDefault:"5"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
		PoolSize int    `env:"REDIS_POOL_SIZE"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		BookingsCompletion string `env:"SCHEDULE_BOOKINGS_COMPLETION" envDefault:"@every 15m"`
		SessionsSweep      string `env:"SCHEDULE_SESSIONS_SWEEP" envDefault:"@every 5m"`
	}

	JWT struct {
		Issuer      string `env:"JWT_ISSUER" envDefault:"kickmatch"`
		Secret      string `env:"JWT_SECRET,required"`
		TokenExpiry string `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"24h"`
	}

	Places struct {
		APIKey        string `env:"PLACES_API_KEY"`
		BaseURL       string `env:"PLACES_BASE_URL" envDefault:"https://api.geoapify.com/v2/places"`
		RadiusMeters  int    `env:"PLACES_RADIUS_METERS" envDefault:"15000"`
		Limit         int    `env:"PLACES_LIMIT" envDefault:"20"`
		ConnTimeoutMS int    `env:"PLACES_CONNECT_TIMEOUT_MS" envDefault:"10000"`
		ReadTimeoutMS int    `env:"PLACES_READ_TIMEOUT_MS" envDefault:"10000"`
	}

	Catalog struct {
		SessionIdleMinutes int `env:"CATALOG_SESSION_IDLE_MINUTES" envDefault:"30"`
	}

	Storage struct {
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID,required"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY,required"`
		EndpointURL     string `env:"STORAGE_ENDPOINT_URL"`
		PublicURL       string `env:"STORAGE_PUBLIC_URL"`
		Region          string `env:"STORAGE_REGION" envDefault:"us-east-1"`
		BucketName      string `env:"STORAGE_BUCKET_NAME,required"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
