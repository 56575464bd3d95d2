package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/kickmatch/config"
	"github.com/savioruz/kickmatch/internal/delivery/http"
	"github.com/savioruz/kickmatch/internal/domains/venues/catalog"
	"github.com/savioruz/kickmatch/internal/domains/venues/places"
	"github.com/savioruz/kickmatch/pkg/clock"
	"github.com/savioruz/kickmatch/pkg/helper"
	"github.com/savioruz/kickmatch/pkg/httpserver"
	"github.com/savioruz/kickmatch/pkg/jwt"
	"github.com/savioruz/kickmatch/pkg/logger"
	"github.com/savioruz/kickmatch/pkg/postgres"
	"github.com/savioruz/kickmatch/pkg/redis"
	"github.com/savioruz/kickmatch/pkg/storage"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Scheduler  *Scheduler
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

// provideClock also fixes the process wide timezone used for booking days and slot labels.
func provideClock(cfg *config.Config) clock.Clock {
	helper.InitTimezone(cfg.App.Timezone)

	return clock.New(helper.Location())
}

func provideJWT(cfg *config.Config) (*jwt.JWT, error) {
	expiry, err := jwt.ParseDuration(cfg.JWT.TokenExpiry)
	if err != nil {
		return nil, err
	}

	jwt.Initialize(cfg.JWT.Issuer, cfg.JWT.Secret, expiry)

	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.DSN{
		Host:            cfg.Pg.Host,
		Port:            cfg.Pg.Port,
		User:            cfg.Pg.User,
		Password:        cfg.Pg.Password,
		Database:        cfg.Pg.Dbname,
		SSLMode:         cfg.Pg.SSLMode,
		Timezone:        cfg.Pg.Timezone,
		ApplicationName: cfg.App.Name,
	}

	return postgres.New(dsn.String(),
		postgres.MaxPoolSize(cfg.Pg.PoolMax),
		postgres.ConnAttempts(cfg.Pg.ConnAttempts),
		postgres.ConnTimeout(time.Duration(cfg.Pg.ConnTimeoutSeconds)*time.Second),
		postgres.WithLogger(l),
	)
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pgx()
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr,
		redis.Password(cfg.Redis.Password),
		redis.DB(cfg.Redis.DB),
		redis.PoolSize(cfg.Redis.PoolSize),
	)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r, l)
}

func provideStorage(cfg *config.Config) (storage.Interface, error) {
	return storage.NewClient(context.Background(), storage.Config{
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		EndpointURL:     cfg.Storage.EndpointURL,
		PublicURL:       cfg.Storage.PublicURL,
		Region:          cfg.Storage.Region,
		BucketName:      cfg.Storage.BucketName,
	})
}

func providePlacesClient(cfg *config.Config, l logger.Interface) places.Client {
	return places.NewGeoapifyClient(places.Config{
		BaseURL:        cfg.Places.BaseURL,
		APIKey:         cfg.Places.APIKey,
		RadiusMeters:   cfg.Places.RadiusMeters,
		Limit:          cfg.Places.Limit,
		ConnectTimeout: time.Duration(cfg.Places.ConnTimeoutMS) * time.Millisecond,
		ReadTimeout:    time.Duration(cfg.Places.ReadTimeoutMS) * time.Millisecond,
	}, l)
}

func provideCatalogRegistry(cfg *config.Config, c clock.Clock) *catalog.Registry {
	return catalog.NewRegistry(c, time.Duration(cfg.Catalog.SessionIdleMinutes)*time.Minute)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	srv := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.AppName(cfg.App.Name),
	)

	http.NewRouter(srv.App, cfg, l, h)

	return srv
}
