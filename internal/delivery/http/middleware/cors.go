package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/savioruz/kickmatch/config"
	"github.com/savioruz/kickmatch/pkg/constant"
)

func CORS(cfg *config.Config) fiber.Handler {
	if !cfg.CORS.Enable {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     withSessionHeader(cfg.CORS.AllowedHeaders),
		AllowCredentials: cfg.CORS.AllowCredentials,
		ExposeHeaders:    strings.Join([]string{HeaderRequestID, constant.RequestHeaderSessionID}, ","),
		MaxAge:           cfg.CORS.MaxAgeSeconds,
	})
}

// withSessionHeader makes sure browsers may send the catalog session header.
func withSessionHeader(headers string) string {
	if headers == "" || strings.Contains(strings.ToLower(headers), strings.ToLower(constant.RequestHeaderSessionID)) {
		return headers
	}

	return headers + "," + constant.RequestHeaderSessionID
}
