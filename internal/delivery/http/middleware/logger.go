package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/pkg/logger"
)

// Logger writes one access line per request once the handler chain has returned.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		l.Info("http - %s - %s %s %s - %d %dB - %dms",
			requestID(ctx),
			ctx.IP(),
			ctx.Method(),
			ctx.OriginalURL(),
			ctx.Response().StatusCode(),
			len(ctx.Response().Body()),
			time.Since(start).Milliseconds(),
		)

		return err
	}
}
