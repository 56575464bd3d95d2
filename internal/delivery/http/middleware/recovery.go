package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/savioruz/kickmatch/pkg/logger"
)

func logPanic(l logger.Interface) func(c *fiber.Ctx, err interface{}) {
	return func(ctx *fiber.Ctx, err interface{}) {
		l.Error("http - %s - %s %s - panic: %v\n%s", requestID(ctx), ctx.Method(), ctx.OriginalURL(), err, debug.Stack())
	}
}

func Recovery(l logger.Interface) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: logPanic(l),
	})
}
