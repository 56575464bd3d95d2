package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/kickmatch/pkg/constant"
)

const (
	HeaderRequestID = "X-Request-ID"
	RequestIDKey    = constant.LocalsRequestID
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(HeaderRequestID, id)
		c.Locals(RequestIDKey, id)

		return c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "unknown".
func GetRequestID(c *fiber.Ctx) string {
	return requestID(c)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
		return id
	}

	return "unknown"
}
