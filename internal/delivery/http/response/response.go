package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// Error echoes the request id so clients can quote it when reporting a failure.
type Error struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func WithJSON(ctx *fiber.Ctx, code int, payload any) error {
	return send(ctx, code, Data[any]{Data: payload})
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return send(ctx, code, Message{Message: message})
}

// WithError derives the status from the failure code; unknown errors become 500.
func WithError(ctx *fiber.Ctx, err error) error {
	body := Error{Error: err.Error()}

	if id, ok := ctx.Locals(constant.LocalsRequestID).(string); ok {
		body.RequestID = id
	}

	return send(ctx, failure.GetCode(err), body)
}

func send(ctx *fiber.Ctx, code int, payload any) error {
	if code == fiber.StatusNoContent {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	return ctx.Status(code).JSON(payload)
}
