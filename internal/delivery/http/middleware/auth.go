package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/internal/delivery/http/response"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/gdto"
	"github.com/savioruz/kickmatch/pkg/jwt"
)

func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

func authenticate(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return failure.Unauthorized("missing authorization header")
	}

	token, ok := bearer(authHeader)
	if !ok {
		return failure.Unauthorized("invalid authorization header format")
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return failure.Unauthorized("invalid token")
	}

	setClaims(c, claims)

	return nil
}

// OptionalJwt reads the caller identity when a valid bearer token is present and lets anonymous requests through.
func OptionalJwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearer(c.Get(fiber.HeaderAuthorization)); ok {
			if claims, err := jwt.ValidateToken(token); err == nil {
				setClaims(c, claims)
			}
		}

		return c.Next()
	}
}

// Actor returns the authenticated caller stored by Jwt.
func Actor(c *fiber.Ctx) (gdto.Actor, error) {
	userID, ok := c.Locals(constant.JwtFieldUser).(string)
	if !ok || userID == "" {
		return gdto.Actor{}, failure.Unauthorized(constant.ErrInvalidContextUserType.Error())
	}

	role, _ := c.Locals(constant.JwtFieldLevel).(string)

	return gdto.Actor{UserID: userID, Role: role}, nil
}

func bearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	if claims == nil {
		return
	}

	c.Locals(constant.JwtFieldUser, claims.ID)
	c.Locals(constant.JwtFieldEmail, claims.Email)
	c.Locals(constant.JwtFieldLevel, claims.Level)
}
