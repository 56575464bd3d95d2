package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/internal/delivery/http/response"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := checkRole(c, allowedRoles); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

func checkRole(c *fiber.Ctx, allowedRoles []string) error {
	role, ok := c.Locals(constant.JwtFieldLevel).(string)
	if !ok {
		return failure.Unauthorized("role information not found")
	}

	if !slices.Contains(allowedRoles, role) {
		return failure.Forbidden("insufficient permissions")
	}

	return nil
}

// RequireRole protects routes with JWT and a role check.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c); err != nil {
			return response.WithError(c, err)
		}

		if err := checkRole(c, allowedRoles); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

// AdminOnly protects routes with JWT and Role check for admin role.
func AdminOnly() fiber.Handler {
	return RequireRole(constant.UserRoleAdmin)
}

// OwnerOnly admits venue owners and admins.
func OwnerOnly() fiber.Handler {
	return RequireRole(constant.UserRoleOwner, constant.UserRoleAdmin)
}
