package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

// OptionalAuth attaches the user when a valid session exists and lets
// anonymous requests through.
func (handler *Handler) OptionalAuth(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
	}
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	if !user.IsAdmin {
		return handler.localizedError(c, fiber.StatusForbidden, "auth.error.admin_required")
	}
	return c.Next()
}
