package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/services"
)

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := handler.admin.ListUsers()
	if err != nil {
		return handler.adminFailure(c, "list users", err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (handler *Handler) AdminDeleteUser(c *fiber.Ctx) error {
	actor, _ := currentUser(c)
	result, err := handler.admin.DeleteUser(actor.Username, c.Params("username"))
	switch {
	case errors.Is(err, services.ErrSelfDeletion):
		return handler.localizedError(c, fiber.StatusForbidden, "admin.error.self_deletion")
	case errors.Is(err, services.ErrUserNotFound):
		return handler.localizedError(c, fiber.StatusNotFound, "admin.error.user_not_found")
	case err != nil:
		return handler.adminFailure(c, "delete user", err)
	}
	return c.JSON(result)
}

func (handler *Handler) AdminListPredictions(c *fiber.Ctx) error {
	predictions, err := handler.admin.ListPredictions()
	if err != nil {
		return handler.adminFailure(c, "list predictions", err)
	}
	return c.JSON(fiber.Map{"predictions": predictions})
}

func (handler *Handler) AdminDeletePrediction(c *fiber.Ctx) error {
	err := handler.admin.DeletePrediction(c.Params("id"))
	if errors.Is(err, services.ErrPredictionNotFound) {
		return handler.localizedError(c, fiber.StatusNotFound, "prediction.error.not_found")
	}
	if err != nil {
		return handler.adminFailure(c, "delete prediction", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AdminClearPredictions(c *fiber.Ctx) error {
	removed, err := handler.admin.ClearPredictions()
	if err != nil {
		return handler.adminFailure(c, "clear predictions", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (handler *Handler) AdminListChats(c *fiber.Ctx) error {
	chats, err := handler.admin.ListChats()
	if err != nil {
		return handler.adminFailure(c, "list chats", err)
	}
	return c.JSON(fiber.Map{"chats": chats})
}

func (handler *Handler) AdminDeleteChat(c *fiber.Ctx) error {
	err := handler.admin.DeleteChat(c.Params("id"))
	if errors.Is(err, services.ErrChatNotFound) {
		return handler.localizedError(c, fiber.StatusNotFound, "chat.error.not_found")
	}
	if err != nil {
		return handler.adminFailure(c, "delete chat", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) adminFailure(c *fiber.Ctx, action string, err error) error {
	log.Printf("admin %s: %v", action, err)
	return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
}
