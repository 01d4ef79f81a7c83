package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/services"
)

type chatInput struct {
	Message string `json:"message" form:"message"`
}

func (handler *Handler) Ask(c *fiber.Ctx) error {
	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "common.error.invalid_input")
	}

	chat, err := handler.chats.Ask(c.UserContext(), currentUserID(c), input.Message, currentLanguage(c))
	if errors.Is(err, services.ErrEmptyChatMessage) {
		return handler.localizedError(c, fiber.StatusBadRequest, "chat.error.empty")
	}
	if err != nil {
		log.Printf("chat: %v", err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	status := fiber.StatusOK
	if chat.UserID != "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"chat": chat, "saved": chat.UserID != ""})
}

func (handler *Handler) ListChats(c *fiber.Ctx) error {
	chats, err := handler.chats.ListForUser(currentUserID(c))
	if err != nil {
		log.Printf("list chats: %v", err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"chats": chats})
}

func (handler *Handler) DeleteChat(c *fiber.Ctx) error {
	err := handler.chats.DeleteForUser(currentUserID(c), c.Params("id"))
	if errors.Is(err, services.ErrChatNotFound) {
		return handler.localizedError(c, fiber.StatusNotFound, "chat.error.not_found")
	}
	if err != nil {
		log.Printf("delete chat: %v", err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"ok": true})
}
