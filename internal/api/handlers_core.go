package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/translate"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language, ok := supportedLanguage(c.Params("lang"))
	if !ok {
		return handler.localizedError(c, fiber.StatusBadRequest, "lang.error.unsupported")
	}
	handler.setLanguageCookie(c, language)

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"language": language})
	}
	return c.Redirect(sanitizeRedirectPath(c.Query("next"), "/"), fiber.StatusSeeOther)
}

func (handler *Handler) Languages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages": translate.Languages(),
		"current":   currentLanguage(c),
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
