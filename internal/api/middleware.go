package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/models"
)

const (
	authCookieName     = "plantdoc_auth"
	languageCookieName = "plantdoc_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}

func currentUserID(c *fiber.Ctx) string {
	if user, ok := currentUser(c); ok {
		return user.ID
	}
	return ""
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
