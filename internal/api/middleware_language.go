package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/i18n"
	"github.com/terraincognita07/plantdoc/internal/translate"
)

// LanguageMiddleware picks the reply language from the language cookie, then
// Accept-Language, then the configured default.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.detectLanguage(c.Get("Accept-Language"))
	if cookieLanguage, ok := supportedLanguage(c.Cookies(languageCookieName)); ok {
		language = cookieLanguage
	}
	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) detectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		if language, ok := supportedLanguage(token); ok {
			return language
		}
	}
	return handler.i18n.DefaultLanguage()
}

func supportedLanguage(raw string) (string, bool) {
	language := i18n.NormalizeTag(raw)
	return language, translate.IsSupported(language)
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().AddDate(1, 0, 0),
	})
}
