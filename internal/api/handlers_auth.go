package api

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/models"
	"github.com/terraincognita07/plantdoc/internal/services"
)

type credentialsInput struct {
	Username   string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type userResponse struct {
	services.UserSummary
	Language string `json:"language,omitempty"`
}

func toUserResponse(user *models.User, language string) userResponse {
	return userResponse{
		UserSummary: services.UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		},
		Language: language,
	}
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	return input, nil
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "common.error.invalid_input")
	}

	user, err := handler.accounts.Register(credentials.Username, credentials.Password, false)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return handler.localizedError(c, fiber.StatusBadRequest, "common.error.invalid_input")
	case errors.Is(err, services.ErrInvalidUsername):
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.invalid_username")
	case errors.Is(err, services.ErrWeakPassword):
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.weak_password")
	case errors.Is(err, services.ErrUsernameTaken):
		return handler.localizedError(c, fiber.StatusConflict, "auth.error.username_taken")
	case err != nil:
		log.Printf("register %q failed: %v", credentials.Username, err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    toUserResponse(&user, ""),
		"message": handler.localizedMessage(c, "auth.success.registered"),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		wait := handler.loginLimiter.retryAfter(limiterKey, now, loginAttemptsWindow)
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(wait.Seconds())+1))
		return handler.localizedError(c, fiber.StatusTooManyRequests, "auth.error.too_many_attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "common.error.invalid_input")
	}

	user, err := handler.accounts.Login(credentials.Username, credentials.Password)
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.invalid_credentials")
	}
	if err != nil {
		log.Printf("login %q failed: %v", strings.TrimSpace(credentials.Username), err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"user": toUserResponse(&user, currentLanguage(c))})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true, "message": handler.localizedMessage(c, "auth.success.logged_out")})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(fiber.Map{"user": toUserResponse(user, currentLanguage(c))})
}
