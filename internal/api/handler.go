// Package api exposes the plant doctor services as a JSON API over Fiber.
package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/plantdoc/internal/i18n"
	"github.com/terraincognita07/plantdoc/internal/plantdoctor"
	"github.com/terraincognita07/plantdoc/internal/services"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
	maxImageUploadBytes  = 10 << 20
)

type Dependencies struct {
	Accounts     *services.AccountService
	Chats        *services.ChatService
	Predictions  *services.PredictionService
	Admin        *services.AdminService
	Knowledge    *plantdoctor.KnowledgeBase
	I18n         *i18n.Manager
	SecretKey    string
	CookieSecure bool
}

type Handler struct {
	accounts     *services.AccountService
	chats        *services.ChatService
	predictions  *services.PredictionService
	admin        *services.AdminService
	knowledge    *plantdoctor.KnowledgeBase
	i18n         *i18n.Manager
	secretKey    []byte
	cookieSecure bool
	loginLimiter *attemptLimiter
	now          func() time.Time
}

func NewHandler(deps Dependencies) (*Handler, error) {
	switch {
	case deps.Accounts == nil || deps.Chats == nil || deps.Predictions == nil || deps.Admin == nil:
		return nil, errors.New("services are required")
	case deps.Knowledge == nil:
		return nil, errors.New("knowledge base is required")
	case deps.I18n == nil:
		return nil, errors.New("i18n manager is required")
	case deps.SecretKey == "":
		return nil, errors.New("secret key is required")
	}

	return &Handler{
		accounts:     deps.Accounts,
		chats:        deps.Chats,
		predictions:  deps.Predictions,
		admin:        deps.Admin,
		knowledge:    deps.Knowledge,
		i18n:         deps.I18n,
		secretKey:    []byte(deps.SecretKey),
		cookieSecure: deps.CookieSecure,
		loginLimiter: newAttemptLimiter(),
		now:          time.Now,
	}, nil
}
