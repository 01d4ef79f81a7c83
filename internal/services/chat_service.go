package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/plantdoc/internal/models"
)

var (
	ErrEmptyChatMessage = errors.New("empty chat message")
	ErrChatNotFound     = errors.New("chat not found")
)

const DefaultLanguage = "en"

type Translator interface {
	Translate(ctx context.Context, text string, source string, target string) (string, error)
}

type ReplyResolver interface {
	Resolve(ctx context.Context, input string, language string) string
}

type ChatRepository interface {
	Create(message *models.ChatMessage) error
	ListByUser(userID string) ([]models.ChatMessage, error)
	ListAll() ([]models.ChatMessage, error)
	DeleteByID(chatID string) (bool, error)
	DeleteByIDForUser(chatID string, userID string) (bool, error)
	DeleteByUser(userID string) (int64, error)
}

type ChatService struct {
	chats      ChatRepository
	resolver   ReplyResolver
	translator Translator
	now        func() time.Time
}

func NewChatService(chats ChatRepository, resolver ReplyResolver, translator Translator) *ChatService {
	return &ChatService{
		chats:      chats,
		resolver:   resolver,
		translator: translator,
		now:        time.Now,
	}
}

// Ask answers a message written in language. Matching runs on an English
// rendering of the message and the reply comes back in language. The exchange
// is stored only for a known user.
func (service *ChatService) Ask(ctx context.Context, userID string, message string, language string) (models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, ErrEmptyChatMessage
	}
	language = normalizeLanguage(language)

	englishInput := message
	if language != DefaultLanguage && service.translator != nil {
		translated, err := service.translator.Translate(ctx, message, language, DefaultLanguage)
		if err != nil {
			log.Printf("chat: translate input from %s failed: %v", language, err)
		} else {
			englishInput = translated
		}
	}

	chat := models.ChatMessage{
		ID:          uuid.NewString(),
		UserID:      strings.TrimSpace(userID),
		UserMessage: message,
		BotReply:    service.resolver.Resolve(ctx, englishInput, language),
		Language:    language,
		CreatedAt:   service.now().UTC(),
	}
	if chat.UserID == "" {
		return chat, nil
	}
	if err := service.chats.Create(&chat); err != nil {
		return models.ChatMessage{}, fmt.Errorf("save chat: %w", err)
	}
	return chat, nil
}

func (service *ChatService) ListForUser(userID string) ([]models.ChatMessage, error) {
	chats, err := service.chats.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (service *ChatService) DeleteForUser(userID string, chatID string) error {
	removed, err := service.chats.DeleteByIDForUser(chatID, userID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if !removed {
		return ErrChatNotFound
	}
	return nil
}

func (service *ChatService) ListAll() ([]models.ChatMessage, error) {
	chats, err := service.chats.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (service *ChatService) Delete(chatID string) error {
	removed, err := service.chats.DeleteByID(chatID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if !removed {
		return ErrChatNotFound
	}
	return nil
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// localizeText translates English text for display and keeps the English text
// when translation fails.
func localizeText(ctx context.Context, translator Translator, text string, language string) string {
	if translator == nil || text == "" || normalizeLanguage(language) == DefaultLanguage {
		return text
	}
	translated, err := translator.Translate(ctx, text, DefaultLanguage, language)
	if err != nil {
		log.Printf("translate to %s failed: %v", language, err)
		return text
	}
	return translated
}
