package filestore

import (
	"github.com/samber/lo"
	"github.com/terraincognita07/plantdoc/internal/models"
)

type ChatRepository struct {
	file *jsonFile[[]models.ChatMessage]
}

func NewChatRepository(path string) *ChatRepository {
	return &ChatRepository{file: newJSONFile[[]models.ChatMessage](path)}
}

func (repo *ChatRepository) Create(message *models.ChatMessage) error {
	return repo.file.mutate(func(messages *[]models.ChatMessage) (bool, error) {
		*messages = append(*messages, *message)
		return true, nil
	})
}

func (repo *ChatRepository) ListByUser(userID string) ([]models.ChatMessage, error) {
	messages, err := repo.file.read()
	if err != nil {
		return nil, err
	}
	return lo.Filter(messages, func(message models.ChatMessage, _ int) bool {
		return message.UserID == userID
	}), nil
}

func (repo *ChatRepository) ListAll() ([]models.ChatMessage, error) {
	messages, err := repo.file.read()
	if err != nil {
		return nil, err
	}
	if messages == nil {
		return []models.ChatMessage{}, nil
	}
	return messages, nil
}

func (repo *ChatRepository) DeleteByID(chatID string) (bool, error) {
	removed, err := repo.removeWhere(func(message models.ChatMessage) bool {
		return message.ID == chatID
	})
	return removed > 0, err
}

func (repo *ChatRepository) DeleteByIDForUser(chatID string, userID string) (bool, error) {
	removed, err := repo.removeWhere(func(message models.ChatMessage) bool {
		return message.ID == chatID && message.UserID == userID
	})
	return removed > 0, err
}

func (repo *ChatRepository) DeleteByUser(userID string) (int64, error) {
	return repo.removeWhere(func(message models.ChatMessage) bool {
		return message.UserID == userID
	})
}

func (repo *ChatRepository) removeWhere(match func(models.ChatMessage) bool) (int64, error) {
	var removed int64
	err := repo.file.mutate(func(messages *[]models.ChatMessage) (bool, error) {
		kept := lo.Reject(*messages, func(message models.ChatMessage, _ int) bool {
			return match(message)
		})
		removed = int64(len(*messages) - len(kept))
		*messages = kept
		return removed > 0, nil
	})
	return removed, err
}
