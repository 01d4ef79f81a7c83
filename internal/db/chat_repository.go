package db

import (
	"github.com/terraincognita07/plantdoc/internal/models"
	"gorm.io/gorm"
)

type ChatRepository struct {
	database *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{database: database}
}

func (repo *ChatRepository) Create(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}

func (repo *ChatRepository) ListByUser(userID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatRepository) ListAll() ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatRepository) DeleteByID(chatID string) (bool, error) {
	result := repo.database.Where("id = ?", chatID).Delete(&models.ChatMessage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ChatRepository) DeleteByIDForUser(chatID string, userID string) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", chatID, userID).Delete(&models.ChatMessage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ChatRepository) DeleteByUser(userID string) (int64, error) {
	result := repo.database.Where("user_id = ?", userID).Delete(&models.ChatMessage{})
	return result.RowsAffected, result.Error
}
