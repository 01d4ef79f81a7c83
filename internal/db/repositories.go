package db

import (
	"errors"

	"github.com/terraincognita07/plantdoc/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	Users       *UserRepository
	Predictions *PredictionRepository
	Chats       *ChatRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Predictions: NewPredictionRepository(database),
		Chats:       NewChatRepository(database),
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
