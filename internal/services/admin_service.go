package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/terraincognita07/plantdoc/internal/models"
)

var ErrSelfDeletion = errors.New("admin cannot delete own account")

type AdminUserRepository interface {
	FindByUsername(username string) (models.User, error)
	List() ([]models.User, error)
	DeleteByUsername(username string) (bool, error)
}

type UserDeletion struct {
	Username           string `json:"username"`
	PredictionsRemoved int64  `json:"predictions_removed"`
	ChatsRemoved       int64  `json:"chats_removed"`
}

type AdminService struct {
	users       AdminUserRepository
	predictions PredictionRepository
	chats       ChatRepository
}

func NewAdminService(users AdminUserRepository, predictions PredictionRepository, chats ChatRepository) *AdminService {
	return &AdminService{users: users, predictions: predictions, chats: chats}
}

func (service *AdminService) ListUsers() ([]UserSummary, error) {
	users, err := service.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return summarizeUsers(users), nil
}

// DeleteUser removes target's account and then, best effort, everything it
// owns. Cleanup failures are logged and leave orphans behind.
func (service *AdminService) DeleteUser(actor string, target string) (UserDeletion, error) {
	target = NormalizeUsername(target)
	if target == NormalizeUsername(actor) {
		return UserDeletion{}, ErrSelfDeletion
	}

	user, err := service.users.FindByUsername(target)
	if errors.Is(err, models.ErrNotFound) {
		return UserDeletion{}, ErrUserNotFound
	}
	if err != nil {
		return UserDeletion{}, fmt.Errorf("load user: %w", err)
	}

	removed, err := service.users.DeleteByUsername(target)
	if err != nil {
		return UserDeletion{}, fmt.Errorf("delete user: %w", err)
	}
	if !removed {
		return UserDeletion{}, ErrUserNotFound
	}

	result := UserDeletion{Username: target}
	if result.PredictionsRemoved, err = service.predictions.DeleteByUser(user.ID); err != nil {
		log.Printf("admin: delete predictions of %s failed: %v", target, err)
	}
	if result.ChatsRemoved, err = service.chats.DeleteByUser(user.ID); err != nil {
		log.Printf("admin: delete chats of %s failed: %v", target, err)
	}
	return result, nil
}

func (service *AdminService) ListPredictions() ([]models.Prediction, error) {
	predictions, err := service.predictions.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return predictions, nil
}

func (service *AdminService) DeletePrediction(predictionID string) error {
	removed, err := service.predictions.DeleteByID(predictionID)
	if err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}
	if !removed {
		return ErrPredictionNotFound
	}
	return nil
}

func (service *AdminService) ClearPredictions() (int64, error) {
	removed, err := service.predictions.DeleteAll()
	if err != nil {
		return 0, fmt.Errorf("clear predictions: %w", err)
	}
	return removed, nil
}

func (service *AdminService) ListChats() ([]models.ChatMessage, error) {
	chats, err := service.chats.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (service *AdminService) DeleteChat(chatID string) error {
	removed, err := service.chats.DeleteByID(chatID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if !removed {
		return ErrChatNotFound
	}
	return nil
}
