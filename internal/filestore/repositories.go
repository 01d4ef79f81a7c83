package filestore

import "path/filepath"

const (
	UsersFileName       = "users.json"
	PredictionsFileName = "predictions.json"
	ChatsFileName       = "chats.json"
)

type Repositories struct {
	Users       *UserRepository
	Predictions *PredictionRepository
	Chats       *ChatRepository
}

func NewRepositories(dataDir string) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(filepath.Join(dataDir, UsersFileName)),
		Predictions: NewPredictionRepository(filepath.Join(dataDir, PredictionsFileName)),
		Chats:       NewChatRepository(filepath.Join(dataDir, ChatsFileName)),
	}
}
