package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/plantdoc/internal/classifier"
	"github.com/terraincognita07/plantdoc/internal/models"
)

type memoryUsers struct {
	users []models.User
}

func (repo *memoryUsers) FindByUsername(username string) (models.User, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (repo *memoryUsers) FindByID(userID string) (models.User, error) {
	for _, user := range repo.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (repo *memoryUsers) ExistsByUsername(username string) (bool, error) {
	_, err := repo.FindByUsername(username)
	return err == nil, nil
}

func (repo *memoryUsers) AnyAdmin() (bool, error) {
	for _, user := range repo.users {
		if user.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryUsers) Create(user *models.User) error {
	repo.users = append(repo.users, *user)
	return nil
}

func (repo *memoryUsers) List() ([]models.User, error) {
	return append([]models.User(nil), repo.users...), nil
}

func (repo *memoryUsers) UpdatePassword(userID string, passwordHash string) error {
	for index := range repo.users {
		if repo.users[index].ID == userID {
			repo.users[index].PasswordHash = passwordHash
			return nil
		}
	}
	return models.ErrNotFound
}

func (repo *memoryUsers) DeleteByUsername(username string) (bool, error) {
	for index, user := range repo.users {
		if user.Username == username {
			repo.users = append(repo.users[:index], repo.users[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memoryPredictions struct {
	predictions     []models.Prediction
	deleteByUserErr error
}

func (repo *memoryPredictions) Create(prediction *models.Prediction) error {
	repo.predictions = append(repo.predictions, *prediction)
	return nil
}

func (repo *memoryPredictions) ListByUser(userID string) ([]models.Prediction, error) {
	result := make([]models.Prediction, 0)
	for _, prediction := range repo.predictions {
		if prediction.UserID == userID {
			result = append(result, prediction)
		}
	}
	return result, nil
}

func (repo *memoryPredictions) ListAll() ([]models.Prediction, error) {
	return append([]models.Prediction(nil), repo.predictions...), nil
}

func (repo *memoryPredictions) DeleteByID(predictionID string) (bool, error) {
	removed := repo.removeWhere(func(prediction models.Prediction) bool { return prediction.ID == predictionID })
	return removed > 0, nil
}

func (repo *memoryPredictions) DeleteByUser(userID string) (int64, error) {
	if repo.deleteByUserErr != nil {
		return 0, repo.deleteByUserErr
	}
	return repo.removeWhere(func(prediction models.Prediction) bool { return prediction.UserID == userID }), nil
}

func (repo *memoryPredictions) DeleteAll() (int64, error) {
	return repo.removeWhere(func(models.Prediction) bool { return true }), nil
}

func (repo *memoryPredictions) removeWhere(match func(models.Prediction) bool) int64 {
	kept := repo.predictions[:0]
	var removed int64
	for _, prediction := range repo.predictions {
		if match(prediction) {
			removed++
			continue
		}
		kept = append(kept, prediction)
	}
	repo.predictions = kept
	return removed
}

type memoryChats struct {
	chats []models.ChatMessage
}

func (repo *memoryChats) Create(message *models.ChatMessage) error {
	repo.chats = append(repo.chats, *message)
	return nil
}

func (repo *memoryChats) ListByUser(userID string) ([]models.ChatMessage, error) {
	result := make([]models.ChatMessage, 0)
	for _, chat := range repo.chats {
		if chat.UserID == userID {
			result = append(result, chat)
		}
	}
	return result, nil
}

func (repo *memoryChats) ListAll() ([]models.ChatMessage, error) {
	return append([]models.ChatMessage(nil), repo.chats...), nil
}

func (repo *memoryChats) DeleteByID(chatID string) (bool, error) {
	return repo.removeWhere(func(chat models.ChatMessage) bool { return chat.ID == chatID }) > 0, nil
}

func (repo *memoryChats) DeleteByIDForUser(chatID string, userID string) (bool, error) {
	return repo.removeWhere(func(chat models.ChatMessage) bool {
		return chat.ID == chatID && chat.UserID == userID
	}) > 0, nil
}

func (repo *memoryChats) DeleteByUser(userID string) (int64, error) {
	return repo.removeWhere(func(chat models.ChatMessage) bool { return chat.UserID == userID }), nil
}

func (repo *memoryChats) removeWhere(match func(models.ChatMessage) bool) int64 {
	kept := repo.chats[:0]
	var removed int64
	for _, chat := range repo.chats {
		if match(chat) {
			removed++
			continue
		}
		kept = append(kept, chat)
	}
	repo.chats = kept
	return removed
}

type prefixTranslator struct {
	calls []string
	err   error
}

func (translator *prefixTranslator) Translate(_ context.Context, text string, source string, target string) (string, error) {
	translator.calls = append(translator.calls, source+">"+target)
	if translator.err != nil {
		return "", translator.err
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

type recordingResolver struct {
	inputs    []string
	languages []string
	reply     string
}

func (resolver *recordingResolver) Resolve(_ context.Context, input string, language string) string {
	resolver.inputs = append(resolver.inputs, input)
	resolver.languages = append(resolver.languages, language)
	return resolver.reply
}

type fixedClassifier struct {
	index int
	err   error
	calls int
}

func (stub *fixedClassifier) Classify(context.Context, classifier.Tensor) (int, error) {
	stub.calls++
	return stub.index, stub.err
}

type memoryArchive struct {
	objects map[string][]byte
	err     error
}

func (archive *memoryArchive) Put(_ context.Context, key string, _ string, data []byte) error {
	if archive.err != nil {
		return archive.err
	}
	if archive.objects == nil {
		archive.objects = map[string][]byte{}
	}
	archive.objects[key] = data
	return nil
}

var errStoreOffline = errors.New("store offline")

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}
