package filestore

import (
	"errors"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/terraincognita07/plantdoc/internal/models"
)

var ErrDuplicateUsername = errors.New("username already stored")

// userRecord is the value stored under each username key in the users file.
type userRecord struct {
	ID           string    `json:"id"`
	PasswordHash string    `json:"password_hash"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type userTable map[string]userRecord

type UserRepository struct {
	file *jsonFile[userTable]
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{file: newJSONFile[userTable](path)}
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	users, err := repo.file.read()
	if err != nil {
		return models.User{}, err
	}
	record, ok := users[username]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return record.toModel(username), nil
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	users, err := repo.file.read()
	if err != nil {
		return models.User{}, err
	}
	for username, record := range users {
		if record.ID == userID {
			return record.toModel(username), nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	users, err := repo.file.read()
	if err != nil {
		return false, err
	}
	_, ok := users[username]
	return ok, nil
}

func (repo *UserRepository) AnyAdmin() (bool, error) {
	users, err := repo.file.read()
	if err != nil {
		return false, err
	}
	return lo.SomeBy(lo.Values(users), func(record userRecord) bool { return record.IsAdmin }), nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.file.mutate(func(users *userTable) (bool, error) {
		if *users == nil {
			*users = userTable{}
		}
		if _, taken := (*users)[user.Username]; taken {
			return false, ErrDuplicateUsername
		}
		(*users)[user.Username] = userRecord{
			ID:           user.ID,
			PasswordHash: user.PasswordHash,
			IsAdmin:      user.IsAdmin,
			CreatedAt:    user.CreatedAt,
		}
		return true, nil
	})
}

func (repo *UserRepository) List() ([]models.User, error) {
	users, err := repo.file.read()
	if err != nil {
		return nil, err
	}

	list := lo.MapToSlice(users, func(username string, record userRecord) models.User {
		return record.toModel(username)
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Username < list[j].Username
	})
	return list, nil
}

func (repo *UserRepository) UpdatePassword(userID string, passwordHash string) error {
	return repo.file.mutate(func(users *userTable) (bool, error) {
		for username, record := range *users {
			if record.ID == userID {
				record.PasswordHash = passwordHash
				(*users)[username] = record
				return true, nil
			}
		}
		return false, models.ErrNotFound
	})
}

func (repo *UserRepository) DeleteByUsername(username string) (bool, error) {
	deleted := false
	err := repo.file.mutate(func(users *userTable) (bool, error) {
		if _, ok := (*users)[username]; !ok {
			return false, nil
		}
		delete(*users, username)
		deleted = true
		return true, nil
	})
	return deleted, err
}

func (record userRecord) toModel(username string) models.User {
	return models.User{
		ID:           record.ID,
		Username:     username,
		PasswordHash: record.PasswordHash,
		IsAdmin:      record.IsAdmin,
		CreatedAt:    record.CreatedAt,
	}
}
