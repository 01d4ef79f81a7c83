package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/terraincognita07/plantdoc/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrUserNotFound  = errors.New("user not found")
)

type AccountRepository interface {
	FindByUsername(username string) (models.User, error)
	FindByID(userID string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	AnyAdmin() (bool, error)
	Create(user *models.User) error
	List() ([]models.User, error)
	UpdatePassword(userID string, passwordHash string) error
	DeleteByUsername(username string) (bool, error)
}

type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Unknown usernames are still compared against this hash so a failed login
// costs the same whether or not the account exists.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("plantdoc-unknown-account"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy password hash: %v", err))
	}
	return hash
})

type AccountService struct {
	users AccountRepository
	now   func() time.Time
}

func NewAccountService(users AccountRepository) *AccountService {
	return &AccountService{users: users, now: time.Now}
}

func (service *AccountService) Register(usernameRaw string, passwordRaw string, isAdmin bool) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidateUsername(username); err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AccountService) Login(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByUsername(username)
	if errors.Is(err, models.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AccountService) IsAdmin(username string) (bool, error) {
	user, err := service.findByUsername(username)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

func (service *AccountService) UserID(username string) (string, error) {
	user, err := service.findByUsername(username)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (service *AccountService) FindByID(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AccountService) ListUsers() ([]UserSummary, error) {
	users, err := service.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return summarizeUsers(users), nil
}

func (service *AccountService) DeleteUser(usernameRaw string) error {
	removed, err := service.users.DeleteByUsername(NormalizeUsername(usernameRaw))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !removed {
		return ErrUserNotFound
	}
	return nil
}

// BootstrapAdmin creates the first administrator. It does nothing once any
// admin account exists.
func (service *AccountService) BootstrapAdmin(username string, password string) (bool, error) {
	exists, err := service.users.AnyAdmin()
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return false, nil
	}
	if _, err := service.Register(username, password, true); err != nil {
		return false, err
	}
	return true, nil
}

func (service *AccountService) ResetPassword(usernameRaw string, newPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	user, err := service.findByUsername(usernameRaw)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(user.ID, string(hash)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (service *AccountService) findByUsername(usernameRaw string) (models.User, error) {
	user, err := service.users.FindByUsername(NormalizeUsername(usernameRaw))
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func summarizeUsers(users []models.User) []UserSummary {
	summaries := lo.Map(users, func(user models.User, _ int) UserSummary {
		return UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		}
	})
	slices.SortStableFunc(summaries, func(left UserSummary, right UserSummary) int {
		if order := left.CreatedAt.Compare(right.CreatedAt); order != 0 {
			return order
		}
		return strings.Compare(left.Username, right.Username)
	})
	return summaries
}
