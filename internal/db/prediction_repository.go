package db

import (
	"github.com/terraincognita07/plantdoc/internal/models"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

func (repo *PredictionRepository) Create(prediction *models.Prediction) error {
	return repo.database.Create(prediction).Error
}

func (repo *PredictionRepository) ListByUser(userID string) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (repo *PredictionRepository) ListAll() ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (repo *PredictionRepository) DeleteByID(predictionID string) (bool, error) {
	result := repo.database.Where("id = ?", predictionID).Delete(&models.Prediction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *PredictionRepository) DeleteByUser(userID string) (int64, error) {
	result := repo.database.Where("user_id = ?", userID).Delete(&models.Prediction{})
	return result.RowsAffected, result.Error
}

func (repo *PredictionRepository) DeleteAll() (int64, error) {
	result := repo.database.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Prediction{})
	return result.RowsAffected, result.Error
}
