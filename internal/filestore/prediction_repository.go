package filestore

import (
	"github.com/samber/lo"
	"github.com/terraincognita07/plantdoc/internal/models"
)

type PredictionRepository struct {
	file *jsonFile[[]models.Prediction]
}

func NewPredictionRepository(path string) *PredictionRepository {
	return &PredictionRepository{file: newJSONFile[[]models.Prediction](path)}
}

func (repo *PredictionRepository) Create(prediction *models.Prediction) error {
	return repo.file.mutate(func(predictions *[]models.Prediction) (bool, error) {
		*predictions = append(*predictions, *prediction)
		return true, nil
	})
}

func (repo *PredictionRepository) ListByUser(userID string) ([]models.Prediction, error) {
	predictions, err := repo.file.read()
	if err != nil {
		return nil, err
	}
	return lo.Filter(predictions, func(prediction models.Prediction, _ int) bool {
		return prediction.UserID == userID
	}), nil
}

func (repo *PredictionRepository) ListAll() ([]models.Prediction, error) {
	predictions, err := repo.file.read()
	if err != nil {
		return nil, err
	}
	if predictions == nil {
		return []models.Prediction{}, nil
	}
	return predictions, nil
}

func (repo *PredictionRepository) DeleteByID(predictionID string) (bool, error) {
	removed, err := repo.removeWhere(func(prediction models.Prediction) bool {
		return prediction.ID == predictionID
	})
	return removed > 0, err
}

func (repo *PredictionRepository) DeleteByUser(userID string) (int64, error) {
	return repo.removeWhere(func(prediction models.Prediction) bool {
		return prediction.UserID == userID
	})
}

func (repo *PredictionRepository) DeleteAll() (int64, error) {
	return repo.removeWhere(func(models.Prediction) bool { return true })
}

func (repo *PredictionRepository) removeWhere(match func(models.Prediction) bool) (int64, error) {
	var removed int64
	err := repo.file.mutate(func(predictions *[]models.Prediction) (bool, error) {
		kept := lo.Reject(*predictions, func(prediction models.Prediction, _ int) bool {
			return match(prediction)
		})
		removed = int64(len(*predictions) - len(kept))
		*predictions = kept
		return removed > 0, nil
	})
	return removed, err
}
