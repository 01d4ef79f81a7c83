package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/plantdoc/internal/classifier"
	"github.com/terraincognita07/plantdoc/internal/models"
	"github.com/terraincognita07/plantdoc/internal/uploads"
)

var (
	ErrUnsupportedImage   = errors.New("unsupported image")
	ErrPredictionNotFound = errors.New("prediction not found")
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type PredictionRepository interface {
	Create(prediction *models.Prediction) error
	ListByUser(userID string) ([]models.Prediction, error)
	ListAll() ([]models.Prediction, error)
	DeleteByID(predictionID string) (bool, error)
	DeleteByUser(userID string) (int64, error)
	DeleteAll() (int64, error)
}

type ImageClassifier interface {
	Classify(ctx context.Context, tensor classifier.Tensor) (int, error)
}

type Upload struct {
	Filename string
	Data     []byte
}

type PredictionResult struct {
	Prediction  models.Prediction `json:"prediction"`
	DisplayName string            `json:"display_name"`
	Advisory    string            `json:"advisory,omitempty"`
	Products    []Product         `json:"products"`
	Language    string            `json:"language"`
}

type PredictionService struct {
	predictions PredictionRepository
	classifier  ImageClassifier
	archive     uploads.Archive
	translator  Translator
	now         func() time.Time
}

func NewPredictionService(
	predictions PredictionRepository,
	imageClassifier ImageClassifier,
	archive uploads.Archive,
	translator Translator,
) *PredictionService {
	return &PredictionService{
		predictions: predictions,
		classifier:  imageClassifier,
		archive:     archive,
		translator:  translator,
		now:         time.Now,
	}
}

func (service *PredictionService) Predict(ctx context.Context, userID string, upload Upload, language string) (PredictionResult, error) {
	extension := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := imageContentTypes[extension]
	if !ok || len(upload.Data) == 0 {
		return PredictionResult{}, ErrUnsupportedImage
	}

	tensor, err := classifier.Preprocess(bytes.NewReader(upload.Data))
	if err != nil {
		return PredictionResult{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	imageKey := ""
	if service.archive != nil {
		imageKey = uploads.NewKey(userID, extension)
		if err := service.archive.Put(ctx, imageKey, contentType, upload.Data); err != nil {
			return PredictionResult{}, fmt.Errorf("archive upload: %w", err)
		}
	}

	index, err := service.classifier.Classify(ctx, tensor)
	if err != nil {
		return PredictionResult{}, fmt.Errorf("classify image: %w", err)
	}
	label, err := classifier.Label(index)
	if err != nil {
		return PredictionResult{}, err
	}

	prediction := models.Prediction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Disease:   label,
		ImageKey:  imageKey,
		CreatedAt: service.now().UTC(),
	}
	if prediction.CreatedAt.IsZero() {
		return PredictionResult{}, errors.New("prediction timestamp missing")
	}
	if err := service.predictions.Create(&prediction); err != nil {
		return PredictionResult{}, fmt.Errorf("save prediction: %w", err)
	}

	language = normalizeLanguage(language)
	advisory, products := advisoryFor(label)
	return PredictionResult{
		Prediction:  prediction,
		DisplayName: localizeText(ctx, service.translator, label, language),
		Advisory:    localizeText(ctx, service.translator, advisory, language),
		Products:    products,
		Language:    language,
	}, nil
}

// History lists a user's predictions, newest first.
func (service *PredictionService) History(userID string) ([]models.Prediction, error) {
	predictions, err := service.predictions.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	slices.SortStableFunc(predictions, func(left models.Prediction, right models.Prediction) int {
		return right.CreatedAt.Compare(left.CreatedAt)
	})
	return predictions, nil
}
