package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// PredictionRepository provides access to stored heuristic predictions.
type PredictionRepository interface {
	Create(ctx context.Context, prediction *models.DisasterPrediction) error
	ListRecent(ctx context.Context, limit int) ([]models.DisasterPrediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository constructs a prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *models.DisasterPrediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

func (r *predictionRepository) ListRecent(ctx context.Context, limit int) ([]models.DisasterPrediction, error) {
	if limit <= 0 {
		limit = 50
	}

	var predictions []models.DisasterPrediction
	if err := r.db.WithContext(ctx).
		Order("predicted_at DESC").Limit(limit).Find(&predictions).Error; err != nil {
		return nil, err
	}

	return predictions, nil
}
