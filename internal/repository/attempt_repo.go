package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// AttemptRepository provides access to quiz-attempt records. Attempts are
// append-only; there is no update or delete.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) error
	ListByUser(ctx context.Context, userID string) ([]models.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository constructs an attempt repository.
func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) ListByUser(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("created_at ASC").Find(&attempts).Error; err != nil {
		return nil, err
	}

	return attempts, nil
}
