package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// CompletionRepository provides access to video-completion records.
type CompletionRepository interface {
	// Upsert stores a completion for (user, module), overwriting the watch
	// percentage and timestamp of an existing record instead of duplicating.
	Upsert(ctx context.Context, completion *models.VideoCompletion) error
	GetByUserAndModule(ctx context.Context, userID, moduleID string) (models.VideoCompletion, error)
	ListByUser(ctx context.Context, userID string) ([]models.VideoCompletion, error)
}

type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository constructs a completion repository.
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Upsert(ctx context.Context, completion *models.VideoCompletion) error {
	var existing models.VideoCompletion
	err := r.db.WithContext(ctx).
		First(&existing, "user_id = ? AND module_id = ?", completion.UserID, completion.ModuleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(completion).Error
		}
		return err
	}

	completion.ID = existing.ID
	return r.db.WithContext(ctx).Model(&existing).
		Updates(map[string]interface{}{
			"watch_percentage": completion.WatchPercentage,
			"completed_at":     completion.CompletedAt,
		}).Error
}

func (r *completionRepository) GetByUserAndModule(ctx context.Context, userID, moduleID string) (models.VideoCompletion, error) {
	var completion models.VideoCompletion
	if err := r.db.WithContext(ctx).
		First(&completion, "user_id = ? AND module_id = ?", userID, moduleID).Error; err != nil {
		return models.VideoCompletion{}, err
	}

	return completion, nil
}

func (r *completionRepository) ListByUser(ctx context.Context, userID string) ([]models.VideoCompletion, error) {
	var completions []models.VideoCompletion
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("completed_at ASC").Find(&completions).Error; err != nil {
		return nil, err
	}

	return completions, nil
}
