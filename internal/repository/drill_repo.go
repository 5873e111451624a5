package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// DrillRepository provides access to drill-participation records.
type DrillRepository interface {
	Create(ctx context.Context, drill *models.DrillParticipation) error
	ListByUser(ctx context.Context, userID string) ([]models.DrillParticipation, error)
}

type drillRepository struct {
	db *gorm.DB
}

// NewDrillRepository constructs a drill repository.
func NewDrillRepository(db *gorm.DB) DrillRepository {
	return &drillRepository{db: db}
}

func (r *drillRepository) Create(ctx context.Context, drill *models.DrillParticipation) error {
	return r.db.WithContext(ctx).Create(drill).Error
}

func (r *drillRepository) ListByUser(ctx context.Context, userID string) ([]models.DrillParticipation, error) {
	var drills []models.DrillParticipation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("created_at ASC").Find(&drills).Error; err != nil {
		return nil, err
	}

	return drills, nil
}
