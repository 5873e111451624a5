package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// AlertRepository provides access to emergency alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id string) (models.Alert, error)
	ListActive(ctx context.Context) ([]models.Alert, error)
	ListByCreator(ctx context.Context, creatorID string) ([]models.Alert, error)
	// SetActive toggles the active flag. Alerts are never deleted.
	SetActive(ctx context.Context, id string, active bool) (int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository constructs an alert repository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetByID(ctx context.Context, id string) (models.Alert, error) {
	var alert models.Alert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return models.Alert{}, err
	}

	return alert, nil
}

func (r *alertRepository) ListActive(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).Order("created_at ASC").Find(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
