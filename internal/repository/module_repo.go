package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// ModuleRepository provides access to the instructional module catalog.
type ModuleRepository interface {
	Create(ctx context.Context, module *models.Module) error
	GetByID(ctx context.Context, id string) (models.Module, error)
	List(ctx context.Context) ([]models.Module, error)
}

type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository constructs a module repository.
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(ctx context.Context, module *models.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepository) GetByID(ctx context.Context, id string) (models.Module, error) {
	var module models.Module
	if err := r.db.WithContext(ctx).First(&module, "id = ?", id).Error; err != nil {
		return models.Module{}, err
	}

	return module, nil
}

func (r *moduleRepository) List(ctx context.Context) ([]models.Module, error) {
	var modules []models.Module
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&modules).Error; err != nil {
		return nil, err
	}

	return modules, nil
}
