package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// ErrModuleNotFound indicates an unknown module identifier.
var ErrModuleNotFound = errors.New("module not found")

// ModuleService exposes the instructional module catalog.
type ModuleService interface {
	List(ctx context.Context) ([]models.Module, error)
	Get(ctx context.Context, id string) (models.Module, error)
}

type moduleService struct {
	modules repository.ModuleRepository
}

// NewModuleService constructs a module service.
func NewModuleService(modules repository.ModuleRepository) ModuleService {
	return &moduleService{modules: modules}
}

func (s *moduleService) List(ctx context.Context) ([]models.Module, error) {
	return s.modules.List(ctx)
}

func (s *moduleService) Get(ctx context.Context, id string) (models.Module, error) {
	module, err := s.modules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Module{}, ErrModuleNotFound
		}
		return models.Module{}, err
	}

	return module, nil
}
