package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// CompletionService tracks which module videos a user has watched.
type CompletionService interface {
	// MarkComplete upserts the caller's completion for a module. Submitting
	// twice keeps a single record carrying the latest watch percentage.
	MarkComplete(ctx context.Context, userID string, payload dto.CompletionRequest) (models.VideoCompletion, error)
	Status(ctx context.Context, userID, moduleID string) (dto.CompletionStatusResponse, error)
}

type completionService struct {
	completions repository.CompletionRepository
	modules     repository.ModuleRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewCompletionService constructs a completion service.
func NewCompletionService(completions repository.CompletionRepository, modules repository.ModuleRepository, logger zerolog.Logger) CompletionService {
	return &completionService{
		completions: completions,
		modules:     modules,
		logger:      logger.With().Str("component", "completion_service").Logger(),
		now:         time.Now,
	}
}

func (s *completionService) MarkComplete(ctx context.Context, userID string, payload dto.CompletionRequest) (models.VideoCompletion, error) {
	if _, err := s.modules.GetByID(ctx, payload.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.VideoCompletion{}, ErrModuleNotFound
		}
		return models.VideoCompletion{}, err
	}

	percentage := payload.WatchPercentage
	if percentage <= 0 {
		percentage = 100
	}

	completion := models.VideoCompletion{
		UserID:          userID,
		ModuleID:        payload.ModuleID,
		WatchPercentage: percentage,
		CompletedAt:     s.now().UTC(),
	}

	if err := s.completions.Upsert(ctx, &completion); err != nil {
		return models.VideoCompletion{}, err
	}

	s.logger.Info().Str("user_id", userID).Str("module_id", payload.ModuleID).Msg("video completion recorded")

	return completion, nil
}

func (s *completionService) Status(ctx context.Context, userID, moduleID string) (dto.CompletionStatusResponse, error) {
	completion, err := s.completions.GetByUserAndModule(ctx, userID, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompletionStatusResponse{Completed: false, Completion: nil}, nil
		}
		return dto.CompletionStatusResponse{}, err
	}

	return dto.CompletionStatusResponse{Completed: true, Completion: &completion}, nil
}
