package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// AttemptService records quiz attempts and serves per-user attempt history.
type AttemptService interface {
	// Submit stores an attempt stamped with the caller's identity; any
	// client-supplied owner field is discarded.
	Submit(ctx context.Context, actor Actor, payload dto.QuizAttemptRequest) (models.QuizAttempt, error)
	// ListForUser returns a user's attempts. The owner, admins and teachers
	// may read; anyone else is rejected with ErrForbidden.
	ListForUser(ctx context.Context, actor Actor, userID string) ([]models.QuizAttempt, error)
}

type attemptService struct {
	attempts repository.AttemptRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAttemptService constructs an attempt service.
func NewAttemptService(attempts repository.AttemptRepository, logger zerolog.Logger) AttemptService {
	return &attemptService{
		attempts: attempts,
		logger:   logger.With().Str("component", "attempt_service").Logger(),
		now:      time.Now,
	}
}

func (s *attemptService) Submit(ctx context.Context, actor Actor, payload dto.QuizAttemptRequest) (models.QuizAttempt, error) {
	answers, err := json.Marshal(payload.Answers)
	if err != nil {
		return models.QuizAttempt{}, err
	}

	attempt := models.QuizAttempt{
		UserID:         actor.ID,
		QuizID:         payload.QuizID,
		ModuleID:       payload.ModuleID,
		Score:          payload.Score,
		TotalQuestions: payload.TotalQuestions,
		Answers:        datatypes.JSON(answers),
		CompletedAt:    s.now().UTC(),
	}

	if err := s.attempts.Create(ctx, &attempt); err != nil {
		return models.QuizAttempt{}, err
	}

	s.logger.Info().Str("user_id", actor.ID).Str("quiz_id", payload.QuizID).Int("score", payload.Score).Msg("quiz attempt submitted")

	return attempt, nil
}

func (s *attemptService) ListForUser(ctx context.Context, actor Actor, userID string) ([]models.QuizAttempt, error) {
	if actor.ID != userID && !actor.IsStaff() {
		return nil, ErrForbidden
	}

	return s.attempts.ListByUser(ctx, userID)
}
