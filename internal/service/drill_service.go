package service

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// DrillService records drill participation and serves per-user history.
type DrillService interface {
	Record(ctx context.Context, actor Actor, payload dto.DrillRequest) (models.DrillParticipation, error)
	// ListForUser returns a user's drill records. Only the owner and admins
	// may read.
	ListForUser(ctx context.Context, actor Actor, userID string) ([]models.DrillParticipation, error)
}

type drillService struct {
	drills    repository.DrillRepository
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDrillService constructs a drill service.
func NewDrillService(drills repository.DrillRepository, logger zerolog.Logger) DrillService {
	return &drillService{
		drills:    drills,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "drill_service").Logger(),
		now:       time.Now,
	}
}

func (s *drillService) Record(ctx context.Context, actor Actor, payload dto.DrillRequest) (models.DrillParticipation, error) {
	drill := models.DrillParticipation{
		UserID:         actor.ID,
		DrillType:      strings.TrimSpace(payload.DrillType),
		Notes:          strings.TrimSpace(s.sanitizer.Sanitize(payload.Notes)),
		ParticipatedAt: s.now().UTC(),
	}

	if err := s.drills.Create(ctx, &drill); err != nil {
		return models.DrillParticipation{}, err
	}

	s.logger.Info().Str("user_id", actor.ID).Str("drill_type", drill.DrillType).Msg("drill participation recorded")

	return drill, nil
}

func (s *drillService) ListForUser(ctx context.Context, actor Actor, userID string) ([]models.DrillParticipation, error) {
	if !actor.CanAccessUserScoped(userID, models.RoleAdmin) {
		return nil, ErrForbidden
	}

	return s.drills.ListByUser(ctx, userID)
}
