package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/observability"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// ErrCityRequired indicates the prediction endpoint was called without a city.
var ErrCityRequired = errors.New("city is required")

const (
	predictionBaseRisk = 10
	predictionRiskCap  = 85
	predictionHistory  = 50
)

// The heuristic is a fixed keyword lookup, not a model: each list match adds
// its points and labels, and the sum is capped. Kept as-is on purpose.
var riskCategories = []struct {
	cities []string
	points float64
	types  []string
	factor string
}{
	{
		cities: []string{"miami", "new orleans", "san francisco", "seattle", "boston", "new york"},
		points: 25,
		types:  []string{"flood", "hurricane"},
		factor: "Coastal location",
	},
	{
		cities: []string{"san francisco", "los angeles", "seattle", "alaska"},
		points: 20,
		types:  []string{"earthquake"},
		factor: "Seismic activity zone",
	},
	{
		cities: []string{"oklahoma", "kansas", "texas", "nebraska", "iowa"},
		points: 15,
		types:  []string{"tornado"},
		factor: "Tornado alley region",
	},
	{
		cities: []string{"california", "arizona", "colorado", "montana"},
		points: 18,
		types:  []string{"wildfire"},
		factor: "Dry climate/vegetation",
	},
}

// PredictionService runs the city risk heuristic and keeps its history.
type PredictionService interface {
	Predict(ctx context.Context, actor Actor, city string) (models.DisasterPrediction, error)
	ListRecent(ctx context.Context) ([]models.DisasterPrediction, error)
}

type predictionService struct {
	predictions repository.PredictionRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewPredictionService constructs a prediction service.
func NewPredictionService(predictions repository.PredictionRepository, logger zerolog.Logger) PredictionService {
	return &predictionService{
		predictions: predictions,
		logger:      logger.With().Str("component", "prediction_service").Logger(),
		now:         time.Now,
	}
}

func (s *predictionService) Predict(ctx context.Context, actor Actor, city string) (models.DisasterPrediction, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.DisasterPrediction{}, ErrCityRequired
	}

	lowered := strings.ToLower(city)
	risk := float64(predictionBaseRisk)
	var disasterTypes []string
	var factors []string

	for _, category := range riskCategories {
		if matchesAny(lowered, category.cities) {
			risk += category.points
			disasterTypes = append(disasterTypes, category.types...)
			factors = append(factors, category.factor)
		}
	}

	if len(disasterTypes) == 0 {
		disasterTypes = []string{"severe weather", "power outage"}
		factors = append(factors, "Standard weather risks")
	}

	if risk > predictionRiskCap {
		risk = predictionRiskCap
	}

	prediction := models.DisasterPrediction{
		City:           city,
		RiskPercentage: risk,
		DisasterTypes:  disasterTypes,
		Factors:        factors,
		PredictedBy:    actor.ID,
		PredictedAt:    s.now().UTC(),
	}

	if err := s.predictions.Create(ctx, &prediction); err != nil {
		return models.DisasterPrediction{}, err
	}

	observability.PredictionsComputed().Inc()
	s.logger.Info().Str("city", city).Float64("risk", risk).Str("predicted_by", actor.ID).Msg("risk prediction computed")

	return prediction, nil
}

func (s *predictionService) ListRecent(ctx context.Context) ([]models.DisasterPrediction, error) {
	return s.predictions.ListRecent(ctx, predictionHistory)
}

func matchesAny(city string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.Contains(city, candidate) {
			return true
		}
	}
	return false
}
