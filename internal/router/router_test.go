package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/config"
	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/handler"
	"github.com/noah-isme/siaga-go-api/internal/middleware"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/router"
	"github.com/noah-isme/siaga-go-api/internal/service"
)

type stubPredictionService struct{}

func (stubPredictionService) Predict(_ context.Context, _ service.Actor, city string) (models.DisasterPrediction, error) {
	return models.DisasterPrediction{City: city, RiskPercentage: 10}, nil
}

func (stubPredictionService) ListRecent(context.Context) ([]models.DisasterPrediction, error) {
	return nil, nil
}

type stubProgressService struct{}

func (stubProgressService) UserStats(context.Context, string) (dto.UserStatsResponse, error) {
	return dto.UserStatsResponse{}, nil
}

func (stubProgressService) StudentsProgress(context.Context) (dto.StudentsProgressResponse, error) {
	return dto.StudentsProgressResponse{}, nil
}

func (stubProgressService) Leaderboard(context.Context, service.Actor) (dto.LeaderboardResponse, error) {
	return dto.LeaderboardResponse{}, nil
}

func (stubProgressService) TeachersProgress(context.Context) (dto.TeachersProgressResponse, error) {
	return dto.TeachersProgressResponse{}, nil
}

func TestPredictionLimiterScope(t *testing.T) {
	logger := zerolog.New(io.Discard)
	app := fiber.New()

	router.Register(app, config.Config{AppName: "SIAGA API"}, router.Dependencies{
		PredictionHandler: handler.NewPredictionHandler(stubPredictionService{}, logger),
		ProgressHandler:   handler.NewProgressHandler(stubProgressService{}, logger),
		PredictLimiter:    middleware.RateLimit("predict", 2, time.Minute),
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/predict-disaster?city=Miami", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/predict-disaster?city=Miami", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
