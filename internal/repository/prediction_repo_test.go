package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

func TestPredictionRepositoryRoundTripsLists(t *testing.T) {
	db := setupTestDB(t, &models.DisasterPrediction{})
	repo := NewPredictionRepository(db)

	prediction := models.DisasterPrediction{
		City:           "Miami",
		RiskPercentage: 35,
		DisasterTypes:  []string{"flood", "hurricane"},
		Factors:        []string{"Coastal location"},
		PredictedBy:    "user-1",
		PredictedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), &prediction))

	stored, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, []string{"flood", "hurricane"}, stored[0].DisasterTypes)
	require.Equal(t, []string{"Coastal location"}, stored[0].Factors)
}

func TestPredictionRepositoryListRecentLimitsAndOrders(t *testing.T) {
	db := setupTestDB(t, &models.DisasterPrediction{})
	repo := NewPredictionRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 60; i++ {
		prediction := models.DisasterPrediction{
			City:           fmt.Sprintf("city-%d", i),
			RiskPercentage: 10,
			DisasterTypes:  []string{"severe weather"},
			Factors:        []string{"Standard weather risks"},
			PredictedBy:    "user-1",
			PredictedAt:    base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(context.Background(), &prediction))
	}

	recent, err := repo.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, recent, 50)
	require.Equal(t, "city-59", recent[0].City, "newest prediction should come first")
}
