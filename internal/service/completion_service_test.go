package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

func newCompletionService(t *testing.T, db *gorm.DB) CompletionService {
	t.Helper()
	return NewCompletionService(repository.NewCompletionRepository(db), repository.NewModuleRepository(db), testLogger())
}

func TestMarkCompleteDefaultsPercentage(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompletionService(t, db)
	module := seedModule(t, db, "Fire Safety", 1)

	completion, err := svc.MarkComplete(context.Background(), "stu-1", dto.CompletionRequest{ModuleID: module.ID})
	require.NoError(t, err)

	require.Equal(t, 100.0, completion.WatchPercentage)
	require.False(t, completion.CompletedAt.IsZero())
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompletionService(t, db)
	ctx := context.Background()
	module := seedModule(t, db, "Fire Safety", 1)

	first, err := svc.MarkComplete(ctx, "stu-1", dto.CompletionRequest{ModuleID: module.ID, WatchPercentage: 80})
	require.NoError(t, err)

	second, err := svc.MarkComplete(ctx, "stu-1", dto.CompletionRequest{ModuleID: module.ID, WatchPercentage: 95})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 95.0, second.WatchPercentage)

	var count int64
	require.NoError(t, db.Model(&models.VideoCompletion{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestMarkCompleteUnknownModule(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompletionService(t, db)

	_, err := svc.MarkComplete(context.Background(), "stu-1", dto.CompletionRequest{ModuleID: "missing"})
	require.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCompletionStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompletionService(t, db)
	ctx := context.Background()
	module := seedModule(t, db, "Fire Safety", 1)

	status, err := svc.Status(ctx, "stu-1", module.ID)
	require.NoError(t, err)
	require.False(t, status.Completed)
	require.Nil(t, status.Completion)

	_, err = svc.MarkComplete(ctx, "stu-1", dto.CompletionRequest{ModuleID: module.ID})
	require.NoError(t, err)

	status, err = svc.Status(ctx, "stu-1", module.ID)
	require.NoError(t, err)
	require.True(t, status.Completed)
	require.NotNil(t, status.Completion)
	require.Equal(t, module.ID, status.Completion.ModuleID)
}
