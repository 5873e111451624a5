package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

func TestAttemptRepositoryListByUserKeepsInsertionOrder(t *testing.T) {
	db := setupTestDB(t, &models.QuizAttempt{})
	repo := NewAttemptRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		attempt := models.QuizAttempt{
			UserID:         "user-1",
			QuizID:         "quiz-1",
			ModuleID:       "module-1",
			Score:          i,
			TotalQuestions: 5,
			CompletedAt:    base.Add(time.Duration(i) * time.Minute),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), &attempt))
	}

	attempts, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	for i, attempt := range attempts {
		require.Equal(t, i, attempt.Score)
	}
}

func TestAttemptRepositoryScopesByUser(t *testing.T) {
	db := setupTestDB(t, &models.QuizAttempt{})
	repo := NewAttemptRepository(db)

	mine := models.QuizAttempt{UserID: "user-1", QuizID: "quiz-1", Score: 4, TotalQuestions: 5, CompletedAt: time.Now()}
	theirs := models.QuizAttempt{UserID: "user-2", QuizID: "quiz-1", Score: 2, TotalQuestions: 5, CompletedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), &mine))
	require.NoError(t, repo.Create(context.Background(), &theirs))

	attempts, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	require.Equal(t, 4, attempts[0].Score)
}
