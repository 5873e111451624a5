package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.VideoCompletion{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.DrillParticipation{},
		&models.Alert{},
		&models.EmergencyContact{},
		&models.DisasterPrediction{},
	))

	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func createTestUser(t *testing.T, db *gorm.DB, id, username, role string, createdAt time.Time) models.User {
	t.Helper()

	user := models.User{
		ID:           id,
		Username:     username,
		Email:        username + "@school.edu",
		FullName:     username,
		Role:         role,
		PasswordHash: "unused",
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(&user).Error)

	return user
}
