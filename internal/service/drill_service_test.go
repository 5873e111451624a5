package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

func TestDrillRecordSanitizesNotes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDrillService(repository.NewDrillRepository(db), testLogger())

	drill, err := svc.Record(context.Background(), Actor{ID: "stu-1", Role: models.RoleStudent}, dto.DrillRequest{
		DrillType: "  fire  ",
		Notes:     `went well <img src=x onerror=alert(1)>`,
	})
	require.NoError(t, err)

	require.Equal(t, "fire", drill.DrillType)
	require.Equal(t, "went well", drill.Notes)
	require.Equal(t, "stu-1", drill.UserID)
	require.False(t, drill.ParticipatedAt.IsZero())
}

func TestDrillListForUserAccess(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDrillService(repository.NewDrillRepository(db), testLogger())
	ctx := context.Background()

	owner := Actor{ID: "stu-1", Role: models.RoleStudent}
	_, err := svc.Record(ctx, owner, dto.DrillRequest{DrillType: "earthquake"})
	require.NoError(t, err)

	drills, err := svc.ListForUser(ctx, owner, owner.ID)
	require.NoError(t, err)
	require.Len(t, drills, 1)

	drills, err = svc.ListForUser(ctx, Actor{ID: "adm-1", Role: models.RoleAdmin}, owner.ID)
	require.NoError(t, err)
	require.Len(t, drills, 1)

	_, err = svc.ListForUser(ctx, Actor{ID: "stu-2", Role: models.RoleStudent}, owner.ID)
	require.ErrorIs(t, err, ErrForbidden)

	// Teachers do not get cross-user drill history.
	_, err = svc.ListForUser(ctx, Actor{ID: "tch-1", Role: models.RoleTeacher}, owner.ID)
	require.ErrorIs(t, err, ErrForbidden)
}
