package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	repo := NewUserRepository(db)

	user := models.User{
		Username:     "student1",
		Email:        "student@school.edu",
		FullName:     "Jane Student",
		Role:         models.RoleStudent,
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(context.Background(), &user))
	require.NotEmpty(t, user.ID, "identifier should be assigned on create")

	byName, err := repo.GetByUsername(context.Background(), "student1")
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)

	byID, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane Student", byID.FullName)
}

func TestUserRepositoryUsernameUnique(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	repo := NewUserRepository(db)

	first := models.User{Username: "dup", Email: "a@school.edu", FullName: "A", Role: models.RoleStudent, PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), &first))

	second := models.User{Username: "dup", Email: "b@school.edu", FullName: "B", Role: models.RoleStudent, PasswordHash: "x"}
	require.Error(t, repo.Create(context.Background(), &second))
}

func TestUserRepositoryListByRole(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	repo := NewUserRepository(db)

	users := []models.User{
		{Username: "admin", Email: "admin@school.edu", FullName: "Admin", Role: models.RoleAdmin, PasswordHash: "x"},
		{Username: "s1", Email: "s1@school.edu", FullName: "S1", Role: models.RoleStudent, PasswordHash: "x"},
		{Username: "s2", Email: "s2@school.edu", FullName: "S2", Role: models.RoleStudent, PasswordHash: "x"},
	}
	for i := range users {
		require.NoError(t, repo.Create(context.Background(), &users[i]))
	}

	students, err := repo.ListByRole(context.Background(), models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 2)

	count, err := repo.CountByRole(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
