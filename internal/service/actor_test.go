package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

func TestActorIsStaff(t *testing.T) {
	require.True(t, Actor{ID: "adm-1", Role: models.RoleAdmin}.IsStaff())
	require.True(t, Actor{ID: "tch-1", Role: models.RoleTeacher}.IsStaff())
	require.False(t, Actor{ID: "stu-1", Role: models.RoleStudent}.IsStaff())
	require.False(t, Actor{ID: "anon"}.IsStaff())
}

func TestActorCanAccessUserScoped(t *testing.T) {
	owner := Actor{ID: "stu-1", Role: models.RoleStudent}
	require.True(t, owner.CanAccessUserScoped("stu-1", models.RoleAdmin))
	require.False(t, owner.CanAccessUserScoped("stu-2", models.RoleAdmin))

	admin := Actor{ID: "adm-1", Role: models.RoleAdmin}
	require.True(t, admin.CanAccessUserScoped("stu-2", models.RoleAdmin))

	teacher := Actor{ID: "tch-1", Role: models.RoleTeacher}
	require.False(t, teacher.CanAccessUserScoped("stu-2", models.RoleAdmin))
}
