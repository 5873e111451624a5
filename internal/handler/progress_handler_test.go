package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/handler"
	"github.com/noah-isme/siaga-go-api/internal/middleware"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/service"
)

type mockProgressService struct {
	lastUserID string
	lastCaller service.Actor
	stats      dto.UserStatsResponse
	statsErr   error
}

func (m *mockProgressService) UserStats(_ context.Context, userID string) (dto.UserStatsResponse, error) {
	m.lastUserID = userID
	if m.statsErr != nil {
		return dto.UserStatsResponse{}, m.statsErr
	}
	return m.stats, nil
}

func (m *mockProgressService) StudentsProgress(context.Context) (dto.StudentsProgressResponse, error) {
	return dto.StudentsProgressResponse{}, nil
}

func (m *mockProgressService) Leaderboard(_ context.Context, caller service.Actor) (dto.LeaderboardResponse, error) {
	m.lastCaller = caller
	return dto.LeaderboardResponse{TotalStudents: 3}, nil
}

func (m *mockProgressService) TeachersProgress(context.Context) (dto.TeachersProgressResponse, error) {
	return dto.TeachersProgressResponse{TotalTeachers: 1}, nil
}

func newProgressApp(svc service.ProgressService, userID, role string) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", withActor(userID, role))
	h := handler.NewProgressHandler(svc, testLogger())
	h.Register(api)
	h.RegisterStaff(api.Group("/teacher", middleware.RequireRole(models.RoleAdmin, models.RoleTeacher)))
	h.RegisterAdmin(api.Group("/admin", middleware.RequireRole(models.RoleAdmin)))
	return app
}

func TestUserStatsOwnerAccess(t *testing.T) {
	svc := &mockProgressService{stats: dto.UserStatsResponse{UserID: "stu-1", TotalPoints: 40}}
	app := newProgressApp(svc, "stu-1", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user-stats/stu-1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "stu-1", svc.lastUserID)
}

func TestUserStatsForeignStudentForbidden(t *testing.T) {
	svc := &mockProgressService{}
	app := newProgressApp(svc, "stu-2", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user-stats/stu-1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Empty(t, svc.lastUserID)
}

func TestUserStatsTeacherAccess(t *testing.T) {
	svc := &mockProgressService{}
	app := newProgressApp(svc, "tch-1", models.RoleTeacher)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user-stats/stu-1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUserStatsUnknownUser(t *testing.T) {
	svc := &mockProgressService{statsErr: service.ErrUserNotFound}
	app := newProgressApp(svc, "adm-1", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user-stats/ghost", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLeaderboardPassesCaller(t *testing.T) {
	svc := &mockProgressService{}
	app := newProgressApp(svc, "stu-1", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/leaderboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, service.Actor{ID: "stu-1", Role: models.RoleStudent}, svc.lastCaller)
}

func TestStudentsProgressRequiresStaff(t *testing.T) {
	svc := &mockProgressService{}

	studentApp := newProgressApp(svc, "stu-1", models.RoleStudent)
	resp, err := studentApp.Test(jsonRequest(t, http.MethodGet, "/api/teacher/students-progress", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	teacherApp := newProgressApp(svc, "tch-1", models.RoleTeacher)
	resp, err = teacherApp.Test(jsonRequest(t, http.MethodGet, "/api/teacher/students-progress", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTeachersProgressAdminOnly(t *testing.T) {
	svc := &mockProgressService{}

	teacherApp := newProgressApp(svc, "tch-1", models.RoleTeacher)
	resp, err := teacherApp.Test(jsonRequest(t, http.MethodGet, "/api/admin/teachers-progress", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	adminApp := newProgressApp(svc, "adm-1", models.RoleAdmin)
	resp, err = adminApp.Test(jsonRequest(t, http.MethodGet, "/api/admin/teachers-progress", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
