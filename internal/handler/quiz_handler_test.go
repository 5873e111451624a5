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

type mockQuizService struct {
	quizzes   []models.Quiz
	lastActor service.Actor
	updateErr error
	deleteErr error
}

func (m *mockQuizService) List(context.Context) ([]models.Quiz, error) { return m.quizzes, nil }

func (m *mockQuizService) ListByModule(context.Context, string) ([]models.Quiz, error) {
	return m.quizzes, nil
}

func (m *mockQuizService) ListForTeacher(_ context.Context, actor service.Actor) ([]models.Quiz, error) {
	m.lastActor = actor
	return m.quizzes, nil
}

func (m *mockQuizService) Create(_ context.Context, actor service.Actor, payload dto.QuizCreateRequest) (models.Quiz, error) {
	m.lastActor = actor
	return models.Quiz{ID: "quiz-1", Title: payload.Title, CreatedBy: actor.ID}, nil
}

func (m *mockQuizService) Update(_ context.Context, actor service.Actor, id string, payload dto.QuizCreateRequest) (models.Quiz, error) {
	m.lastActor = actor
	if m.updateErr != nil {
		return models.Quiz{}, m.updateErr
	}
	return models.Quiz{ID: id, Title: payload.Title}, nil
}

func (m *mockQuizService) Delete(_ context.Context, actor service.Actor, _ string) error {
	m.lastActor = actor
	return m.deleteErr
}

func newQuizApp(svc service.QuizService, userID, role string) *fiber.App {
	app := fiber.New()
	h := handler.NewQuizHandler(svc, testValidator(), testLogger())
	h.Register(app.Group("/api/quizzes", withActor(userID, role)))
	h.RegisterTeacher(app.Group("/api/teacher/quizzes",
		withActor(userID, role),
		middleware.RequireRole(models.RoleAdmin, models.RoleTeacher)))
	return app
}

var quizPayload = dto.QuizCreateRequest{
	Title:    "Fire Safety Quiz",
	ModuleID: "mod-1",
	Questions: []dto.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b"}, Correct: 1},
	},
}

func TestQuizCreateStampsActor(t *testing.T) {
	svc := &mockQuizService{}
	app := newQuizApp(svc, "tch-1", models.RoleTeacher)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/teacher/quizzes", quizPayload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, "tch-1", svc.lastActor.ID)
}

func TestQuizCreateRequiresStaffRole(t *testing.T) {
	svc := &mockQuizService{}
	app := newQuizApp(svc, "stu-1", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/teacher/quizzes", quizPayload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestQuizCreateValidation(t *testing.T) {
	svc := &mockQuizService{}
	app := newQuizApp(svc, "tch-1", models.RoleTeacher)

	payload := dto.QuizCreateRequest{Title: "No questions"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/teacher/quizzes", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestQuizUpdateErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: service.ErrQuizNotFound, status: fiber.StatusNotFound},
		{name: "forbidden", err: service.ErrQuizForbidden, status: fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockQuizService{updateErr: tc.err}
			app := newQuizApp(svc, "tch-1", models.RoleTeacher)

			resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/teacher/quizzes/quiz-1", quizPayload))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestQuizPublicList(t *testing.T) {
	svc := &mockQuizService{quizzes: []models.Quiz{{ID: "quiz-1", Title: "Fire Safety Quiz"}}}
	app := newQuizApp(svc, "stu-1", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/quizzes", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool          `json:"success"`
		Data    []models.Quiz `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Len(t, body.Data, 1)
}
