package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

var (
	// ErrQuizNotFound indicates an unknown quiz identifier.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizForbidden indicates a teacher touching a quiz they did not create.
	ErrQuizForbidden = errors.New("can only modify your own quizzes")
)

// QuizService manages quizzes, including the teacher-scoped CRUD surface.
type QuizService interface {
	List(ctx context.Context) ([]models.Quiz, error)
	ListByModule(ctx context.Context, moduleID string) ([]models.Quiz, error)
	// ListForTeacher returns every quiz for admins and only the actor's own
	// quizzes for teachers.
	ListForTeacher(ctx context.Context, actor Actor) ([]models.Quiz, error)
	Create(ctx context.Context, actor Actor, payload dto.QuizCreateRequest) (models.Quiz, error)
	Update(ctx context.Context, actor Actor, id string, payload dto.QuizCreateRequest) (models.Quiz, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type quizService struct {
	quizzes repository.QuizRepository
	logger  zerolog.Logger
}

// NewQuizService constructs a quiz service.
func NewQuizService(quizzes repository.QuizRepository, logger zerolog.Logger) QuizService {
	return &quizService{
		quizzes: quizzes,
		logger:  logger.With().Str("component", "quiz_service").Logger(),
	}
}

func (s *quizService) List(ctx context.Context) ([]models.Quiz, error) {
	return s.quizzes.List(ctx)
}

func (s *quizService) ListByModule(ctx context.Context, moduleID string) ([]models.Quiz, error) {
	return s.quizzes.ListByModule(ctx, moduleID)
}

func (s *quizService) ListForTeacher(ctx context.Context, actor Actor) ([]models.Quiz, error) {
	if actor.Role == models.RoleAdmin {
		return s.quizzes.List(ctx)
	}
	return s.quizzes.ListByCreator(ctx, actor.ID)
}

func (s *quizService) Create(ctx context.Context, actor Actor, payload dto.QuizCreateRequest) (models.Quiz, error) {
	questions, err := encodeQuestions(payload.Questions)
	if err != nil {
		return models.Quiz{}, err
	}

	quiz := models.Quiz{
		Title:     payload.Title,
		ModuleID:  payload.ModuleID,
		Questions: questions,
		CreatedBy: actor.ID,
	}

	if err := s.quizzes.Create(ctx, &quiz); err != nil {
		return models.Quiz{}, err
	}

	s.logger.Info().Str("quiz_id", quiz.ID).Str("created_by", actor.ID).Msg("quiz created")

	return quiz, nil
}

func (s *quizService) Update(ctx context.Context, actor Actor, id string, payload dto.QuizCreateRequest) (models.Quiz, error) {
	quiz, err := s.ownedQuiz(ctx, actor, id)
	if err != nil {
		return models.Quiz{}, err
	}

	questions, err := encodeQuestions(payload.Questions)
	if err != nil {
		return models.Quiz{}, err
	}

	quiz.Title = payload.Title
	quiz.ModuleID = payload.ModuleID
	quiz.Questions = questions

	if err := s.quizzes.Update(ctx, &quiz); err != nil {
		return models.Quiz{}, err
	}

	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.ownedQuiz(ctx, actor, id); err != nil {
		return err
	}

	return s.quizzes.Delete(ctx, id)
}

// ownedQuiz loads a quiz and enforces the ownership rule: teachers may only
// touch quizzes they created, admins may touch any.
func (s *quizService) ownedQuiz(ctx context.Context, actor Actor, id string) (models.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Quiz{}, ErrQuizNotFound
		}
		return models.Quiz{}, err
	}

	if actor.Role != models.RoleAdmin && quiz.CreatedBy != actor.ID {
		return models.Quiz{}, ErrQuizForbidden
	}

	return quiz, nil
}

func encodeQuestions(questions []dto.QuizQuestion) (datatypes.JSON, error) {
	payload, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(payload), nil
}
