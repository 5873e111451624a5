package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/service"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// QuizHandler serves the quiz catalog plus the teacher-scoped CRUD surface.
type QuizHandler struct {
	service   service.QuizService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewQuizHandler constructs the handler instance.
func NewQuizHandler(service service.QuizService, validator *validator.Validate, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "quiz_handler").Logger(),
	}
}

// Register wires the read-only quiz routes available to every user.
func (h *QuizHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/module/:module_id", h.listByModule)
}

// RegisterTeacher wires the quiz CRUD routes for teachers and admins.
func (h *QuizHandler) RegisterTeacher(router fiber.Router) {
	router.Get("", h.listForTeacher)
	router.Post("", h.create)
	router.Put("/:quiz_id", h.update)
	router.Delete("/:quiz_id", h.delete)
}

func (h *QuizHandler) list(c *fiber.Ctx) error {
	quizzes, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list quizzes")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list quizzes")
	}

	return utils.SendSuccess(c, "quizzes retrieved", quizzes)
}

func (h *QuizHandler) listByModule(c *fiber.Ctx) error {
	quizzes, err := h.service.ListByModule(c.UserContext(), c.Params("module_id"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list module quizzes")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list quizzes")
	}

	return utils.SendSuccess(c, "quizzes retrieved", quizzes)
}

func (h *QuizHandler) listForTeacher(c *fiber.Ctx) error {
	quizzes, err := h.service.ListForTeacher(c.UserContext(), actorFromContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list teacher quizzes")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list quizzes")
	}

	return utils.SendSuccess(c, "quizzes retrieved", quizzes)
}

func (h *QuizHandler) create(c *fiber.Ctx) error {
	var payload dto.QuizCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	quiz, err := h.service.Create(c.UserContext(), actorFromContext(c), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create quiz")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create quiz")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "quiz created", quiz)
}

func (h *QuizHandler) update(c *fiber.Ctx) error {
	var payload dto.QuizCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	quiz, err := h.service.Update(c.UserContext(), actorFromContext(c), c.Params("quiz_id"), payload)
	if err != nil {
		return h.quizError(c, err, "failed to update quiz")
	}

	return utils.SendSuccess(c, "quiz updated", quiz)
}

func (h *QuizHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorFromContext(c), c.Params("quiz_id")); err != nil {
		return h.quizError(c, err, "failed to delete quiz")
	}

	return utils.SendSuccess(c, "quiz deleted", nil)
}

func (h *QuizHandler) quizError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "quiz not found")
	case errors.Is(err, service.ErrQuizForbidden):
		return utils.SendError(c, fiber.StatusForbidden, "can only modify your own quizzes")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(fallback)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
