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

// AttemptHandler records quiz attempts and serves attempt history.
type AttemptHandler struct {
	service   service.AttemptService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttemptHandler constructs the handler instance.
func NewAttemptHandler(service service.AttemptService, validator *validator.Validate, logger zerolog.Logger) *AttemptHandler {
	return &AttemptHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "attempt_handler").Logger(),
	}
}

// Register wires the quiz attempt routes.
func (h *AttemptHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
	router.Get("/:user_id", h.listForUser)
}

func (h *AttemptHandler) submit(c *fiber.Ctx) error {
	var payload dto.QuizAttemptRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	attempt, err := h.service.Submit(c.UserContext(), actorFromContext(c), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to submit quiz attempt")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit attempt")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "quiz attempt recorded", attempt)
}

func (h *AttemptHandler) listForUser(c *fiber.Ctx) error {
	attempts, err := h.service.ListForUser(c.UserContext(), actorFromContext(c), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list quiz attempts")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list attempts")
	}

	return utils.SendSuccess(c, "quiz attempts retrieved", attempts)
}
