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

// CompletionHandler records and reports module video completions.
type CompletionHandler struct {
	service   service.CompletionService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCompletionHandler constructs the handler instance.
func NewCompletionHandler(service service.CompletionService, validator *validator.Validate, logger zerolog.Logger) *CompletionHandler {
	return &CompletionHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "completion_handler").Logger(),
	}
}

// Register wires the video completion routes.
func (h *CompletionHandler) Register(router fiber.Router) {
	router.Post("", h.markComplete)
	router.Get("/:module_id", h.status)
}

func (h *CompletionHandler) markComplete(c *fiber.Ctx) error {
	var payload dto.CompletionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	completion, err := h.service.MarkComplete(c.UserContext(), userIDFromContext(c), payload)
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "module not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to record video completion")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to record completion")
	}

	return utils.SendSuccess(c, "video completion recorded", completion)
}

func (h *CompletionHandler) status(c *fiber.Ctx) error {
	status, err := h.service.Status(c.UserContext(), userIDFromContext(c), c.Params("module_id"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch completion status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch completion status")
	}

	return utils.SendSuccess(c, "completion status retrieved", status)
}
