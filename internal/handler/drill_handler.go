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

// DrillHandler records drill participation and serves drill history.
type DrillHandler struct {
	service   service.DrillService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDrillHandler constructs the handler instance.
func NewDrillHandler(service service.DrillService, validator *validator.Validate, logger zerolog.Logger) *DrillHandler {
	return &DrillHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "drill_handler").Logger(),
	}
}

// Register wires the drill routes.
func (h *DrillHandler) Register(router fiber.Router) {
	router.Post("", h.record)
	router.Get("/:user_id", h.listForUser)
}

func (h *DrillHandler) record(c *fiber.Ctx) error {
	var payload dto.DrillRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	drill, err := h.service.Record(c.UserContext(), actorFromContext(c), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to record drill participation")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to record drill")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "drill participation recorded", drill)
}

func (h *DrillHandler) listForUser(c *fiber.Ctx) error {
	drills, err := h.service.ListForUser(c.UserContext(), actorFromContext(c), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list drill participations")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list drills")
	}

	return utils.SendSuccess(c, "drill participations retrieved", drills)
}
