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

// ContactHandler serves the emergency-contact directory.
type ContactHandler struct {
	service   service.ContactService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewContactHandler constructs the handler instance.
func NewContactHandler(service service.ContactService, validator *validator.Validate, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires the read-only directory route.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin wires the admin-only directory maintenance routes.
func (h *ContactHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:contact_id", h.update)
}

func (h *ContactHandler) list(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list emergency contacts")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list contacts")
	}

	return utils.SendSuccess(c, "emergency contacts retrieved", contacts)
}

func (h *ContactHandler) create(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	contact, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create emergency contact")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create contact")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "emergency contact created", contact)
}

func (h *ContactHandler) update(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	contact, err := h.service.Update(c.UserContext(), c.Params("contact_id"), payload)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "emergency contact not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update emergency contact")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update contact")
	}

	return utils.SendSuccess(c, "emergency contact updated", contact)
}
