package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/service"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// AlertHandler serves emergency alerts, including the live websocket stream.
type AlertHandler struct {
	service   service.AlertService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAlertHandler constructs the handler instance.
func NewAlertHandler(service service.AlertService, validator *validator.Validate, logger zerolog.Logger) *AlertHandler {
	return &AlertHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "alert_handler").Logger(),
	}
}

// Register wires the alert routes available to every authenticated user.
func (h *AlertHandler) Register(router fiber.Router) {
	router.Get("", h.listActive)

	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.handleConnection))
}

// RegisterStaff wires alert publishing for teachers and admins.
func (h *AlertHandler) RegisterStaff(router fiber.Router) {
	router.Post("", h.create)
}

// RegisterAdmin wires the admin-only alert toggle.
func (h *AlertHandler) RegisterAdmin(router fiber.Router) {
	router.Put("/:alert_id", h.setActive)
}

func (h *AlertHandler) listActive(c *fiber.Ctx) error {
	alerts, err := h.service.ListActive(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list alerts")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list alerts")
	}

	return utils.SendSuccess(c, "active alerts retrieved", alerts)
}

func (h *AlertHandler) create(c *fiber.Ctx) error {
	var payload dto.AlertCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	alert, err := h.service.Create(c.UserContext(), actorFromContext(c), payload)
	if err != nil {
		if errors.Is(err, service.ErrAlertEmptyMessage) {
			return utils.SendError(c, fiber.StatusBadRequest, "alert message is empty")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create alert")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create alert")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "alert published", alert)
}

func (h *AlertHandler) setActive(c *fiber.Ctx) error {
	var payload dto.AlertUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return sendValidationError(c, err)
	}

	if err := h.service.SetActive(c.UserContext(), c.Params("alert_id"), *payload.Active); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "alert not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update alert")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update alert")
	}

	return utils.SendSuccess(c, "alert updated successfully", nil)
}

func (h *AlertHandler) handleConnection(conn *websocket.Conn) {
	userID := fmt.Sprint(conn.Locals("user_id"))
	if userID == "" || userID == "<nil>" {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(fiber.StatusUnauthorized, "user id missing"))
		_ = conn.Close()
		return
	}

	alerts, cancel := h.service.Subscribe()
	defer cancel()

	h.logger.Info().Str("user_id", userID).Msg("alert websocket connected")
	defer h.logger.Info().Str("user_id", userID).Msg("alert websocket disconnected")

	// Drain the read side so we notice the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case alert, ok := <-alerts:
			if !ok {
				return
			}
			if err := conn.WriteJSON(alert); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
