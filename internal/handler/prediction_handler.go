package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/service"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// PredictionHandler runs the city risk heuristic and serves its history.
type PredictionHandler struct {
	service service.PredictionService
	logger  zerolog.Logger
}

// NewPredictionHandler constructs the handler instance.
func NewPredictionHandler(service service.PredictionService, logger zerolog.Logger) *PredictionHandler {
	return &PredictionHandler{
		service: service,
		logger:  logger.With().Str("component", "prediction_handler").Logger(),
	}
}

// Register wires the prediction routes.
func (h *PredictionHandler) Register(router fiber.Router) {
	router.Post("/predict-disaster", h.predict)
	router.Get("/predictions", h.listRecent)
}

type predictionRequest struct {
	City string `json:"city"`
}

func (h *PredictionHandler) predict(c *fiber.Ctx) error {
	// City arrives as a query parameter; a JSON body works too.
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		var payload predictionRequest
		if err := c.BodyParser(&payload); err == nil {
			city = strings.TrimSpace(payload.City)
		}
	}

	prediction, err := h.service.Predict(c.UserContext(), actorFromContext(c), city)
	if err != nil {
		if errors.Is(err, service.ErrCityRequired) {
			return utils.SendError(c, fiber.StatusBadRequest, "city is required")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute prediction")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute prediction")
	}

	return utils.SendSuccess(c, "risk prediction computed", prediction)
}

func (h *PredictionHandler) listRecent(c *fiber.Ctx) error {
	predictions, err := h.service.ListRecent(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list predictions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list predictions")
	}

	return utils.SendSuccess(c, "predictions retrieved", predictions)
}
