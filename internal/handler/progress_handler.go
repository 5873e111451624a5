package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/service"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// ProgressHandler serves the aggregated progress and ranking views.
type ProgressHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewProgressHandler constructs the handler instance.
func NewProgressHandler(service service.ProgressService, logger zerolog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger.With().Str("component", "progress_handler").Logger(),
	}
}

// Register wires the progress routes available to every authenticated user.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Get("/user-stats/:user_id", h.userStats)
	router.Get("/leaderboard", h.leaderboard)
}

// RegisterStaff wires the teacher dashboard route.
func (h *ProgressHandler) RegisterStaff(router fiber.Router) {
	router.Get("/students-progress", h.studentsProgress)
}

// RegisterAdmin wires the admin teachers-progress route.
func (h *ProgressHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/teachers-progress", h.teachersProgress)
}

func (h *ProgressHandler) userStats(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	actor := actorFromContext(c)
	if !actor.CanAccessUserScoped(userID, models.RoleAdmin, models.RoleTeacher) {
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	}

	stats, err := h.service.UserStats(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "user not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build user stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build user stats")
	}

	return utils.SendSuccess(c, "user stats retrieved", stats)
}

func (h *ProgressHandler) leaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.service.Leaderboard(c.UserContext(), actorFromContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build leaderboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build leaderboard")
	}

	return utils.SendSuccess(c, "leaderboard retrieved", leaderboard)
}

func (h *ProgressHandler) studentsProgress(c *fiber.Ctx) error {
	progress, err := h.service.StudentsProgress(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build students progress")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build students progress")
	}

	return utils.SendSuccess(c, "students progress retrieved", progress)
}

func (h *ProgressHandler) teachersProgress(c *fiber.Ctx) error {
	progress, err := h.service.TeachersProgress(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build teachers progress")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build teachers progress")
	}

	return utils.SendSuccess(c, "teachers progress retrieved", progress)
}
