package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/service"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// ModuleHandler serves the instructional module catalog.
type ModuleHandler struct {
	service service.ModuleService
	logger  zerolog.Logger
}

// NewModuleHandler constructs the handler instance.
func NewModuleHandler(service service.ModuleService, logger zerolog.Logger) *ModuleHandler {
	return &ModuleHandler{
		service: service,
		logger:  logger.With().Str("component", "module_handler").Logger(),
	}
}

// Register wires the module routes.
func (h *ModuleHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:module_id", h.get)
}

func (h *ModuleHandler) list(c *fiber.Ctx) error {
	modules, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list modules")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list modules")
	}

	return utils.SendSuccess(c, "modules retrieved", modules)
}

func (h *ModuleHandler) get(c *fiber.Ctx) error {
	module, err := h.service.Get(c.UserContext(), c.Params("module_id"))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "module not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch module")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch module")
	}

	return utils.SendSuccess(c, "module retrieved", module)
}
