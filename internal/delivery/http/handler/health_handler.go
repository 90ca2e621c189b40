package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"

	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
)

// HealthHandler - health check
type HealthHandler struct {
	mapUC MapService
	clock clockwork.Clock
}

func NewHealthHandler(mapUC MapService, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{mapUC: mapUC, clock: clock}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:        "healthy",
		Time:          h.clock.Now(),
		DatasetLoaded: h.mapUC.Loaded(),
	})
}
