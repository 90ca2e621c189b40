package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/utils"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	mapUC  MapService
	logger *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(mapUC MapService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetStatistics godoc
// @Summary Get dataset statistics
// @Description Возвращает статистику по загруженным таблицам маршрутов и выбоин
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StatsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling get statistics request")

	stats, err := h.mapUC.Stats(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StatsResponse{Dataset: *stats}, nil)
}
