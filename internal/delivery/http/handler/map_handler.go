package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/utils"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
)

// MapHandler - HTML страница с картой
type MapHandler struct {
	mapUC    MapService
	defaults dto.AnnotationsRequest
	logger   *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC MapService, defaults dto.AnnotationsRequest, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:    mapUC,
		defaults: defaults,
		logger:   logger,
	}
}

// Index godoc
// @Summary Pothole map page
// @Description HTML страница с картой для seed и size из конфигурации
// @Tags Map
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router / [get]
func (h *MapHandler) Index(c *fiber.Ctx) error {
	return h.render(c, h.defaults)
}

// Map godoc
// @Summary Pothole map page for a seed
// @Description HTML страница с картой для заданных seed и size. Один и тот же seed даёт одну и ту же карту.
// @Tags Map
// @Produce html
// @Param seed query int false "Seed выборки" minimum(0)
// @Param size query int false "Количество сегментов" minimum(1) maximum(10000)
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /map [get]
func (h *MapHandler) Map(c *fiber.Ctx) error {
	req, err := parseAnnotationsRequest(c, h.defaults)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.render(c, req)
}

func (h *MapHandler) render(c *fiber.Ctx, req dto.AnnotationsRequest) error {
	result, err := h.mapUC.Build(c.Context(), req.Seed, req.Size)
	if err != nil {
		h.logger.Error("Failed to build map",
			zap.Int64("seed", req.Seed),
			zap.Int("size", req.Size),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := mapview.Render(c, h.mapUC.Canvas(result)); err != nil {
		h.logger.Error("Failed to render map page", zap.Error(err))
		return utils.SendError(c, err)
	}
	return nil
}
