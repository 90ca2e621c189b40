package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/utils"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
)

const mimeGeoJSON = "application/geo+json"

// AnnotationHandler - маркеры карты в виде JSON и GeoJSON
type AnnotationHandler struct {
	mapUC    MapService
	defaults dto.AnnotationsRequest
	logger   *zap.Logger
}

// NewAnnotationHandler - создание нового AnnotationHandler
func NewAnnotationHandler(mapUC MapService, defaults dto.AnnotationsRequest, logger *zap.Logger) *AnnotationHandler {
	return &AnnotationHandler{
		mapUC:    mapUC,
		defaults: defaults,
		logger:   logger,
	}
}

// GetAnnotations godoc
// @Summary Get map annotations
// @Description Выбирает size сегментов по seed и возвращает маркеры с цветом по severity score
// @Tags Annotations
// @Accept json
// @Produce json
// @Param seed query int false "Seed выборки" minimum(0) default(42)
// @Param size query int false "Количество сегментов" minimum(1) maximum(10000) default(60)
// @Success 200 {object} utils.SuccessResponse{data=dto.AnnotationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/annotations [get]
func (h *AnnotationHandler) GetAnnotations(c *fiber.Ctx) error {
	start := time.Now()

	req, err := parseAnnotationsRequest(c, h.defaults)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.Build(c.Context(), req.Seed, req.Size)
	if err != nil {
		h.logger.Warn("Failed to build annotations", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewAnnotationsResponse(result), &utils.Meta{
		Total:    len(result.Annotations),
		Seed:     &result.Seed,
		RunID:    result.RunID.String(),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetAnnotationsGeoJSON godoc
// @Summary Get map annotations as GeoJSON
// @Description Те же маркеры, что и /api/v1/annotations, в виде GeoJSON FeatureCollection из точек
// @Tags Annotations
// @Produce json
// @Param seed query int false "Seed выборки" minimum(0) default(42)
// @Param size query int false "Количество сегментов" minimum(1) maximum(10000) default(60)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/annotations.geojson [get]
func (h *AnnotationHandler) GetAnnotationsGeoJSON(c *fiber.Ctx) error {
	req, err := parseAnnotationsRequest(c, h.defaults)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.Build(c.Context(), req.Seed, req.Size)
	if err != nil {
		h.logger.Warn("Failed to build annotations", zap.Error(err))
		return utils.SendError(c, err)
	}

	data, err := FeatureCollection(result).MarshalJSON()
	if err != nil {
		h.logger.Error("Failed to marshal GeoJSON", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, mimeGeoJSON)
	return c.Send(data)
}

// FeatureCollection - по одной точке на аннотацию, стиль маркера в properties
func FeatureCollection(result *domain.MapResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"run_id": result.RunID.String(),
		"seed":   result.Seed,
	}

	for _, a := range result.Annotations {
		f := geojson.NewFeature(orb.Point{a.Position.Lon, a.Position.Lat})
		f.Properties["color"] = a.Color
		f.Properties["fill_color"] = a.FillColor
		f.Properties["popup"] = a.Popup
		f.Properties["tooltip"] = a.Tooltip
		f.Properties["severity_score"] = a.SeverityScore
		f.Properties["segment_row"] = a.SegmentRow
		f.Properties["pothole_row"] = a.PotholeRow
		fc.Append(f)
	}
	return fc
}
