package handler

import (
	"context"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
)

// MapService - то, что хендлерам нужно от usecase.MapUseCase
type MapService interface {
	Build(ctx context.Context, seed int64, size int) (*domain.MapResult, error)
	Stats(ctx context.Context) (*domain.DatasetStats, error)
	Canvas(result *domain.MapResult) mapview.Canvas
	Loaded() bool
}
