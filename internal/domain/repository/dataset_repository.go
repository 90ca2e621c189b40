package repository

import (
	"context"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

// DatasetRepository определяет источник исходных таблиц
type DatasetRepository interface {
	// LoadSegments загружает таблицу маршрутов уборки улиц
	LoadSegments(ctx context.Context) ([]domain.SweepingSegment, error)

	// LoadPotholes загружает таблицу выбоин
	LoadPotholes(ctx context.Context) ([]domain.PotholeReport, error)
}
