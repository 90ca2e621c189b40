package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

// AnnotationsResponse - маркеры одного прогона
type AnnotationsResponse struct {
	RunID       uuid.UUID           `json:"run_id"`
	Seed        int64               `json:"seed"`
	SampleSize  int                 `json:"sample_size"`
	GeneratedAt time.Time           `json:"generated_at"`
	Annotations []domain.Annotation `json:"annotations"`
	Stats       domain.RunStats     `json:"stats"`
}

// NewAnnotationsResponse - ответ из результата прогона
func NewAnnotationsResponse(r *domain.MapResult) AnnotationsResponse {
	return AnnotationsResponse{
		RunID:       r.RunID,
		Seed:        r.Seed,
		SampleSize:  r.SampleSize,
		GeneratedAt: r.GeneratedAt,
		Annotations: r.Annotations,
		Stats:       r.Stats,
	}
}

// StatsResponse - статистика загруженных таблиц
type StatsResponse struct {
	Dataset domain.DatasetStats `json:"dataset"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status        string    `json:"status"`
	Time          time.Time `json:"time"`
	DatasetLoaded bool      `json:"dataset_loaded"`
}
