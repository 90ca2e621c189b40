package domain

import (
	"time"

	"github.com/google/uuid"
)

// MapResult - результат одного прогона пайплайна
type MapResult struct {
	RunID uuid.UUID `json:"run_id"`
	// Dataset - отпечаток таблиц, по которым построен результат
	Dataset     string       `json:"dataset"`
	Seed        int64        `json:"seed"`
	SampleSize  int          `json:"sample_size"`
	GeneratedAt time.Time    `json:"generated_at"`
	Annotations []Annotation `json:"annotations"`
	Stats       RunStats     `json:"stats"`
}

// RunStats - счётчики одного прогона
type RunStats struct {
	Sampled           int `json:"sampled"`
	Annotated         int `json:"annotated"`
	SkippedGeometries int `json:"skipped_geometries"`
	WithThumbnail     int `json:"with_thumbnail"`
}

// DatasetStats - статистика по загруженным таблицам
type DatasetStats struct {
	SegmentsLoaded      int       `json:"segments_loaded"`
	SegmentsWithoutLine int       `json:"segments_without_line"`
	SegmentsWithLine    int       `json:"segments_with_line"`
	LineStrings         int       `json:"line_strings"`
	OtherGeometries     int       `json:"other_geometries"`
	PotholesLoaded      int       `json:"potholes_loaded"`
	PotholesWithPhoto   int       `json:"potholes_with_photo"`
	Fingerprint         string    `json:"fingerprint"`
	LoadedAt            time.Time `json:"loaded_at"`
}
