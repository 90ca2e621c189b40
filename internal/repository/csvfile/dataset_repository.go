package csvfile

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/domain/repository"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

type datasetRepository struct {
	segmentsPath string
	potholesPath string
	logger       *zap.Logger
}

// NewDatasetRepository - источник данных из двух CSV файлов
func NewDatasetRepository(segmentsPath, potholesPath string, logger *zap.Logger) repository.DatasetRepository {
	return &datasetRepository{
		segmentsPath: segmentsPath,
		potholesPath: potholesPath,
		logger:       logger,
	}
}

// LoadSegments читает таблицу маршрутов. Колонка Line обязательна,
// её значения могут быть пустыми.
func (r *datasetRepository) LoadSegments(ctx context.Context) ([]domain.SweepingSegment, error) {
	t, err := readTable(ctx, r.segmentsPath)
	if err != nil {
		return nil, err
	}

	if !t.has(domain.LineColumn) {
		return nil, fmt.Errorf("%w: %s: missing required column %q",
			errors.ErrDatasetParse, t.path, domain.LineColumn)
	}

	segments := make([]domain.SweepingSegment, 0, len(t.rows))
	for i, row := range t.rows {
		segments = append(segments, domain.SweepingSegment{
			Row:    i + 1,
			Fields: t.record(row),
			Line:   t.get(row, domain.LineColumn),
		})
	}

	r.logger.Info("Segments loaded",
		zap.String("path", t.path),
		zap.Int("rows", len(segments)),
	)
	return segments, nil
}

// LoadPotholes читает таблицу выбоин. link_photo и severity_score необязательны;
// ссылки на фото сразу переводятся в ссылки на превью.
func (r *datasetRepository) LoadPotholes(ctx context.Context) ([]domain.PotholeReport, error) {
	t, err := readTable(ctx, r.potholesPath)
	if err != nil {
		return nil, err
	}

	potholes := make([]domain.PotholeReport, 0, len(t.rows))
	for i, row := range t.rows {
		report, err := parsePothole(t, row, i+1)
		if err != nil {
			return nil, err
		}
		potholes = append(potholes, report)
	}

	r.logger.Info("Potholes loaded",
		zap.String("path", t.path),
		zap.Int("rows", len(potholes)),
		zap.Bool("has_link_photo", t.has(domain.LinkPhotoColumn)),
		zap.Bool("has_severity_score", t.has(domain.SeverityScoreColumn)),
	)
	return potholes, nil
}

func parsePothole(t *table, row []string, rowNum int) (domain.PotholeReport, error) {
	report := domain.PotholeReport{
		Row:       rowNum,
		Fields:    t.record(row),
		LinkPhoto: t.get(row, domain.LinkPhotoColumn),
	}

	if report.LinkPhoto != "" {
		converted, err := domain.ConvertDriveLink(report.LinkPhoto)
		if err != nil {
			return domain.PotholeReport{}, fmt.Errorf("%s: row %d: %w", t.path, rowNum, err)
		}
		report.ConvertedLink = converted
	}

	if raw := t.get(row, domain.SeverityScoreColumn); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.PotholeReport{}, fmt.Errorf("%w: %s: row %d: severity_score %q is not numeric",
				errors.ErrDatasetParse, t.path, rowNum, raw)
		}
		report.SeverityScore = score
		report.HasSeverity = true
	}

	return report, nil
}
