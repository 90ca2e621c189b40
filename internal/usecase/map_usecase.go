package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/domain/repository"
	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
	"github.com/alexanderquispe/pothole-dashboard/internal/observability"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

// MapUseCase загружает таблицы один раз и строит по ним карты для пар seed/size
type MapUseCase struct {
	datasetRepo repository.DatasetRepository
	cacheRepo   repository.CacheRepository
	metrics     *observability.Metrics
	clock       clockwork.Clock
	mapOptions  mapview.MapOptions
	logger      *zap.Logger
	cacheTTL    time.Duration

	mu       sync.RWMutex
	segments []domain.SweepingSegment
	potholes []domain.PotholeReport
	stats    *domain.DatasetStats
}

// NewMapUseCase создает новый экземпляр MapUseCase
func NewMapUseCase(
	datasetRepo repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	mapOptions mapview.MapOptions,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MapUseCase {
	return &MapUseCase{
		datasetRepo: datasetRepo,
		cacheRepo:   cacheRepo,
		metrics:     metrics,
		clock:       clock,
		mapOptions:  mapOptions,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Load читает обе таблицы и присоединяет геометрию. После успешного Load
// таблицы только читаются.
func (uc *MapUseCase) Load(ctx context.Context) error {
	// 1. Маршруты уборки
	segments, err := uc.datasetRepo.LoadSegments(ctx)
	if err != nil {
		return fmt.Errorf("load segments: %w", err)
	}

	// 2. Геометрия (строки без Line отбрасываются)
	attached, err := AttachGeometry(segments)
	if err != nil {
		return fmt.Errorf("attach geometry: %w", err)
	}

	// 3. Выбоины
	potholes, err := uc.datasetRepo.LoadPotholes(ctx)
	if err != nil {
		return fmt.Errorf("load potholes: %w", err)
	}

	stats := datasetStats(segments, attached, potholes)
	stats.Fingerprint = DatasetFingerprint(segments, potholes)
	stats.LoadedAt = uc.clock.Now().UTC()

	uc.mu.Lock()
	uc.segments = attached
	uc.potholes = potholes
	uc.stats = stats
	uc.mu.Unlock()

	uc.metrics.SegmentsLoaded.Set(float64(stats.SegmentsLoaded))
	uc.metrics.SegmentsDropped.Set(float64(stats.SegmentsWithoutLine))
	uc.metrics.PotholesLoaded.Set(float64(stats.PotholesLoaded))

	uc.logger.Info("Dataset loaded",
		zap.Int("segments", stats.SegmentsLoaded),
		zap.Int("segments_with_line", stats.SegmentsWithLine),
		zap.Int("line_strings", stats.LineStrings),
		zap.Int("potholes", stats.PotholesLoaded),
		zap.String("fingerprint", stats.Fingerprint),
	)
	return nil
}

func datasetStats(all, attached []domain.SweepingSegment, potholes []domain.PotholeReport) *domain.DatasetStats {
	stats := &domain.DatasetStats{
		SegmentsLoaded:      len(all),
		SegmentsWithLine:    len(attached),
		SegmentsWithoutLine: len(all) - len(attached),
		PotholesLoaded:      len(potholes),
	}
	for _, s := range attached {
		if ls, ok := s.Geometry.(orb.LineString); ok && len(ls) > 0 {
			stats.LineStrings++
		} else {
			stats.OtherGeometries++
		}
	}
	for _, p := range potholes {
		if p.HasThumbnail() {
			stats.PotholesWithPhoto++
		}
	}
	return stats
}

// Loaded - были ли таблицы загружены
func (uc *MapUseCase) Loaded() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.stats != nil
}

// Build выбирает size сегментов по seed и строит для них маркеры.
// Список аннотаций зависит только от таблиц, seed и size; кеш ищется по отпечатку таблиц.
func (uc *MapUseCase) Build(ctx context.Context, seed int64, size int) (*domain.MapResult, error) {
	uc.mu.RLock()
	segments, potholes, stats := uc.segments, uc.potholes, uc.stats
	uc.mu.RUnlock()

	if stats == nil {
		return nil, errors.ErrDatasetNotLoaded
	}
	dataset := stats.Fingerprint

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetMapResult(ctx, dataset, seed, size)
	switch {
	case err != nil:
		uc.metrics.CacheLookups.WithLabelValues("error").Inc()
		uc.logger.Warn("Failed to get map result from cache", zap.Error(err))
	case cached != nil:
		uc.metrics.CacheLookups.WithLabelValues("hit").Inc()
		uc.logger.Debug("Map result fetched from cache",
			zap.Int64("seed", seed),
			zap.Int("size", size))
		return cached, nil
	default:
		uc.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	// 2. Выборка и аннотации
	start := uc.clock.Now()
	pairs, err := NewSampler(NewSeededRand(seed)).Sample(segments, potholes, size)
	if err != nil {
		uc.metrics.Builds.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("sample: %w", err)
	}

	annotations, skipped := BuildAnnotations(pairs)

	result := &domain.MapResult{
		RunID:       uuid.New(),
		Dataset:     dataset,
		Seed:        seed,
		SampleSize:  size,
		GeneratedAt: uc.clock.Now().UTC(),
		Annotations: annotations,
		Stats: domain.RunStats{
			Sampled:           len(pairs),
			Annotated:         len(annotations),
			SkippedGeometries: skipped,
			WithThumbnail:     countWithThumbnail(pairs),
		},
	}

	uc.metrics.Builds.WithLabelValues("success").Inc()
	uc.metrics.AnnotationsProduced.Add(float64(len(annotations)))
	uc.metrics.SkippedGeometries.Add(float64(skipped))
	uc.metrics.BuildDuration.Observe(uc.clock.Since(start).Seconds())

	uc.logger.Info("Map built",
		zap.String("run_id", result.RunID.String()),
		zap.Int64("seed", seed),
		zap.Int("size", size),
		zap.Int("annotations", len(annotations)),
		zap.Int("skipped", skipped),
	)

	// 3. Кешируем
	if err := uc.cacheRepo.SetMapResult(ctx, result, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache map result", zap.Error(err))
		// Не возвращаем ошибку, т.к. результат уже построен
	}

	return result, nil
}

func countWithThumbnail(pairs []domain.SamplePair) int {
	n := 0
	for _, pair := range pairs {
		if _, ok := pair.Segment.FirstLinePoint(); ok && pair.Pothole.HasThumbnail() {
			n++
		}
	}
	return n
}

// Stats возвращает статистику загруженных таблиц
func (uc *MapUseCase) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.stats == nil {
		return nil, errors.ErrDatasetNotLoaded
	}
	stats := *uc.stats
	return &stats, nil
}

// Canvas - холст карты для результата прогона
func (uc *MapUseCase) Canvas(result *domain.MapResult) mapview.Canvas {
	canvas := mapview.NewCanvas(uc.mapOptions, result.Annotations)
	canvas.Footer = fmt.Sprintf("Seed %d: %d of %d sampled segments shown. Generated %s.",
		result.Seed,
		result.Stats.Annotated,
		result.Stats.Sampled,
		result.GeneratedAt.Format(time.RFC3339),
	)
	return canvas
}
