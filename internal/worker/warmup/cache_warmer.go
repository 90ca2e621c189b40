// Package warmup держит в кеше карты, которые открывают чаще всего.
package warmup

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
	"github.com/alexanderquispe/pothole-dashboard/internal/worker"
)

// MapBuilder - usecase.MapUseCase.Build
type MapBuilder interface {
	Build(ctx context.Context, seed int64, size int) (*domain.MapResult, error)
}

// CacheWarmer строит карты для заданных seed/size сразу при старте и затем
// каждые interval. Build сам кладёт результат в кеш, а при попадании в кеш
// ничего не пересчитывает, так что лишних прогонов нет.
type CacheWarmer struct {
	*worker.BaseWorker
	builder  MapBuilder
	targets  []dto.AnnotationsRequest
	interval time.Duration
	clock    clockwork.Clock
}

// NewCacheWarmer создает новый CacheWarmer
func NewCacheWarmer(
	builder MapBuilder,
	targets []dto.AnnotationsRequest,
	interval time.Duration,
	clock clockwork.Clock,
	logger *zap.Logger,
) *CacheWarmer {
	return &CacheWarmer{
		BaseWorker: worker.NewBaseWorker("cache-warmer", logger),
		builder:    builder,
		targets:    targets,
		interval:   interval,
		clock:      clock,
	}
}

// Start блокируется до Stop или отмены ctx
func (w *CacheWarmer) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting cache warmer",
		zap.Int("targets", len(w.targets)),
		zap.Duration("interval", w.interval))

	w.warm(ctx)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.Chan():
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) {
	for _, t := range w.targets {
		if _, err := w.builder.Build(ctx, t.Seed, t.Size); err != nil {
			w.Logger().Warn("Failed to warm map",
				zap.Int64("seed", t.Seed),
				zap.Int("size", t.Size),
				zap.Error(err))
		}
	}
}
