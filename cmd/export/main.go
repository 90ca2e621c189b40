// Command export строит карту один раз для seed и size из конфигурации
// и сохраняет её в HTML файл.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/config"
	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
	"github.com/alexanderquispe/pothole-dashboard/internal/observability"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/logger"
	"github.com/alexanderquispe/pothole-dashboard/internal/repository/cache"
	"github.com/alexanderquispe/pothole-dashboard/internal/repository/csvfile"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Sync до os.Exit
	err = run(cfg, log)
	if err != nil {
		log.Error("Export failed", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mapUC := usecase.NewMapUseCase(
		csvfile.NewDatasetRepository(cfg.Dataset.SegmentsPath, cfg.Dataset.PotholesPath, log),
		cache.NewNopRepository(),
		observability.NewMetrics(),
		clockwork.NewRealClock(),
		cfg.MapOptions(),
		log,
		0,
	)

	if err := mapUC.Load(ctx); err != nil {
		return err
	}

	result, err := mapUC.Build(ctx, cfg.Sample.Seed, cfg.Sample.Size)
	if err != nil {
		return err
	}

	if err := writeMap(cfg.Export.Path, mapUC.Canvas(result)); err != nil {
		return err
	}

	log.Info("Map exported",
		zap.String("path", cfg.Export.Path),
		zap.String("run_id", result.RunID.String()),
		zap.Int("annotations", len(result.Annotations)),
	)
	return nil
}

// writeMap рендерит холст в файл. Ошибка Close тоже считается ошибкой записи.
func writeMap(path string, canvas mapview.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := mapview.Render(w, canvas); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
