package main

// @title Pothole Map API
// @version 1.0.0
// @description Карта выбоин Сан-Франциско: детерминированная выборка маршрутов уборки улиц, к каждому из которых привязана случайная выбоина. Цвет маркера отражает severity score (красный = высокий приоритет, зелёный = низкий).
// @description
// @description Основные возможности:
// @description - HTML страница с картой для заданных seed и size
// @description - Маркеры карты в JSON и GeoJSON
// @description - Статистика по загруженным таблицам

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/alexanderquispe/pothole-dashboard/docs/swagger"
	"github.com/alexanderquispe/pothole-dashboard/internal/config"
	httpDelivery "github.com/alexanderquispe/pothole-dashboard/internal/delivery/http"
	"github.com/alexanderquispe/pothole-dashboard/internal/delivery/http/handler"
	"github.com/alexanderquispe/pothole-dashboard/internal/domain/repository"
	"github.com/alexanderquispe/pothole-dashboard/internal/observability"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/logger"
	"github.com/alexanderquispe/pothole-dashboard/internal/repository/cache"
	"github.com/alexanderquispe/pothole-dashboard/internal/repository/csvfile"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
	"github.com/alexanderquispe/pothole-dashboard/internal/worker"
	"github.com/alexanderquispe/pothole-dashboard/internal/worker/warmup"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Pothole Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("segments", cfg.Dataset.SegmentsPath),
		zap.String("potholes", cfg.Dataset.PotholesPath),
	)

	// 3. Connect to Redis (optional)
	var cacheRepo repository.CacheRepository = cache.NewNopRepository()
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		log.Info("Redis disabled, annotation cache is off")
	}

	// 4. Initialize Repositories
	datasetRepo := csvfile.NewDatasetRepository(cfg.Dataset.SegmentsPath, cfg.Dataset.PotholesPath, log)

	// 5. Initialize Use Cases
	clock := clockwork.NewRealClock()
	mapUC := usecase.NewMapUseCase(
		datasetRepo,
		cacheRepo,
		observability.NewMetrics(),
		clock,
		cfg.MapOptions(),
		log,
		cfg.Cache.AnnotationsCacheTTL,
	)

	// 6. Load datasets
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := mapUC.Load(ctx); err != nil {
		log.Fatal("Failed to load datasets", zap.Error(err))
	}

	defaults := dto.AnnotationsRequest{Seed: cfg.Sample.Seed, Size: cfg.Sample.Size}

	// 7. Cache warmup (only with Redis)
	workerManager := worker.NewWorkerManager(clock, worker.DefaultShutdownTimeout, log)
	if cfg.Redis.Enabled && cfg.Cache.WarmupInterval > 0 {
		workerManager.Register(warmup.NewCacheWarmer(
			mapUC,
			[]dto.AnnotationsRequest{defaults},
			cfg.Cache.WarmupInterval,
			clock,
			log,
		))
		if err := workerManager.Start(context.Background()); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 8. Initialize HTTP Handlers
	mapHandler := handler.NewMapHandler(mapUC, defaults, log)
	annotationHandler := handler.NewAnnotationHandler(mapUC, defaults, log)
	statsHandler := handler.NewStatsHandler(mapUC, log)
	healthHandler := handler.NewHealthHandler(mapUC, clock)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		mapHandler,
		annotationHandler,
		statsHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workerManager.Len() > 0 {
		if err := workerManager.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
