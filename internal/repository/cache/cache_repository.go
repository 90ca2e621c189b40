package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/domain/repository"
	apperrors "github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return newCacheRepository(redis.Client(), redis.logger)
}

func newCacheRepository(client *redis.Client, logger *zap.Logger) *cacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

// MapResultKey - ключ результата прогона. Отпечаток таблиц, seed и size полностью определяют выборку.
func MapResultKey(dataset string, seed int64, size int) string {
	return fmt.Sprintf("annotations:%s:%d:%d", dataset, seed, size)
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: get %s: %v", apperrors.ErrCacheError, key, err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: set %s: %v", apperrors.ErrCacheError, key, err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: delete %s: %v", apperrors.ErrCacheError, key, err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetMapResult получает результат прогона из кеша
func (r *cacheRepository) GetMapResult(ctx context.Context, dataset string, seed int64, size int) (*domain.MapResult, error) {
	data, err := r.Get(ctx, MapResultKey(dataset, seed, size))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var result domain.MapResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Error("Failed to unmarshal map result from cache", zap.Error(err))
		return nil, fmt.Errorf("%w: unmarshal map result: %v", apperrors.ErrCacheError, err)
	}

	return &result, nil
}

// SetMapResult сохраняет результат прогона в кеше
func (r *cacheRepository) SetMapResult(ctx context.Context, result *domain.MapResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Error("Failed to marshal map result", zap.Error(err))
		return fmt.Errorf("%w: marshal map result: %v", apperrors.ErrCacheError, err)
	}

	return r.Set(ctx, MapResultKey(result.Dataset, result.Seed, result.SampleSize), data, ttl)
}
