package repository

import (
	"context"
	"time"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetMapResult получает результат прогона для отпечатка таблиц и seed/size, nil при промахе
	GetMapResult(ctx context.Context, dataset string, seed int64, size int) (*domain.MapResult, error)

	// SetMapResult сохраняет результат прогона
	SetMapResult(ctx context.Context, result *domain.MapResult, ttl time.Duration) error
}
