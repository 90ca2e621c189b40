package cache

import (
	"context"
	"time"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/domain/repository"
)

// nopRepository используется, когда Redis выключен: всегда промах, запись игнорируется
type nopRepository struct{}

func NewNopRepository() repository.CacheRepository {
	return nopRepository{}
}

func (nopRepository) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (nopRepository) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (nopRepository) Delete(context.Context, string) error { return nil }

func (nopRepository) GetMapResult(context.Context, string, int64, int) (*domain.MapResult, error) {
	return nil, nil
}

func (nopRepository) SetMapResult(context.Context, *domain.MapResult, time.Duration) error {
	return nil
}
