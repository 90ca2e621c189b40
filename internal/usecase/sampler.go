package usecase

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

// maxSubSeed - верхняя граница (включительно) под-seed для выбора выбоины
const maxSubSeed = 1000

// NewSeededRand - детерминированный генератор для заданного seed
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Sampler выбирает сегменты и выбоины из переданного генератора.
// Один и тот же seed и одни и те же таблицы дают одинаковую выборку.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler - создание Sampler поверх явно переданного генератора
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample выбирает n различных сегментов без возвращения и для каждого
// одну выбоину с возвращением. Если строк меньше n, возвращается
// ErrInsufficientData: выборка никогда не усекается.
func (s *Sampler) Sample(segments []domain.SweepingSegment, potholes []domain.PotholeReport, n int) ([]domain.SamplePair, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", errors.ErrInvalidRequest, n)
	}

	picked, err := s.sampleIndexes(len(segments), n)
	if err != nil {
		return nil, err
	}

	if n > 0 && len(potholes) == 0 {
		return nil, errors.ErrInsufficientData.WithDetails(map[string]interface{}{
			"table":     "potholes",
			"requested": 1,
			"available": 0,
		})
	}

	pairs := make([]domain.SamplePair, 0, n)
	for _, idx := range picked {
		pairs = append(pairs, domain.SamplePair{
			Segment: segments[idx],
			Pothole: potholes[s.pickPothole(len(potholes))],
		})
	}
	return pairs, nil
}

// sampleIndexes - частичный Fisher-Yates: первые n позиций перестановки
func (s *Sampler) sampleIndexes(total, n int) ([]int, error) {
	if n > total {
		return nil, errors.ErrInsufficientData.WithDetails(map[string]interface{}{
			"table":     "segments",
			"requested": n,
			"available": total,
		})
	}

	indexes := make([]int, total)
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(total-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	return indexes[:n], nil
}

// pickPothole - каждая выборка выбоины получает свой под-seed
func (s *Sampler) pickPothole(total int) int {
	subSeed := s.rng.Int64N(maxSubSeed + 1)
	return NewSeededRand(subSeed).IntN(total)
}
