package warmup_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
	"github.com/alexanderquispe/pothole-dashboard/internal/worker/warmup"
)

type fakeBuilder struct {
	calls chan dto.AnnotationsRequest
	err   error
}

func newFakeBuilder(err error) *fakeBuilder {
	return &fakeBuilder{calls: make(chan dto.AnnotationsRequest, 16), err: err}
}

func (b *fakeBuilder) Build(_ context.Context, seed int64, size int) (*domain.MapResult, error) {
	b.calls <- dto.AnnotationsRequest{Seed: seed, Size: size}
	if b.err != nil {
		return nil, b.err
	}
	return &domain.MapResult{Seed: seed, SampleSize: size}, nil
}

func nextCall(t *testing.T, b *fakeBuilder) dto.AnnotationsRequest {
	t.Helper()
	select {
	case c := <-b.calls:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("expected Build call")
		return dto.AnnotationsRequest{}
	}
}

func TestCacheWarmer(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "builds targets on start and on every tick"},
		{name: "build errors keep the worker running", err: stderrors.New("insufficient data")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			builder := newFakeBuilder(tt.err)
			targets := []dto.AnnotationsRequest{{Seed: 42, Size: 60}, {Seed: 7, Size: 10}}
			w := warmup.NewCacheWarmer(builder, targets, time.Minute, clock, zap.NewNop())
			assert.Equal(t, "cache-warmer", w.Name())

			done := make(chan error, 1)
			go func() { done <- w.Start(context.Background()) }()

			assert.Equal(t, targets[0], nextCall(t, builder))
			assert.Equal(t, targets[1], nextCall(t, builder))

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			require.NoError(t, clock.BlockUntilContext(ctx, 1))
			clock.Advance(time.Minute)

			assert.Equal(t, targets[0], nextCall(t, builder))
			assert.Equal(t, targets[1], nextCall(t, builder))

			require.NoError(t, w.Stop())
			assert.NoError(t, <-done)
		})
	}
}

func TestCacheWarmer_ContextCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	builder := newFakeBuilder(nil)
	w := warmup.NewCacheWarmer(builder, nil, time.Minute, clock, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
