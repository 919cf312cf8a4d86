package workers

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolDefaultsToCPUCount(t *testing.T) {
	p := NewPool(0)
	assert.Greater(t, p.Workers(), 0)

	p = NewPool(3)
	assert.Equal(t, 3, p.Workers())
}

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	p := NewStartedPool(4)
	defer p.Stop()

	tests := []struct {
		name       string
		start, end int
	}{
		{"fewer items than workers", 0, 3},
		{"uneven split", 0, 103},
		{"offset range", 50, 90},
		{"empty", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, tt.end+1)
			err := p.ParallelFor(context.Background(), tt.start, tt.end, func(i int) {
				atomic.AddInt32(&hits[i], 1)
			})
			require.NoError(t, err)
			for i := range hits {
				want := int32(0)
				if i >= tt.start && i < tt.end {
					want = 1
				}
				assert.Equal(t, want, hits[i], "index %d", i)
			}
		})
	}
}

func TestParallelForCancelled(t *testing.T) {
	p := NewStartedPool(2)
	defer p.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := p.ParallelFor(ctx, 0, 100, func(int) { calls.Add(1) })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	p := NewStartedPool(1)
	p.Stop()
	assert.NotPanics(t, p.Stop)
}
