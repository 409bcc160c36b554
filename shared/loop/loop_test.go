package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorCarriesRemainder(t *testing.T) {
	acc := NewAccumulator(10*time.Millisecond, 0)

	assert.Equal(t, 0, acc.Advance(7*time.Millisecond))
	assert.Equal(t, 7*time.Millisecond, acc.Pending())

	assert.Equal(t, 1, acc.Advance(7*time.Millisecond))
	assert.Equal(t, 4*time.Millisecond, acc.Pending())

	assert.Equal(t, 3, acc.Advance(26*time.Millisecond))
	assert.Equal(t, 0*time.Millisecond, acc.Pending())
}

func TestAccumulatorNeverDriftsOverManyFrames(t *testing.T) {
	acc := NewAccumulator(DefaultStep, 0)
	frame := 7 * time.Millisecond
	total := 0
	for range 1000 {
		total += acc.Advance(frame)
	}
	elapsed := 1000 * frame
	assert.Equal(t, int(elapsed/DefaultStep), total)
	assert.Equal(t, elapsed%DefaultStep, acc.Pending())
}

func TestAccumulatorCapsCatchUp(t *testing.T) {
	acc := NewAccumulator(10*time.Millisecond, 3)

	assert.Equal(t, 3, acc.Advance(105*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, acc.Pending())
	assert.InDelta(t, 0.5, acc.Alpha(), 1e-9)
}

func TestAccumulatorIgnoresNegativeTime(t *testing.T) {
	acc := NewAccumulator(10*time.Millisecond, 0)
	acc.Advance(5 * time.Millisecond)
	assert.Equal(t, 0, acc.Advance(-time.Second))
	assert.Equal(t, 5*time.Millisecond, acc.Pending())

	acc.Reset()
	assert.Zero(t, acc.Pending())
}

func TestRunnerStopsWhenTickFuncDone(t *testing.T) {
	r := NewRunner(1000)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx, func(tick uint64) bool { return tick < 10 })

	require.NoError(t, err)
	assert.Equal(t, uint64(10), r.Ticks())
}

func TestRunnerHonoursContext(t *testing.T) {
	r := NewRunner(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, func(uint64) bool { return true })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner(1000)
	r.Stop()
	r.Stop()

	err := r.Run(context.Background(), func(uint64) bool { return true })

	assert.NoError(t, err)
}
