package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepUsesMeasuredDelta(t *testing.T) {
	ctx := NewGameContext(zerolog.Nop())
	sys := &mockSystem{name: "probe"}
	ctx.AddSystem(sys)

	clock := NewMockTimeProvider(time.Unix(1000, 0))
	cs := NewClockScheduler(ctx, clock, 60, 0.25)

	clock.Advance(100 * time.Millisecond)
	dt := cs.Step()
	assert.InDelta(t, 0.1, dt, 1e-6)

	// Stalled loop is clamped
	clock.Advance(3 * time.Second)
	dt = cs.Step()
	assert.InDelta(t, 0.25, dt, 1e-6)

	// No time passed
	dt = cs.Step()
	assert.Equal(t, float32(0), dt)

	require.Len(t, sys.dts, 3)
	assert.Equal(t, uint64(3), cs.TickCount())
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx := NewGameContext(zerolog.Nop())
	cs := NewClockScheduler(ctx, NewTimeProvider(), 200, 0)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cs.Run(runCtx) }()

	require.Eventually(t, func() bool { return cs.TickCount() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
	assert.GreaterOrEqual(t, ctx.FrameNumber.Load(), int64(3))
}

func TestRunRejectsSecondStart(t *testing.T) {
	ctx := NewGameContext(zerolog.Nop())
	cs := NewClockScheduler(ctx, NewTimeProvider(), 100, 0)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cs.Run(runCtx)

	require.Eventually(t, func() bool { return cs.running.Load() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, cs.Run(runCtx), ErrSchedulerRunning)
}
