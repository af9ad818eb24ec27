package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/parameter"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already running
var ErrSchedulerRunning = errors.New("clock scheduler already running")

// ClockScheduler drives GameContext.Tick at a fixed rate
// Elapsed time is measured from the TimeSource, not assumed from the interval
type ClockScheduler struct {
	game  *GameContext
	clock TimeSource

	tickInterval time.Duration
	maxDelta     float32
	lastTick     time.Time

	tickCount atomic.Uint64
	running   atomic.Bool
}

// NewClockScheduler creates a scheduler ticking fps times per second
// maxDelta bounds the seconds handed to a single frame; non-positive values use the default
func NewClockScheduler(game *GameContext, clock TimeSource, fps int, maxDelta float32) *ClockScheduler {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	if maxDelta <= 0 {
		maxDelta = parameter.MaxDeltaTime
	}
	return &ClockScheduler{
		game:         game,
		clock:        clock,
		tickInterval: time.Second / time.Duration(fps),
		maxDelta:     maxDelta,
		lastTick:     clock.Now(),
	}
}

// Step measures the time since the previous step and runs one frame with it
// Returns the dt applied
func (cs *ClockScheduler) Step() float32 {
	now := cs.clock.Now()
	dt := float32(now.Sub(cs.lastTick).Seconds())
	cs.lastTick = now

	if dt < 0 {
		dt = 0
	}
	if dt > cs.maxDelta {
		dt = cs.maxDelta
	}

	cs.game.Tick(dt)
	cs.tickCount.Add(1)
	return dt
}

// Run ticks until ctx is cancelled
// Returns nil on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer cs.running.Store(false)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	cs.lastTick = cs.clock.Now()
	cs.game.Logger.Info().Dur("interval", cs.tickInterval).Msg("clock scheduler started")

	for {
		select {
		case <-ctx.Done():
			cs.game.Logger.Info().Uint64("ticks", cs.tickCount.Load()).Msg("clock scheduler stopped")
			return nil
		case <-ticker.C:
			cs.Step()
		}
	}
}

// TickCount returns the number of frames run by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
