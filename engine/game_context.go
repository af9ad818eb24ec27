package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/status"
)

// GameContext holds the ECS world and the per-frame plumbing around it
type GameContext struct {
	// ===== Immutable After Init =====

	World  *World
	Status *status.Registry
	Logger zerolog.Logger

	eventQueue *event.EventQueue // Lock-free MPSC queue
	router     *event.Router[*World]

	// ===== Atomic =====

	FrameNumber atomic.Int64 // Completed frame count; stamped on emitted events

	statFrames     *atomic.Int64
	statDispatched *atomic.Int64
	statOverflow   *atomic.Int64
}

// NewGameContext creates a context with an empty world
func NewGameContext(logger zerolog.Logger) *GameContext {
	queue := event.NewEventQueue()
	reg := status.NewRegistry()

	return &GameContext{
		World:          NewWorld(),
		Status:         reg,
		Logger:         logger,
		eventQueue:     queue,
		router:         event.NewRouter[*World](queue),
		statFrames:     reg.Ints.Get("engine.frames"),
		statDispatched: reg.Ints.Get("events.dispatched"),
		statOverflow:   reg.Ints.Get("events.overflow"),
	}
}

// Events returns the queue producers push into
func (ctx *GameContext) Events() *event.EventQueue {
	return ctx.eventQueue
}

// AddSystem registers a system for per-frame update and, if it handles events, for routed dispatch
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(event.Handler[*World]); ok {
		ctx.router.Register(h)
	}
	ctx.Logger.Debug().Str("system", s.Name()).Int("priority", s.Priority()).Msg("system registered")
}

// Tick runs one frame: drain and dispatch all pending events, then every system in priority order
func (ctx *GameContext) Tick(dt float32) {
	ctx.World.RunSafe(func() {
		if n := ctx.router.DispatchAll(ctx.World); n > 0 {
			ctx.statDispatched.Add(int64(n))
		}
		ctx.World.UpdateLocked(dt)
	})

	ctx.statOverflow.Store(int64(ctx.eventQueue.Overflowed()))
	ctx.statFrames.Add(1)
	ctx.FrameNumber.Add(1)
}
