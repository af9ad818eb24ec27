package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/parameter"
)

// DestinationSystem writes requested destinations into the addressed entity's path
// Runs only in the dispatch phase, i.e. only when destination events are pending
type DestinationSystem struct {
	player *engine.Store[component.PlayerComponent]
	path   *engine.Store[component.PlayerPathComponent]
	logger zerolog.Logger

	statAssigned *atomic.Int64
	statDropped  *atomic.Int64
}

// NewDestinationSystem creates the destination assigner
func NewDestinationSystem(ctx *engine.GameContext) *DestinationSystem {
	return &DestinationSystem{
		player:       ctx.World.Components.Player,
		path:         ctx.World.Components.Path,
		logger:       ctx.Logger.With().Str("system", "destination").Logger(),
		statAssigned: ctx.Status.Ints.Get("events.assigned"),
		statDropped:  ctx.Status.Ints.Get("events.dropped"),
	}
}

func (s *DestinationSystem) Name() string {
	return "destination"
}

func (s *DestinationSystem) Priority() int {
	return parameter.PriorityDestination
}

func (s *DestinationSystem) Update(dt float32) {}

// EventTypes returns events this system handles
func (s *DestinationSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSetDestination}
}

// HandleEvent sets the destination (x, 0, z) on the target, replacing any pending one
// Targets that are not a player with a path are dropped silently
func (s *DestinationSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.DestinationPayload)
	if !ok || payload == nil {
		return
	}

	if !s.player.HasComponent(payload.Target) {
		s.statDropped.Add(1)
		s.logger.Debug().Uint64("target", uint64(payload.Target)).Msg("destination for non-player dropped")
		return
	}

	dst := mgl32.Vec3{payload.X, parameter.GroundY, payload.Z}
	if !s.path.UpdateComponent(payload.Target, func(p *component.PlayerPathComponent) {
		p.SetDestination(dst)
	}) {
		s.statDropped.Add(1)
		s.logger.Debug().Uint64("target", uint64(payload.Target)).Msg("destination for entity without path dropped")
		return
	}

	s.statAssigned.Add(1)
	s.logger.Debug().
		Uint64("target", uint64(payload.Target)).
		Float32("x", dst.X()).
		Float32("z", dst.Z()).
		Int64("frame", ev.Frame).
		Msg("destination set")
}
