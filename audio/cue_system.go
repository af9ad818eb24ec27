package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/parameter"
)

// Cues is the sound surface the cue system drives
type Cues interface {
	PlayDestination()
	PlayArrival()
}

// CueSystem turns accepted destinations and arrivals into audio cues
type CueSystem struct {
	cues   Cues
	logger zerolog.Logger

	statCues *atomic.Int64
}

// NewCueSystem creates the cue system
func NewCueSystem(ctx *engine.GameContext, cues Cues) *CueSystem {
	return &CueSystem{
		cues:     cues,
		logger:   ctx.Logger.With().Str("system", "cue").Logger(),
		statCues: ctx.Status.Ints.Get("audio.cues"),
	}
}

func (s *CueSystem) Name() string {
	return "cue"
}

func (s *CueSystem) Priority() int {
	return parameter.PriorityCue
}

func (s *CueSystem) Update(dt float32) {}

// EventTypes returns events this system handles
func (s *CueSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSetDestination, event.EventArrived}
}

// HandleEvent plays a cue for destinations addressed to the player and for player arrivals
func (s *CueSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	player, ok := w.Player()
	if !ok {
		return
	}

	switch payload := ev.Payload.(type) {
	case *event.DestinationPayload:
		if payload == nil || payload.Target != player {
			return
		}
		s.cues.PlayDestination()
	case *event.ArrivedPayload:
		if payload == nil || payload.Entity != player {
			return
		}
		s.cues.PlayArrival()
	default:
		return
	}

	s.statCues.Add(1)
	s.logger.Trace().Str("event", ev.Type.String()).Msg("cue")
}
