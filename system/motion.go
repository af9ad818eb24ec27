package system

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/parameter"
	"github.com/lixenwraith/arpg/status"
)

// MotionMode selects how the player reaches a destination
type MotionMode int

const (
	// MotionEased approaches with speed proportional to remaining distance, capped at cruise speed
	MotionEased MotionMode = iota
	// MotionInstant teleports onto the destination in the frame it is processed
	MotionInstant
)

// ParseMotionMode converts a config value to a MotionMode
func ParseMotionMode(s string) (MotionMode, error) {
	switch s {
	case "", parameter.MotionModeEased:
		return MotionEased, nil
	case parameter.MotionModeInstant:
		return MotionInstant, nil
	default:
		return MotionEased, fmt.Errorf("unknown motion mode %q", s)
	}
}

func (m MotionMode) String() string {
	if m == MotionInstant {
		return parameter.MotionModeInstant
	}
	return parameter.MotionModeEased
}

// MotionParams is the speed law
type MotionParams struct {
	Mode           MotionMode
	CruiseSpeed    float32
	EaseFactor     float32
	ArrivalEpsilon float32
}

// DefaultMotionParams returns the standard eased law
func DefaultMotionParams() MotionParams {
	return MotionParams{
		Mode:           MotionEased,
		CruiseSpeed:    parameter.CruiseSpeed,
		EaseFactor:     parameter.EaseFactor,
		ArrivalEpsilon: parameter.ArrivalEpsilon,
	}
}

// advance returns the position after one frame of travel from pos toward dst
// arrived is true when pos is already within epsilon; pos is then returned unchanged
// A large dt may carry the result past dst, it is not clamped
func advance(pos, dst mgl32.Vec3, dt float32, p MotionParams) (next mgl32.Vec3, arrived bool) {
	delta := dst.Sub(pos)
	distance := delta.Len()
	if distance < p.ArrivalEpsilon {
		return pos, true
	}

	speed := distance * p.EaseFactor
	if speed > p.CruiseSpeed {
		speed = p.CruiseSpeed
	}
	// distance >= epsilon > 0, normalization is defined
	step := delta.Mul(speed * dt / distance)
	return pos.Add(step), false
}

// MotionSystem moves the player toward its destination each frame
type MotionSystem struct {
	game      *engine.GameContext
	world     *engine.World
	path      *engine.Store[component.PlayerPathComponent]
	transform *engine.Store[component.TransformComponent]
	params    MotionParams
	logger    zerolog.Logger

	statArrivals *atomic.Int64
	statSpeed    *status.AtomicFloat
}

// NewMotionSystem creates the motion integrator
func NewMotionSystem(ctx *engine.GameContext, params MotionParams) *MotionSystem {
	return &MotionSystem{
		game:         ctx,
		world:        ctx.World,
		path:         ctx.World.Components.Path,
		transform:    ctx.World.Components.Transform,
		params:       params,
		logger:       ctx.Logger.With().Str("system", "motion").Logger(),
		statArrivals: ctx.Status.Ints.Get("motion.arrivals"),
		statSpeed:    ctx.Status.Floats.Get("motion.speed"),
	}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update advances the player by one frame
func (s *MotionSystem) Update(dt float32) {
	player, ok := s.world.Player()
	if !ok {
		return
	}

	path, ok := s.path.GetComponent(player)
	if !ok {
		return
	}
	dst, moving := path.Target()
	if !moving {
		s.statSpeed.Set(0)
		return
	}

	tr, ok := s.transform.GetComponent(player)
	if !ok {
		return
	}

	var arrived bool
	switch s.params.Mode {
	case MotionInstant:
		tr.Translation = dst
		arrived = true
		s.transform.SetComponent(player, tr)
	default:
		prev := tr.Translation
		tr.Translation, arrived = advance(prev, dst, dt, s.params)
		if !arrived {
			s.transform.SetComponent(player, tr)
			if dt > 0 {
				s.statSpeed.Set(float64(tr.Translation.Sub(prev).Len() / dt))
			}
		}
	}

	if !arrived {
		return
	}

	path.ClearDestination()
	s.path.SetComponent(player, path)
	s.statArrivals.Add(1)
	s.statSpeed.Set(0)

	event.EmitArrived(s.game.Events(), player, tr.Translation, s.game.FrameNumber.Load())
	s.logger.Debug().
		Float32("x", tr.Translation.X()).
		Float32("z", tr.Translation.Z()).
		Msg("destination reached")
}
