package audio

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/scene"
	"github.com/lixenwraith/arpg/system"
)

type cueRecorder struct {
	played []string
}

func (r *cueRecorder) PlayDestination() { r.played = append(r.played, "destination") }
func (r *cueRecorder) PlayArrival()     { r.played = append(r.played, "arrival") }

func newCueGame(t *testing.T) (*engine.GameContext, *scene.Scene, *cueRecorder) {
	t.Helper()
	ctx := engine.NewGameContext(zerolog.Nop())
	sc, err := scene.Setup(ctx.World, scene.Options{CameraOffset: mgl32.Vec3{-2, 4, -2}})
	require.NoError(t, err)

	rec := &cueRecorder{}
	ctx.AddSystem(system.NewDestinationSystem(ctx))
	ctx.AddSystem(system.NewMotionSystem(ctx, system.DefaultMotionParams()))
	ctx.AddSystem(NewCueSystem(ctx, rec))
	return ctx, sc, rec
}

func TestCueSystem_DestinationThenArrival(t *testing.T) {
	ctx, sc, rec := newCueGame(t)

	// Within arrival epsilon: arrives in the first frame, arrival dispatched in the next
	event.EmitSetDestination(ctx.Events(), sc.Player, 0.001, 0, 0)
	ctx.Tick(0.016)
	assert.Equal(t, []string{"destination"}, rec.played)

	ctx.Tick(0.016)
	assert.Equal(t, []string{"destination", "arrival"}, rec.played)
	assert.Equal(t, int64(2), ctx.Status.Ints.Get("audio.cues").Load())
}

func TestCueSystem_IgnoresOtherTargets(t *testing.T) {
	ctx, sc, rec := newCueGame(t)

	event.EmitSetDestination(ctx.Events(), sc.Camera, 1, 1, 0)
	event.EmitArrived(ctx.Events(), sc.Camera, mgl32.Vec3{}, 0)
	ctx.Tick(0.016)

	assert.Empty(t, rec.played)
}

func TestCueSystem_NoPlayer(t *testing.T) {
	ctx, sc, rec := newCueGame(t)
	ctx.World.DestroyEntity(sc.Player)

	event.EmitSetDestination(ctx.Events(), sc.Player, 1, 1, 0)
	ctx.Tick(0.016)

	assert.Empty(t, rec.played)
}
