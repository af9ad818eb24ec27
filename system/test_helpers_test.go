package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/scene"
)

// testGame wires the three core systems around a default scene
type testGame struct {
	ctx   *engine.GameContext
	scene *scene.Scene
}

func newTestGame(t *testing.T, params MotionParams) *testGame {
	t.Helper()
	return newTestGameWithOffset(t, params, mgl32.Vec3{-2, 4, -2})
}

func newTestGameWithOffset(t *testing.T, params MotionParams, offset mgl32.Vec3) *testGame {
	t.Helper()
	ctx := engine.NewGameContext(zerolog.Nop())

	sc, err := scene.Setup(ctx.World, scene.Options{CameraOffset: offset})
	require.NoError(t, err)

	ctx.AddSystem(NewDestinationSystem(ctx))
	ctx.AddSystem(NewCameraSystem(ctx))
	ctx.AddSystem(NewMotionSystem(ctx, params))

	return &testGame{ctx: ctx, scene: sc}
}

func (g *testGame) click(x, z float32) {
	event.EmitSetDestination(g.ctx.Events(), g.scene.Player, x, z, g.ctx.FrameNumber.Load())
}

func (g *testGame) playerPos() mgl32.Vec3 {
	tr, _ := g.ctx.World.Components.Transform.GetComponent(g.scene.Player)
	return tr.Translation
}

func (g *testGame) setPlayerPos(p mgl32.Vec3) {
	g.ctx.World.Components.Transform.UpdateComponent(g.scene.Player, func(tr *component.TransformComponent) {
		tr.Translation = p
	})
}

func (g *testGame) destination() (mgl32.Vec3, bool) {
	path, _ := g.ctx.World.Components.Path.GetComponent(g.scene.Player)
	return path.Target()
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
