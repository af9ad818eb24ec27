package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/arpg/engine"
)

func TestSetupDefaults(t *testing.T) {
	w := engine.NewWorld()

	sc, err := Setup(w, DefaultOptions())
	require.NoError(t, err)

	p, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, sc.Player, p)

	c, ok := w.Camera()
	require.True(t, ok)
	assert.Equal(t, sc.Camera, c)

	path, ok := w.Components.Path.GetComponent(sc.Player)
	require.True(t, ok)
	assert.False(t, path.HasDestination, "player spawns idle")

	playerTr, _ := w.Components.Transform.GetComponent(sc.Player)
	assert.Equal(t, mgl32.Vec3{}, playerTr.Translation)

	cam, _ := w.Components.Camera.GetComponent(sc.Camera)
	assert.Equal(t, mgl32.Vec3{-2, 4, -2}, cam.Offset)

	camTr, _ := w.Components.Transform.GetComponent(sc.Camera)
	assert.Equal(t, mgl32.Vec3{-2, 4, -2}, camTr.Translation)
	want := mgl32.Vec3{2, -4, 2}.Normalize()
	got := camTr.Forward()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4)
	}

	assert.Len(t, sc.Floor, 49)
}

func TestFloorCheckerboard(t *testing.T) {
	w := engine.NewWorld()
	tiles := SpawnFloor(w)

	dark := 0
	for _, e := range tiles {
		tile, ok := w.Components.Floor.GetComponent(e)
		require.True(t, ok)
		tr, _ := w.Components.Transform.GetComponent(e)

		assert.Equal(t, float32(-1), tr.Translation.Y())
		gx := int(tr.Translation.X() / 2)
		gz := int(tr.Translation.Z() / 2)
		assert.Equal(t, (gx+gz)%2 == 0, tile.Dark, "tile at %v", tr.Translation)
		if tile.Dark {
			dark++
		}
	}
	assert.Equal(t, 25, dark)
}

func TestSecondSetupRejected(t *testing.T) {
	w := engine.NewWorld()
	_, err := Setup(w, DefaultOptions())
	require.NoError(t, err)

	_, err = Setup(w, DefaultOptions())
	assert.ErrorIs(t, err, engine.ErrDuplicatePlayer)

	// Failed spawn leaves no stray player components
	assert.Equal(t, 1, w.Components.Player.CountEntity())
}

func TestSpawnPlayerProjectsToGround(t *testing.T) {
	w := engine.NewWorld()
	e, err := SpawnPlayer(w, mgl32.Vec3{1, 5, 2})
	require.NoError(t, err)

	tr, _ := w.Components.Transform.GetComponent(e)
	assert.Equal(t, mgl32.Vec3{1, 0, 2}, tr.Translation)
}

func TestSetupRejectsZeroCameraOffset(t *testing.T) {
	w := engine.NewWorld()
	_, err := Setup(w, Options{})
	assert.ErrorIs(t, err, ErrZeroCameraOffset)

	// Player spawned before the camera is rolled back
	_, ok := w.Player()
	assert.False(t, ok)
	assert.Zero(t, w.Components.Player.CountEntity())
}

func TestSpawnCameraVerticalOffset(t *testing.T) {
	w := engine.NewWorld()
	e, err := SpawnCamera(w, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{})
	require.NoError(t, err)

	tr, _ := w.Components.Transform.GetComponent(e)
	fwd := tr.Forward()
	assert.InDelta(t, -1, fwd.Y(), 1e-4, "looks straight down at the player")
}
