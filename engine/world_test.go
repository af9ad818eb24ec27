package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/core"
)

func addPlayer(w *World) core.Entity {
	e := w.CreateEntity()
	w.Components.Player.SetComponent(e, component.PlayerComponent{PickWidth: 10, PickDepth: 10})
	w.Components.Path.SetComponent(e, component.PlayerPathComponent{})
	w.Components.Transform.SetComponent(e, component.TransformFromTranslation(mgl32.Vec3{}))
	return e
}

func addCamera(w *World) core.Entity {
	e := w.CreateEntity()
	w.Components.Camera.SetComponent(e, component.DefaultPlayerCamera())
	w.Components.Transform.SetComponent(e, component.TransformFromTranslation(mgl32.Vec3{}))
	return e
}

func TestCreateEntityNeverIssuesZero(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, core.Entity(1), w.CreateEntity())
	assert.Equal(t, core.Entity(2), w.CreateEntity())
}

func TestRegisterPlayerSingleton(t *testing.T) {
	w := NewWorld()

	_, ok := w.Player()
	assert.False(t, ok)

	p := addPlayer(w)
	require.NoError(t, w.RegisterPlayer(p))

	got, ok := w.Player()
	assert.True(t, ok)
	assert.Equal(t, p, got)

	second := addPlayer(w)
	err := w.RegisterPlayer(second)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	got, _ = w.Player()
	assert.Equal(t, p, got, "first registration stays authoritative")
}

func TestRegisterCameraSingleton(t *testing.T) {
	w := NewWorld()

	c := addCamera(w)
	require.NoError(t, w.RegisterCamera(c))

	err := w.RegisterCamera(addCamera(w))
	assert.ErrorIs(t, err, ErrDuplicateCamera)
}

func TestRegisterRejectsIncompleteEntities(t *testing.T) {
	w := NewWorld()

	bare := w.CreateEntity()
	assert.ErrorIs(t, w.RegisterPlayer(bare), ErrNotPlayer)
	assert.ErrorIs(t, w.RegisterCamera(bare), ErrNotCamera)

	// Camera is not a player
	c := addCamera(w)
	assert.ErrorIs(t, w.RegisterPlayer(c), ErrNotPlayer)
}

func TestDestroyEntityReleasesSingleton(t *testing.T) {
	w := NewWorld()
	p := addPlayer(w)
	require.NoError(t, w.RegisterPlayer(p))

	w.DestroyEntity(p)
	_, ok := w.Player()
	assert.False(t, ok)
	assert.False(t, w.Components.Path.HasComponent(p))

	require.NoError(t, w.RegisterPlayer(addPlayer(w)))
}

func TestClearResetsWorld(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.RegisterPlayer(addPlayer(w)))
	require.NoError(t, w.RegisterCamera(addCamera(w)))

	w.Clear()

	_, ok := w.Player()
	assert.False(t, ok)
	_, ok = w.Camera()
	assert.False(t, ok)
	assert.Equal(t, 0, w.Components.Transform.CountEntity())
	assert.Equal(t, core.Entity(1), w.CreateEntity())
}

type mockSystem struct {
	name     string
	priority int
	log      *[]string
	dts      []float32
}

func (s *mockSystem) Name() string  { return s.name }
func (s *mockSystem) Priority() int { return s.priority }
func (s *mockSystem) Update(dt float32) {
	s.dts = append(s.dts, dt)
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&mockSystem{name: "late", priority: 100, log: &log})
	w.AddSystem(&mockSystem{name: "early", priority: 0, log: &log})
	w.AddSystem(&mockSystem{name: "mid-a", priority: 10, log: &log})
	w.AddSystem(&mockSystem{name: "mid-b", priority: 10, log: &log})

	w.RunSafe(func() { w.UpdateLocked(0.016) })

	assert.Equal(t, []string{"early", "mid-a", "mid-b", "late"}, log)
}
