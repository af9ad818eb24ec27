package engine

import (
	"github.com/lixenwraith/arpg/component"
)

// ComponentStore holds the typed stores of every component kind
// Pointers are fixed at world creation; systems cache them in their constructors
type ComponentStore struct {
	Player    *Store[component.PlayerComponent]
	Path      *Store[component.PlayerPathComponent]
	Camera    *Store[component.PlayerCameraComponent]
	Transform *Store[component.TransformComponent]
	Floor     *Store[component.FloorTileComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Player:    NewStore[component.PlayerComponent](),
		Path:      NewStore[component.PlayerPathComponent](),
		Camera:    NewStore[component.PlayerCameraComponent](),
		Transform: NewStore[component.TransformComponent](),
		Floor:     NewStore[component.FloorTileComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Player, c.Path, c.Camera, c.Transform, c.Floor}
}
