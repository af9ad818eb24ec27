// Package scene spawns the player, the tracking camera and the checkerboard floor
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/parameter"
	"github.com/lixenwraith/arpg/vmath"
)

// ErrZeroCameraOffset is returned when the camera would sit on the player with no view direction
var ErrZeroCameraOffset = errors.New("camera offset is zero")

// Options controls initial placement
type Options struct {
	PlayerStart  mgl32.Vec3
	CameraOffset mgl32.Vec3
	Floor        bool
}

// DefaultOptions places the player at the origin with the standard camera offset and a floor
func DefaultOptions() Options {
	return Options{
		CameraOffset: component.DefaultPlayerCamera().Offset,
		Floor:        true,
	}
}

// Scene lists the spawned entities
type Scene struct {
	Player core.Entity
	Camera core.Entity
	Floor  []core.Entity
}

// Setup spawns and registers the player and camera, then the floor
func Setup(w *engine.World, opt Options) (*Scene, error) {
	player, err := SpawnPlayer(w, opt.PlayerStart)
	if err != nil {
		return nil, err
	}

	camera, err := SpawnCamera(w, opt.CameraOffset, opt.PlayerStart)
	if err != nil {
		w.DestroyEntity(player)
		return nil, err
	}

	sc := &Scene{Player: player, Camera: camera}
	if opt.Floor {
		sc.Floor = SpawnFloor(w)
	}
	return sc, nil
}

// SpawnPlayer creates the idle player at start (projected onto the ground plane)
func SpawnPlayer(w *engine.World, start mgl32.Vec3) (core.Entity, error) {
	e := w.CreateEntity()
	w.Components.Player.SetComponent(e, component.PlayerComponent{
		PickWidth: parameter.PlayerPickSize,
		PickDepth: parameter.PlayerPickSize,
	})
	w.Components.Path.SetComponent(e, component.PlayerPathComponent{})
	w.Components.Transform.SetComponent(e, component.TransformFromTranslation(vmath.Planar(start.X(), start.Z())))

	if err := w.RegisterPlayer(e); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("spawn player: %w", err)
	}
	return e, nil
}

// SpawnCamera creates the tracking camera at target + offset, looking at target
func SpawnCamera(w *engine.World, offset, target mgl32.Vec3) (core.Entity, error) {
	if offset.Len() == 0 {
		return 0, fmt.Errorf("spawn camera: %w", ErrZeroCameraOffset)
	}
	e := w.CreateEntity()
	tr := component.TransformFromTranslation(target.Add(offset))
	tr.LookAt(target, vmath.Up)

	w.Components.Camera.SetComponent(e, component.PlayerCameraComponent{Offset: offset})
	w.Components.Transform.SetComponent(e, tr)

	if err := w.RegisterCamera(e); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("spawn camera: %w", err)
	}
	return e, nil
}

// SpawnFloor creates the checkerboard tiles; a tile is dark when its grid x+z is even
func SpawnFloor(w *engine.World) []core.Entity {
	n := parameter.FloorHalfExtent
	tiles := make([]core.Entity, 0, (2*n+1)*(2*n+1))

	for x := -n; x <= n; x++ {
		for z := -n; z <= n; z++ {
			e := w.CreateEntity()
			w.Components.Floor.SetComponent(e, component.FloorTileComponent{
				Size: parameter.FloorTileSize,
				Dark: (x+z)%2 == 0,
			})
			w.Components.Transform.SetComponent(e, component.TransformFromTranslation(mgl32.Vec3{
				float32(x) * parameter.FloorTileSize,
				parameter.FloorY,
				float32(z) * parameter.FloorTileSize,
			}))
			tiles = append(tiles, e)
		}
	}
	return tiles
}
