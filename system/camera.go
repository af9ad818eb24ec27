package system

import (
	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/parameter"
	"github.com/lixenwraith/arpg/vmath"
)

// CameraSystem keeps the camera at a fixed offset from the player, looking at it
// Rigid follow: no smoothing, no dead zone
type CameraSystem struct {
	world     *engine.World
	camera    *engine.Store[component.PlayerCameraComponent]
	transform *engine.Store[component.TransformComponent]
}

// NewCameraSystem creates camera following system
func NewCameraSystem(ctx *engine.GameContext) *CameraSystem {
	return &CameraSystem{
		world:     ctx.World,
		camera:    ctx.World.Components.Camera,
		transform: ctx.World.Components.Transform,
	}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

// Update places the camera at player + offset and orients it toward the player
// Skipped for the frame when either singleton is missing
func (s *CameraSystem) Update(dt float32) {
	player, ok := s.world.Player()
	if !ok {
		return
	}
	cameraEntity, ok := s.world.Camera()
	if !ok {
		return
	}

	playerTr, ok := s.transform.GetComponent(player)
	if !ok {
		return
	}
	cam, ok := s.camera.GetComponent(cameraEntity)
	if !ok {
		return
	}

	s.transform.UpdateComponent(cameraEntity, func(tr *component.TransformComponent) {
		tr.Translation = playerTr.Translation.Add(cam.Offset)
		tr.LookAt(playerTr.Translation, vmath.Up)
	})
}
