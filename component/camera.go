package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/parameter"
)

// PlayerCameraComponent marks the tracking camera (singleton)
// Offset is fixed at spawn and never mutated afterwards
type PlayerCameraComponent struct {
	Offset mgl32.Vec3
}

// DefaultPlayerCamera returns the camera with the standard follow offset
func DefaultPlayerCamera() PlayerCameraComponent {
	return PlayerCameraComponent{
		Offset: mgl32.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ},
	}
}
