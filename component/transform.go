package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/vmath"
)

// TransformComponent is the world-space placement of an entity
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// TransformFromTranslation creates an unrotated transform at t
func TransformFromTranslation(t mgl32.Vec3) TransformComponent {
	return TransformComponent{
		Translation: t,
		Rotation:    mgl32.QuatIdent(),
	}
}

// LookAt rotates the transform so that its forward axis points at target
// Rotation is left unchanged when target coincides with the transform's position
func (t *TransformComponent) LookAt(target, up mgl32.Vec3) {
	if q, ok := vmath.LookRotation(t.Translation, target, up); ok {
		t.Rotation = q
	}
}

// Forward returns the world-space forward direction
func (t TransformComponent) Forward() mgl32.Vec3 {
	return vmath.Forward(t.Rotation)
}
