package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/parameter"
)

// Up is the world vertical axis
var Up = mgl32.Vec3{parameter.UpX, parameter.UpY, parameter.UpZ}

// forwardLocal is the local view direction; a camera looks down its -Z axis
var forwardLocal = mgl32.Vec3{0, 0, -1}

// Planar creates a point on the ground plane y = 0
func Planar(x, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, 0, z}
}

// SafeNormalize returns the unit vector of v and false when v has no direction
// mgl32.Vec3.Normalize divides by zero on a zero vector
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// AnyOrthonormal returns a unit vector perpendicular to the unit vector v
// Branchless basis construction (Duff et al. 2017)
func AnyOrthonormal(v mgl32.Vec3) mgl32.Vec3 {
	sign := float32(math.Copysign(1, float64(v.Z())))
	a := -1 / (sign + v.Z())
	b := v.X() * v.Y() * a
	return mgl32.Vec3{b, sign + v.Y()*v.Y()*a, -v.Y()}
}

// LookRotation returns the rotation that orients -Z from eye toward target with the given up
// When the view direction is parallel to up, right is taken from any vector orthogonal to up
// Returns identity and false only when eye == target
func LookRotation(eye, target, up mgl32.Vec3) (mgl32.Quat, bool) {
	forward, ok := SafeNormalize(target.Sub(eye))
	if !ok {
		return mgl32.QuatIdent(), false
	}
	back := forward.Mul(-1)

	right, ok := SafeNormalize(up.Cross(back))
	if !ok {
		if n, okUp := SafeNormalize(up); okUp {
			right = AnyOrthonormal(n)
		} else {
			right = AnyOrthonormal(back)
		}
	}
	trueUp := back.Cross(right)

	basis := mgl32.Mat3FromCols(right, trueUp, back)
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// Forward returns the world-space view direction of a rotation
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(forwardLocal)
}
