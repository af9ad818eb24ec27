package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PlayerComponent marks the controllable entity (singleton)
// PickWidth/PickDepth describe the clickable surface centred on the player
type PlayerComponent struct {
	PickWidth float32
	PickDepth float32
}

// Contains reports whether a planar point lies on the pickable surface of a player at center
func (p PlayerComponent) Contains(center mgl32.Vec3, x, z float32) bool {
	hw, hd := p.PickWidth/2, p.PickDepth/2
	return x >= center.X()-hw && x <= center.X()+hw &&
		z >= center.Z()-hd && z <= center.Z()+hd
}

// PlayerPathComponent holds the optional travel destination
// HasDestination is false exactly when the player is idle
type PlayerPathComponent struct {
	Destination    mgl32.Vec3
	HasDestination bool
}

// SetDestination replaces any pending destination
func (p *PlayerPathComponent) SetDestination(d mgl32.Vec3) {
	p.Destination = d
	p.HasDestination = true
}

// ClearDestination marks the path idle
func (p *PlayerPathComponent) ClearDestination() {
	p.Destination = mgl32.Vec3{}
	p.HasDestination = false
}

// Target returns the pending destination, if any
func (p PlayerPathComponent) Target() (mgl32.Vec3, bool) {
	return p.Destination, p.HasDestination
}
