package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/core"
)

// DestinationPayload is a pointer release on the ground plane addressed to an entity
// Height of the hit is discarded; travel is planar
type DestinationPayload struct {
	Target core.Entity `json:"target"`
	X      float32     `json:"x"`
	Z      float32     `json:"z"`
}

// ArrivedPayload reports the position at which travel completed
type ArrivedPayload struct {
	Entity   core.Entity `json:"entity"`
	Position mgl32.Vec3  `json:"position"`
}
