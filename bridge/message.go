package bridge

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	typePointerUp = "pointer_up"
	typeFrame     = "frame"
)

// clientMessage is a pointer release reported by an external picker
// hit takes precedence over x/z; neither present (or "hit":null) means the origin
type clientMessage struct {
	Type   string      `json:"type"`
	Target uint64      `json:"target"`
	Hit    *[3]float32 `json:"hit"`
	X      *float32    `json:"x"`
	Z      *float32    `json:"z"`
}

// hitPosition resolves the optional world hit position
func (m clientMessage) hitPosition() *mgl32.Vec3 {
	if m.Hit != nil {
		v := mgl32.Vec3(*m.Hit)
		return &v
	}
	if m.X != nil && m.Z != nil {
		v := mgl32.Vec3{*m.X, 0, *m.Z}
		return &v
	}
	return nil
}

type transformMessage struct {
	Entity   uint64     `json:"entity"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"` // w, x, y, z
	Forward  [3]float32 `json:"forward"`
}

// frameMessage is published once per frame to every client
type frameMessage struct {
	Type        string            `json:"type"`
	Frame       int64             `json:"frame"`
	Player      *transformMessage `json:"player"`
	Camera      *transformMessage `json:"camera"`
	Destination *[3]float32       `json:"destination"`
}
