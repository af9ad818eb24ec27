package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/core"
)

// FromPointerRelease builds the destination request for a pointer release over target
// A release without a precise hit position falls back to the origin
func FromPointerRelease(target core.Entity, hit *mgl32.Vec3) *DestinationPayload {
	var pos mgl32.Vec3
	if hit != nil {
		pos = *hit
	}
	return &DestinationPayload{Target: target, X: pos.X(), Z: pos.Z()}
}

// EmitSetDestination queues a destination request for target
func EmitSetDestination(q *EventQueue, target core.Entity, x, z float32, frame int64) {
	q.Push(GameEvent{
		Type:    EventSetDestination,
		Payload: &DestinationPayload{Target: target, X: x, Z: z},
		Frame:   frame,
	})
}

// EmitPointerRelease queues the destination request produced by a pointer release
func EmitPointerRelease(q *EventQueue, target core.Entity, hit *mgl32.Vec3, frame int64) {
	q.Push(GameEvent{
		Type:    EventSetDestination,
		Payload: FromPointerRelease(target, hit),
		Frame:   frame,
	})
}

// EmitArrived queues an arrival notification
func EmitArrived(q *EventQueue, e core.Entity, pos mgl32.Vec3, frame int64) {
	q.Push(GameEvent{
		Type:    EventArrived,
		Payload: &ArrivedPayload{Entity: e, Position: pos},
		Frame:   frame,
	})
}
