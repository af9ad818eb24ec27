package event

// EventType represents the type of game event
type EventType int

const (
	// EventSetDestination requests travel of an entity toward a planar point
	// Trigger: picking collaborator on pointer release (terminal viewer, bridge)
	// Consumer: DestinationSystem, CueSystem | Payload: *DestinationPayload
	EventSetDestination EventType = iota + 1

	// EventArrived signals the player came within arrival epsilon of its destination
	// Trigger: MotionSystem | Consumer: CueSystem | Payload: *ArrivedPayload
	EventArrived
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventSetDestination:
		return "set_destination"
	case EventArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// GameEvent is a single queued message
// Frame is the frame number at which the event was produced
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
