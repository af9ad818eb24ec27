package parameter

// System Execution Priorities (lower runs first)
// Destination assignment happens in the dispatch phase before any system runs
const (
	PriorityDestination = 0
	PriorityCamera      = 10 // Reads last committed player position
	PriorityMotion      = 20
	PriorityCue         = 50
	PrioritySnapshot    = 1000 // After all others, publishes the committed frame
)
