package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFPS is the target frame rate of the clock scheduler
	DefaultFPS = 60

	// MaxDeltaTime caps the elapsed seconds handed to systems for a single frame
	// Protects motion integration from a stalled loop (debugger, suspended terminal)
	MaxDeltaTime = 0.25

	// RenderInterval is the terminal redraw interval (~30 FPS)
	RenderInterval = 33 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
