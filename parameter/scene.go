package parameter

// Checkerboard floor: 7x7 tiles of 2x2 units, one unit below the travel plane
const (
	FloorTileSize   = 2.0
	FloorHalfExtent = 3 // Tiles from -3..3 on each axis
	FloorY          = -1.0
)

// PlayerPickSize is the side of the square pickable surface carried by the player
const PlayerPickSize = 10.0

// Terminal projection: cells per world unit (terminal cells are ~2:1)
const (
	ViewCellsPerUnitX = 4
	ViewCellsPerUnitZ = 2
)

// Audio
const (
	AudioSampleRate      = 48000
	CueDestinationFreqHz = 660.0
	CueArrivalFreqHz     = 880.0
	CueDestinationMs     = 60
	CueArrivalMs         = 140
)

// Bridge
const (
	// BridgeSendBuffer is the per-client outbound frame buffer; frames are dropped when full
	BridgeSendBuffer = 16

	// BridgeWriteWaitMs bounds a single websocket write
	BridgeWriteWaitMs = 1000
)
