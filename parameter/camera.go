package parameter

// Camera follow offset, 2 * (-1, 2, -1)
// Camera sits behind-left and above the player and looks down at it
const (
	CameraOffsetX = -2.0
	CameraOffsetY = 4.0
	CameraOffsetZ = -2.0
)

// World up axis used for camera orientation
const (
	UpX = 0.0
	UpY = 1.0
	UpZ = 0.0
)
