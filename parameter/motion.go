package parameter

// Click-to-move motion law
const (
	// ArrivalEpsilon is the distance below which travel is complete
	ArrivalEpsilon = 0.01

	// EaseFactor scales remaining distance into speed (units/s per unit of distance)
	EaseFactor = 2.0

	// CruiseSpeed is the maximum travel speed in units/s
	CruiseSpeed = 4.0

	// GroundY is the plane the player travels on
	GroundY = 0.0

	// MotionModeEased and MotionModeInstant are the accepted motion.mode values
	MotionModeEased   = "eased"
	MotionModeInstant = "instant"
)
