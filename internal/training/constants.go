package training

const (
	// Unit conversions
	MInKm  = 1000
	MinInH = 60

	// Average step length in meters for step-based workouts
	LenStep = 0.65
)
