package training

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100
)

// SportsWalking is a step-based walk. It needs the athlete's height
// because the calorie formula depends on speed relative to height.
type SportsWalking struct {
	training
	height float64 // cm
}

// NewSportsWalking creates a walk from step count, duration in hours,
// weight in kg and height in cm
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{
			kind:     KindWalking,
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  LenStep,
		},
		height: height,
	}
}

// Calories calculates spent kcal:
// (0.035 * weight + (speed_m/s^2 / height_m) * 0.029 * weight) * minutes
func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed() * kmhInMsec
	heightM := w.height / cmInM
	return (walkingCaloriesWeightMultiplier*w.weight +
		(speed*speed/heightM)*walkingSpeedHeightMultiplier*w.weight) * w.minutes()
}
