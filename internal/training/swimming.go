package training

const (
	// Stroke length in meters. Only used for the reported distance;
	// speed and calories are derived from pool laps.
	swimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim measured in strokes and completed pool lengths
type Swimming struct {
	training
	lengthPool float64 // meters
	countPool  int
}

// NewSwimming creates a swim from stroke count, duration in hours,
// weight in kg, pool length in meters and number of pool lengths swum
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		training: training{
			kind:     KindSwimming,
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  swimmingLenStep,
		},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// MeanSpeed returns km/h based on pool lengths, not strokes
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

// Calories calculates spent kcal:
// (mean speed + 1.1) * 2 * weight * hours
func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}
