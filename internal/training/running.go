package training

const (
	runningCaloriesMeanSpeedMultiplier = 18.0
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a step-based run
type Running struct {
	training
}

// NewRunning creates a run from step count, duration in hours and weight in kg
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{
		kind:     KindRunning,
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  LenStep,
	}}
}

// Calories calculates spent kcal:
// (18 * mean speed + 1.79) * weight / 1000 * minutes
func (r Running) Calories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() +
		runningCaloriesMeanSpeedShift) * r.weight / MInKm * r.minutes()
}
