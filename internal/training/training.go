// Package training computes distance, mean speed and spent calories
// for a single workout from already-parsed sensor readings.
package training

// Kind identifies a concrete workout variant
type Kind int

const (
	KindRunning Kind = iota
	KindWalking
	KindSwimming
)

// String returns the display name used in training reports
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Workout is implemented by every concrete workout variant.
// Only variants that know how to count calories satisfy it.
type Workout interface {
	Kind() Kind
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	Calories() float64
}

// training holds the fields shared by all workouts and the default
// distance and speed formulas. It has no Calories method, so it does
// not satisfy Workout.
type training struct {
	kind     Kind
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64 // meters per action
}

// Kind returns the workout variant
func (t training) Kind() Kind {
	return t.kind
}

// Name returns the display name used in reports
func (t training) Name() string {
	return t.kind.String()
}

// Duration returns the workout length in hours
func (t training) Duration() float64 {
	return t.duration
}

// Distance returns the covered distance in km
func (t training) Distance() float64 {
	return float64(t.action) * t.lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
// Duration must be positive; zero yields +Inf or NaN.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t training) minutes() float64 {
	return t.duration * MinInH
}
