package training

// InfoMessage is the summary of one evaluated workout
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// ShowTrainingInfo evaluates distance, mean speed and calories, in that
// order, and returns them with the workout's name and duration.
func ShowTrainingInfo(w Workout) InfoMessage {
	return InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.Calories(),
	}
}
