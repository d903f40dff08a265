// Package sensor turns raw tracker packages into workouts.
package sensor

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fitness-tracker/internal/training"
)

// ErrUnknownType is returned when a package carries an unsupported type code
var ErrUnknownType = errors.New("unknown training type")

// ErrInvalidPackage is returned when package data cannot describe a workout
var ErrInvalidPackage = errors.New("invalid package data")

// Counts above 2^53 lose integer precision as float64 and may not fit an int
const maxCount = 1 << 53

type builder struct {
	fields []string
	build  func(d []float64) training.Workout
}

// Codes lists the supported type codes in lookup order
var Codes = []string{"SWM", "RUN", "WLK"}

var builders = map[string]builder{
	"SWM": {
		fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(d []float64) training.Workout {
			return training.NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
	"RUN": {
		fields: []string{"action", "duration", "weight"},
		build: func(d []float64) training.Workout {
			return training.NewRunning(int(d[0]), d[1], d[2])
		},
	},
	"WLK": {
		fields: []string{"action", "duration", "weight", "height"},
		build: func(d []float64) training.Workout {
			return training.NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// ReadPackage validates the data and builds the workout for the given code
func ReadPackage(code string, data []float64) (training.Workout, error) {
	b, ok := builders[code]
	if !ok {
		return nil, fmt.Errorf("%w %q: expected one of %s", ErrUnknownType, code, strings.Join(Codes, ", "))
	}

	if len(data) != len(b.fields) {
		return nil, fmt.Errorf("%w: %s expects %d values (%s), got %d",
			ErrInvalidPackage, code, len(b.fields), strings.Join(b.fields, ", "), len(data))
	}

	for i, name := range b.fields {
		if err := validateField(name, data[i]); err != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidPackage, code, err)
		}
	}

	return b.build(data), nil
}

// validateField checks a single positional value by its field name
func validateField(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}

	switch name {
	case "action", "count_pool":
		if v < 0 || v != math.Trunc(v) {
			return fmt.Errorf("%s must be a non-negative integer, got %v", name, v)
		}
		if v >= maxCount {
			return fmt.Errorf("%s is too large, got %v", name, v)
		}
	default:
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}
	return nil
}
