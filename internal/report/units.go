package report

import (
	"fmt"

	"fitness-tracker/internal/config"
)

const kmPerMile = 1.60934

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in km to the user's preferred unit
func (u Units) FormatDistance(km float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.3f mi", km/kmPerMile)
	}
	return fmt.Sprintf("%.3f km", km)
}

// FormatSpeed formats a speed in km/h to the user's preferred unit
func (u Units) FormatSpeed(kmh float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.3f mi/h", kmh/kmPerMile)
	}
	return fmt.Sprintf("%.3f km/h", kmh)
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}
