package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Readings []Reading     `json:"readings"`
	Display  DisplayConfig `json:"display"`
}

// Reading is one tracker package: a type code and its positional data
type Reading struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Style        string `json:"style"`
	DistanceUnit string `json:"distance_unit"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration with the demo readings
func DefaultConfig() Config {
	return Config{
		Readings: []Reading{
			{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			{Type: "RUN", Data: []float64{15000, 1, 75}},
			{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		},
		Display: DisplayConfig{
			Style:        "plain",
			DistanceUnit: "km",
		},
	}
}

// Load reads the configuration from ~/.fitness-tracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the given path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if len(cfg.Readings) == 0 {
		cfg.Readings = defaults.Readings
	}
	if cfg.Display.Style == "" {
		cfg.Display.Style = defaults.Display.Style
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.fitness-tracker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to the given path
func SaveTo(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks the display settings and the shape of each reading.
// Per-field data checks happen when a reading is dispatched.
func (c *Config) Validate() error {
	if c.Display.Style != "" && c.Display.Style != "plain" && c.Display.Style != "card" {
		return fmt.Errorf("display.style must be \"plain\" or \"card\", got %q", c.Display.Style)
	}
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}

	for i, r := range c.Readings {
		if r.Type == "" {
			return fmt.Errorf("readings[%d].type is required", i)
		}
		if len(r.Data) == 0 {
			return fmt.Errorf("readings[%d].data is required", i)
		}
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitness-tracker"), nil
}
