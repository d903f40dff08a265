package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/report"
	"fitness-tracker/internal/sensor"
	"fitness-tracker/internal/training"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("locating config: %w", err)
	}

	// Load configuration, falling back to the demo readings
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			log.Printf("creating example config: %v", err)
		} else {
			log.Printf("no config found, wrote example to %s/config.json", configDir)
		}
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config at %s/config.json: %w", configDir, err)
	}

	return processReadings(out, cfg.Readings, cfg.Display)
}

// processReadings prints a report for every reading. A failing reading is
// logged and skipped so the rest still get reported.
func processReadings(out io.Writer, readings []config.Reading, display config.DisplayConfig) error {
	var failed int
	for i, r := range readings {
		workout, err := sensor.ReadPackage(r.Type, r.Data)
		if err != nil {
			log.Printf("reading %d: %v", i, err)
			failed++
			continue
		}

		info := training.ShowTrainingInfo(workout)
		if _, err := fmt.Fprintln(out, report.Render(info, display)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d readings failed", failed, len(readings))
	}
	return nil
}
