package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-tracker/internal/config"
)

func TestRunDemoReadings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	require.NoError(t, run(&out))

	expected := strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())

	// An example config is written on first run and used from then on
	path := filepath.Join(home, ".fitness-tracker", "config.json")
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)

	out.Reset()
	require.NoError(t, run(&out))
	assert.Equal(t, expected, out.String())
}

func TestRunWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	var out bytes.Buffer
	err := run(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locating config")
	assert.Empty(t, out.String())
}

func TestRunInvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".fitness-tracker", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"display": {"style": "fancy"}}`), 0600))

	var out bytes.Buffer
	err := run(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.style")
	assert.Empty(t, out.String())
}

func TestProcessReadingsSkipsFailures(t *testing.T) {
	readings := []config.Reading{
		{Type: "XYZ", Data: []float64{1, 2, 3}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 0, 75, 180}},
	}

	var out bytes.Buffer
	err := processReadings(&out, readings, config.DisplayConfig{Style: "plain"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 readings failed")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Running")
}

func TestProcessReadingsCard(t *testing.T) {
	readings := []config.Reading{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
	}

	var out bytes.Buffer
	require.NoError(t, processReadings(&out, readings, config.DisplayConfig{Style: "card", DistanceUnit: "mi"}))
	assert.Contains(t, out.String(), "Running")
	assert.Contains(t, out.String(), "6.058 mi")
	assert.Contains(t, out.String(), "797.805")
}
