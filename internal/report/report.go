// Package report renders workout summaries.
package report

import (
	"fmt"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/training"
)

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message formats the summary line for a workout
func Message(info training.InfoMessage) string {
	return fmt.Sprintf(messageTemplate,
		info.TrainingType,
		info.Duration,
		info.Distance,
		info.Speed,
		info.Calories,
	)
}

// Render formats the summary using the configured display style
func Render(info training.InfoMessage, cfg config.DisplayConfig) string {
	if cfg.Style == "card" {
		return Card(info, NewUnits(cfg))
	}
	return Message(info)
}
