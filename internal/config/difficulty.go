package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the speed curve based on a difficulty preset.
// Normal keeps the variant's own values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	s := &cfg.Snake
	switch preset {
	case DifficultyEasy:
		s.InitialInterval = scale(s.InitialInterval, 1.3)
		s.MinInterval = scale(s.MinInterval, 1.5)
	case DifficultyHard:
		s.InitialInterval = scale(s.InitialInterval, 0.7)
		s.MinInterval = scale(s.MinInterval, 0.8)
		s.SpeedStep = scale(s.SpeedStep, 1.5)
	case DifficultyFixed:
		s.SpeedStep = 0
	}
	if s.MinInterval > s.InitialInterval {
		s.MinInterval = s.InitialInterval
	}
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f).Round(time.Millisecond)
}
