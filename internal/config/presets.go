package config

import "fmt"

// Preset is a named starting speed.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the accepted preset names.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard}

// ParsePreset converts a flag value into a Preset. An empty string means normal.
func ParsePreset(s string) (Preset, error) {
	if s == "" {
		return PresetNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", s, ErrInvalid)
}

// ApplyPreset adjusts the gravity timing of cfg. Normal leaves it untouched.
func ApplyPreset(cfg *TetrisConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Timing.InitialDropMs = cfg.Timing.InitialDropMs * 3 / 2
		cfg.Timing.DropStepMs = cfg.Timing.DropStepMs * 3 / 4
	case PresetHard:
		cfg.Timing.InitialDropMs = max(cfg.Timing.MinDropMs, cfg.Timing.InitialDropMs/2)
		cfg.Timing.DropStepMs = cfg.Timing.DropStepMs / 2
	}
}
