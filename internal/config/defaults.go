package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rules: 10x20 board, 1000ms initial
// drop shortened by 100ms per level down to 100ms.
func DefaultTetrisConfig() TetrisConfig {
	ec := engine.DefaultConfig()
	return TetrisConfig{
		Board: BoardConfig{
			Width:  ec.Width,
			Height: ec.Height,
		},
		Timing: TimingConfig{
			InitialDropMs: ec.InitialDropMs,
			MinDropMs:     ec.MinDropMs,
			DropStepMs:    ec.DropStepMs,
		},
		Scoring: ScoringConfig{
			LineScores:    ec.LineScores,
			LinesPerLevel: ec.LinesPerLevel,
		},
		Display: DisplayConfig{
			Ghost: true,
			Sound: true,
			FPS:   60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
