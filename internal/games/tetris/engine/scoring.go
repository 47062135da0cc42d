package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the tunables of a session. DefaultConfig matches the
// classic rules: 10x20 grid, 1000ms initial drop, -100ms per level down to
// 100ms, a new level every 10 lines.
type Config struct {
	Width  int
	Height int

	InitialDropMs int // Drop interval at level 1
	MinDropMs     int // Floor for the drop interval
	DropStepMs    int // Interval reduction per level

	// LineScores is indexed by the number of lines cleared by one lock.
	LineScores    []int
	LinesPerLevel int
}

// DefaultConfig returns the standard rule set.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        20,
		InitialDropMs: 1000,
		MinDropMs:     100,
		DropStepMs:    100,
		LineScores:    []int{0, 40, 100, 300, 1200},
		LinesPerLevel: 10,
	}
}

// Validate checks that the config can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("engine: width %d is below 4: %w", c.Width, ErrInvalidConfig)
	case c.Height < 4:
		return fmt.Errorf("engine: height %d is below 4: %w", c.Height, ErrInvalidConfig)
	case c.InitialDropMs <= 0:
		return fmt.Errorf("engine: initial drop interval must be positive: %w", ErrInvalidConfig)
	case c.MinDropMs <= 0 || c.MinDropMs > c.InitialDropMs:
		return fmt.Errorf("engine: min drop interval must be in (0, %d]: %w", c.InitialDropMs, ErrInvalidConfig)
	case c.DropStepMs < 0:
		return fmt.Errorf("engine: drop step must not be negative: %w", ErrInvalidConfig)
	case len(c.LineScores) < 5:
		return fmt.Errorf("engine: line score table needs 5 entries, got %d: %w", len(c.LineScores), ErrInvalidConfig)
	case c.LinesPerLevel <= 0:
		return fmt.Errorf("engine: lines per level must be positive: %w", ErrInvalidConfig)
	}
	for i, s := range c.LineScores {
		if s < 0 {
			return fmt.Errorf("engine: line score %d is negative: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}

// ScoreFor returns the points for clearing lines rows at the given level.
// Counts past the end of the table use the last entry.
func (c Config) ScoreFor(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(c.LineScores) {
		lines = len(c.LineScores) - 1
	}
	return c.LineScores[lines] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func (c Config) LevelFor(lines int) int {
	return lines/c.LinesPerLevel + 1
}

// DropIntervalFor returns the gravity interval in ms for a level.
func (c Config) DropIntervalFor(level int) int {
	return max(c.MinDropMs, c.InitialDropMs-(level-1)*c.DropStepMs)
}
