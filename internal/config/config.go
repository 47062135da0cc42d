// Package config provides the YAML configuration of a tetris session:
// board size, gravity timing, scoring and display preferences.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity speed, all values in milliseconds.
type TimingConfig struct {
	InitialDropMs int `yaml:"initial_drop_ms"`
	MinDropMs     int `yaml:"min_drop_ms"`
	DropStepMs    int `yaml:"drop_step_ms"` // Reduction per level
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LineScores    []int `yaml:"line_scores"` // Indexed by lines cleared in one lock
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// DisplayConfig defines front-end preferences.
type DisplayConfig struct {
	Ghost bool `yaml:"ghost"` // Draw the landing preview
	Sound bool `yaml:"sound"` // Ring the bell on line clears
	FPS   int  `yaml:"fps"`   // Frame rate of the tick loop
}

// Engine converts the config into engine rules.
func (c TetrisConfig) Engine() engine.Config {
	return engine.Config{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		InitialDropMs: c.Timing.InitialDropMs,
		MinDropMs:     c.Timing.MinDropMs,
		DropStepMs:    c.Timing.DropStepMs,
		LineScores:    append([]int(nil), c.Scoring.LineScores...),
		LinesPerLevel: c.Scoring.LinesPerLevel,
	}
}

// Validate rejects values no session can run with.
func (c TetrisConfig) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	if c.Board.Width > 40 || c.Board.Height > 40 {
		return fmt.Errorf("config: board %dx%d exceeds 40x40: %w", c.Board.Width, c.Board.Height, ErrInvalid)
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: fps %d outside 1..240: %w", c.Display.FPS, ErrInvalid)
	}
	return nil
}
