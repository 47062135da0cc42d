package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoGhost    bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Left/H/A, Right/L/D  - Move
  Up/K/W/X             - Rotate
  Down/J/S             - Soft drop
  Space                - Hard drop
  Enter                - Start
  P/Esc                - Pause
  R                    - Restart (after game over)
  M                    - Mute
  G                    - Toggle ghost piece
  Ctrl+S               - Screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Slower gravity, gentler speed-up
  normal - Classic timing (default)
  hard   - Twice as fast from level 1

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml --no-ghost`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Hide the landing preview")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with the bell muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", cfg.source, "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", cfg.preset)

	tetris.SetRules(cfg.Engine())
	tetris.SetShowGhost(cfg.Display.Ghost && !flagNoGhost)

	game, err := registry.Create(tetris.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fps := cfg.Display.FPS
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}
	if fps < 1 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", fps)
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}
	opts := tui.Options{
		Logger: logger,
		Sound:  cfg.Display.Sound && !flagMute,
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// effectiveConfig is the loaded config with the difficulty preset applied.
type effectiveConfig struct {
	config.TetrisConfig
	source config.Source
	preset config.Preset
}

// loadConfig resolves --config and --difficulty into the session config.
func loadConfig() (effectiveConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return effectiveConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return effectiveConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return effectiveConfig{}, err
	}
	return effectiveConfig{TetrisConfig: cfg, source: src, preset: preset}, nil
}
