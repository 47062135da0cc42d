package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options configures the terminal front-end.
type Options struct {
	Logger        *log.Logger // Session events; nil discards them
	Sound         bool        // Ring the terminal bell on line clears
	ScreenshotDir string      // Defaults to ~/.tetris/screenshots
	Bell          io.Writer   // Defaults to os.Stdout
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	keys   KeyMap
	help   help.Model
	logger *log.Logger
	bell   io.Writer

	screenshotDir string
	muted         bool
	quitting      bool
}

// NewModel creates a model for game. A zero cfg.Seed is replaced by the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bell := opts.Bell
	if bell == nil {
		bell = os.Stdout
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir()
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		bell:          bell,
		screenshotDir: dir,
		muted:         !opts.Sound,
	}
	m.help.Width = cfg.ScreenW

	// The last row belongs to the help footer.
	gameCfg := cfg
	gameCfg.ScreenH = m.screen.Height()
	m.game.Reset(gameCfg)
	m.gameState = m.game.State()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tetris-screenshots")
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions and handles platform keys immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "lines", m.gameState.Lines, "level", m.gameState.Level)
		return m, tea.Quit
	case core.ActionMute:
		m.muted = !m.muted
		m.logger.Debug("sound toggled", "muted", m.muted)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the session and only adapts the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.logStep(result, wasPaused)

	next := tickCmd(m.config.TickRate)
	if result.LinesCleared > 0 && !m.muted {
		return m, tea.Batch(next, bellCmd(m.bell))
	}
	return m, next
}

func (m Model) logStep(res core.StepResult, wasPaused bool) {
	st := res.State
	switch {
	case res.Started:
		m.logger.Info("game started")
	case st.Paused != wasPaused && st.Started && !st.GameOver:
		if st.Paused {
			m.logger.Info("paused", "score", st.Score)
		} else {
			m.logger.Info("resumed")
		}
	}
	if res.LinesCleared > 0 {
		m.logger.Debug("lines cleared", "count", res.LinesCleared, "total", st.Lines, "score", st.Score)
	}
	if res.LevelUp {
		m.logger.Info("level up", "level", st.Level)
	}
	if res.Ended {
		m.logger.Info("game over", "score", st.Score, "lines", st.Lines, "level", st.Level)
	}
}

// bellCmd rings the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)

	// The full help is taller than the reserved row; it covers the bottom of the frame.
	footer := m.help.View(m.keys)
	if extra := lipgloss.Height(footer) - 1; extra > 0 {
		rows := strings.Split(frame, "\n")
		frame = strings.Join(rows[:max(0, len(rows)-extra)], "\n")
	}
	return frame + "\n" + footer
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
