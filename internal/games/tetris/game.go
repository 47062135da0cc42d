// Package tetris adapts the falling-block engine to the platform: it turns
// fixed-rate ticks into elapsed milliseconds, maps platform actions to
// engine intents and draws the engine snapshot into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Package-level settings applied on the next Reset.
var (
	rules     = engine.DefaultConfig()
	ghostMode = true
)

// SetRules replaces the engine rules used by new games.
func SetRules(cfg engine.Config) {
	cfg.LineScores = append([]int(nil), cfg.LineScores...)
	rules = cfg
}

// SetShowGhost sets whether new games draw the landing preview.
func SetShowGhost(show bool) {
	ghostMode = show
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game drives one engine session per Reset.
type Game struct {
	rules engine.Config
	eng   *engine.Engine
	tick  uint64

	tickDur time.Duration
	pending time.Duration // time not yet handed to the engine

	screenW  int
	screenH  int
	tooSmall bool

	ghost      bool
	flashTicks int // ticks left for the line-clear banner
	tickRate   int
}

// New creates a game using the current package settings.
func New() *Game {
	return &Game{rules: rules, ghost: ghostMode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset creates a fresh idle engine seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rules = rules
	g.ghost = ghostMode

	eng, err := engine.New(g.rules, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// Rules are validated when loaded; fall back rather than crash a session.
		g.rules = engine.DefaultConfig()
		eng, _ = engine.New(g.rules, rand.New(rand.NewSource(cfg.Seed)))
	}
	g.eng = eng

	g.tick = 0
	g.tickRate = max(1, cfg.TickRate)
	g.tickDur = time.Second / time.Duration(g.tickRate)
	g.pending = 0
	g.flashTicks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the new screen size and re-checks that the board fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step applies the actions of one tick in order, then advances gravity by
// the tick duration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	before := g.eng.Snapshot()
	var res core.StepResult

	for _, a := range in.Actions {
		if a == core.ActionGhost {
			g.ghost = !g.ghost
			continue
		}
		if g.tooSmall {
			continue
		}
		g.apply(a, &res)
	}

	if !g.tooSmall && g.eng.Phase() == engine.PhaseRunning {
		g.pending += g.tickDur
		ms := g.pending / time.Millisecond
		g.pending -= ms * time.Millisecond
		g.eng.Tick(int(ms))
	}

	after := g.eng.Snapshot()
	if !res.Started {
		res.LinesCleared = after.Lines - before.Lines
		res.LevelUp = after.Level > before.Level
	}
	if res.LinesCleared > 0 {
		g.flashTicks = g.tickRate / 2
	}
	res.Ended = after.Phase == engine.PhaseEnded && (before.Phase != engine.PhaseEnded || res.Started)
	res.State = g.State()
	return res
}

func (g *Game) apply(a core.Action, res *core.StepResult) {
	switch a {
	case core.ActionConfirm, core.ActionRestart:
		if p := g.eng.Phase(); p == engine.PhaseIdle || p == engine.PhaseEnded {
			g.start(res)
		}
	case core.ActionPause:
		if g.eng.TogglePause() {
			g.pending = 0
		}
	case core.ActionLeft:
		g.eng.Move(-1)
	case core.ActionRight:
		g.eng.Move(1)
	case core.ActionRotate:
		g.eng.Rotate()
	case core.ActionSoftDrop:
		g.eng.SoftDrop()
	case core.ActionHardDrop:
		g.eng.HardDrop()
	}
}

func (g *Game) start(res *core.StepResult) {
	g.eng.Start()
	g.pending = 0
	g.flashTicks = 0
	res.Started = true
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	phase := g.eng.Phase()
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		Lines:    g.eng.Lines(),
		Started:  phase != engine.PhaseIdle,
		GameOver: phase == engine.PhaseEnded,
		Paused:   phase == engine.PhasePaused || g.tooSmall,
	}
}

// Snapshot returns the engine snapshot for rendering and tests.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Ghost reports whether the landing preview is drawn.
func (g *Game) Ghost() bool {
	return g.ghost
}

// Rules returns the engine rules of the current session.
func (g *Game) Rules() engine.Config {
	return g.eng.Config()
}
