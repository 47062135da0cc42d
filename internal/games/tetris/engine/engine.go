package engine

// Phase is the session state machine: Idle -> Running <-> Paused,
// Running -> Ended. Only Start leaves Ended.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Engine owns the grid, the active and next pieces and the session
// counters. It is not safe for concurrent use; each session gets its own.
type Engine struct {
	cfg Config
	rng Rand

	grid   Grid
	active Piece
	next   Piece
	phase  Phase

	score        int
	level        int
	lines        int
	dropInterval int
	dropCounter  int // ms accumulated since the last gravity step

	lastCleared int // lines cleared by the most recent lock
	locked      int // pieces locked this session
}

// New creates an idle engine. Call Start to begin a session.
func New(cfg Config, rng Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		panic("engine: nil random source")
	}
	cfg.LineScores = append([]int(nil), cfg.LineScores...)

	return &Engine{
		cfg:          cfg,
		rng:          rng,
		grid:         NewGrid(cfg.Width, cfg.Height),
		phase:        PhaseIdle,
		level:        1,
		dropInterval: cfg.InitialDropMs,
	}, nil
}

// Config returns the rules this engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Start resets the session and begins play. Always succeeds.
func (e *Engine) Start() bool {
	e.score = 0
	e.level = 1
	e.lines = 0
	e.dropInterval = e.cfg.InitialDropMs
	e.dropCounter = 0
	e.lastCleared = 0
	e.locked = 0
	e.grid.Clear()

	e.active = e.spawn(RandomType(e.rng))
	e.next = e.spawn(RandomType(e.rng))
	e.phase = PhaseRunning

	if e.grid.Collides(e.active) {
		e.phase = PhaseEnded
	}
	return true
}

// Pause suspends a running session.
func (e *Engine) Pause() bool {
	if e.phase != PhaseRunning {
		return false
	}
	e.phase = PhasePaused
	return true
}

// Resume continues a paused session.
func (e *Engine) Resume() bool {
	if e.phase != PhasePaused {
		return false
	}
	e.phase = PhaseRunning
	return true
}

// TogglePause switches between Running and Paused.
func (e *Engine) TogglePause() bool {
	if e.phase == PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Move shifts the active piece one column left (dir < 0) or right (dir > 0).
// A blocked move leaves the piece where it was.
func (e *Engine) Move(dir int) bool {
	if e.phase != PhaseRunning || dir == 0 {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}

	candidate := e.active.Shifted(step, 0)
	if e.grid.Collides(candidate) {
		return false
	}
	e.active = candidate
	return true
}

// Rotate turns the active piece clockwise. If the turned shape collides in
// place, kicks of +1 and then -1 column are tried; if both fail the piece is
// left unchanged.
func (e *Engine) Rotate() bool {
	if e.phase != PhaseRunning {
		return false
	}

	rotated := e.active.Rotated()
	for _, kick := range [...]int{0, 1, -1} {
		candidate := rotated.Shifted(kick, 0)
		if !e.grid.Collides(candidate) {
			e.active = candidate
			return true
		}
	}
	return false
}

// SoftDrop moves the active piece down one row, locking it if it cannot move.
func (e *Engine) SoftDrop() bool {
	if e.phase != PhaseRunning {
		return false
	}
	e.gravity()
	return true
}

// HardDrop drops the active piece as far as it goes and locks it.
func (e *Engine) HardDrop() bool {
	if e.phase != PhaseRunning {
		return false
	}
	for range e.cfg.Height {
		candidate := e.active.Shifted(0, 1)
		if e.grid.Collides(candidate) {
			break
		}
		e.active = candidate
	}
	e.lock()
	return true
}

// Tick advances the gravity clock by elapsedMs. Once the accumulated time
// exceeds the drop interval the piece falls one row and the accumulator
// restarts from zero; overshoot is discarded.
func (e *Engine) Tick(elapsedMs int) bool {
	if e.phase != PhaseRunning {
		return false
	}
	if elapsedMs > 0 {
		e.dropCounter += elapsedMs
	}
	if e.dropCounter > e.dropInterval {
		e.gravity()
		e.dropCounter = 0
	}
	return true
}

// Collides reports whether p would collide with the walls, floor or locked
// cells. It never changes engine state.
func (e *Engine) Collides(p Piece) bool {
	return e.grid.Collides(p)
}

// GhostPiece returns where the active piece would land after a hard drop.
// The second result is false when there is no active piece in play.
func (e *Engine) GhostPiece() (Piece, bool) {
	if e.phase == PhaseIdle || e.active.Shape == nil {
		return Piece{}, false
	}
	ghost := e.active
	for range e.cfg.Height {
		candidate := ghost.Shifted(0, 1)
		if e.grid.Collides(candidate) {
			break
		}
		ghost = candidate
	}
	return ghost, true
}

// gravity moves the active piece down one row or locks it in place.
func (e *Engine) gravity() {
	candidate := e.active.Shifted(0, 1)
	if e.grid.Collides(candidate) {
		e.lock()
		return
	}
	e.active = candidate
}

// lock transfers the active piece into the grid, clears rows, scores and
// promotes the next piece. A spawn collision ends the session.
func (e *Engine) lock() {
	e.grid.Lock(e.active)
	e.locked++

	cleared := e.grid.ClearFullRows()
	e.lastCleared = cleared
	if cleared > 0 {
		e.score += e.cfg.ScoreFor(cleared, e.level)
		e.lines += cleared
		e.level = e.cfg.LevelFor(e.lines)
		e.dropInterval = e.cfg.DropIntervalFor(e.level)
	}

	e.active = e.next
	e.next = e.spawn(RandomType(e.rng))

	if e.grid.Collides(e.active) {
		e.phase = PhaseEnded
	}
}

// spawn places a fresh piece of type t centred at the top of the grid.
func (e *Engine) spawn(t Type) Piece {
	shape := ShapeOf(t)
	x := e.cfg.Width/2 - shape.Size()/2
	return Piece{Type: t, Shape: shape, X: x, Y: 0}
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// DropInterval returns the current gravity interval in milliseconds.
func (e *Engine) DropInterval() int { return e.dropInterval }

// Active returns a copy of the active piece.
func (e *Engine) Active() Piece { return e.active.Clone() }

// Next returns a copy of the next piece.
func (e *Engine) Next() Piece { return e.next.Clone() }

// Grid returns a copy of the playfield.
func (e *Engine) Grid() Grid { return e.grid.Clone() }
