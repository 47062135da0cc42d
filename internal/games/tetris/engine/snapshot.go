package engine

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the engine.
type Snapshot struct {
	Grid         Grid
	Active       Piece
	Next         Piece
	HasPiece     bool // false while Idle
	Score        int
	Level        int
	Lines        int
	DropInterval int // ms
	Phase        Phase
	LastCleared  int // Lines cleared by the most recent lock
	Locked       int // Pieces locked this session
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:         e.grid.Clone(),
		Active:       e.active.Clone(),
		Next:         e.next.Clone(),
		HasPiece:     e.phase != PhaseIdle,
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		DropInterval: e.dropInterval,
		Phase:        e.phase,
		LastCleared:  e.lastCleared,
		Locked:       e.locked,
	}
}
