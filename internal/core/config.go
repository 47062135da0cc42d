package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Fixed simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickMs returns the nominal duration of one tick in whole milliseconds.
func (c RuntimeConfig) TickMs() int {
	if c.TickRate <= 0 {
		return 0
	}
	return 1000 / c.TickRate
}

// GameState is the coarse status the platform needs between frames.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	Started  bool // false until the first Start
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	LinesCleared int  // Lines cleared during this tick
	LevelUp      bool // Level increased during this tick
	Started      bool // A new session began during this tick
	Ended        bool // The session ended during this tick
}
