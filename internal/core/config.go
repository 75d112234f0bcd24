package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The viewport is handed down explicitly; the game never asks the terminal.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic gameplay
	Player  string // Player name shown in the help line
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining
	TimeLeft int  // Seconds remaining
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the simulation is suspended (pause or quit prompt)
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Delay is how long the platform waits before the next tick.
	Delay time.Duration
}
