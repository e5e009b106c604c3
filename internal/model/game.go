package model

import "time"

// GenerationState records whether mines have been placed for the current grid
type GenerationState string

const (
	GenerationPending   GenerationState = "pending"   // No mines yet, waiting for the first reveal
	GenerationGenerated GenerationState = "generated" // Mines placed, adjacency counts valid
)

// GameStatus represents the current phase of a game
type GameStatus string

const (
	StatusNotStarted  GameStatus = "not_started"
	StatusInProgress  GameStatus = "in_progress"
	StatusWon         GameStatus = "won"
	StatusLost        GameStatus = "lost"
	StatusSurrendered GameStatus = "surrendered"
)

// IsTerminal returns true once the game is over
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusSurrendered
}

// Progress is the part of game state that history entries restore along
// with the board
type Progress struct {
	Status     GameStatus
	StartedAt  time.Time // Zero until the first reveal
	FinishedAt time.Time // Zero until a terminal status
}

// NewProgress returns the progress of a game nobody has touched
func NewProgress() Progress {
	return Progress{Status: StatusNotStarted}
}
