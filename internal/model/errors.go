package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrOutOfBounds       = errors.New("position is out of bounds")

	// Generation errors
	ErrMineCountUnsatisfiable = errors.New("not enough cells to place mines")
	ErrAlreadyGenerated       = errors.New("mines have already been placed")
	ErrNotGenerated           = errors.New("mines have not been placed")

	// Game errors
	ErrNoGameInProgress = errors.New("no game in progress")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrGameOver         = errors.New("game is over")

	// History errors
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
