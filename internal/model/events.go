package model

import "time"

// EffectAction identifies what produced an effect
type EffectAction string

const (
	ActionNewGame EffectAction = "new_game"
	ActionExecute EffectAction = "execute"
	ActionUndo    EffectAction = "undo"
	ActionRedo    EffectAction = "redo"
)

// Effect describes what a single engine call changed, so a renderer can
// redraw only what it needs to
type Effect struct {
	Action  EffectAction
	Command Command // The executed, undone or redone command

	Changed      []Position // Cells whose state changed
	StatusBefore GameStatus
	Status       GameStatus

	Generated      bool // Mines were placed by this call
	Rebuilt        bool // The grid shape or mine count changed; redraw everything
	Recorded       bool // A history entry was pushed
	HistoryCleared bool
}

// NoOp returns true if nothing observable changed
func (e Effect) NoOp() bool {
	return len(e.Changed) == 0 && !e.Rebuilt && e.StatusBefore == e.Status
}

// CellView is the read-only rendering view of one cell
type CellView struct {
	Mine     bool
	Mark     Mark
	Revealed bool
	Count    int // Adjacent mines, MineSentinel for a mine, 0 before generation
}

// Snapshot is a read-only copy of the board and game status
type Snapshot struct {
	Width      int
	Height     int
	MineCount  int
	FlagCount  int
	Status     GameStatus
	Generation GenerationState
	Cells      [][]CellView // Row-major: Cells[row][col]

	CanUndo bool
	CanRedo bool

	StartedAt  time.Time
	FinishedAt time.Time
}

// At returns the view of the cell at pos
func (s Snapshot) At(pos Position) CellView {
	if pos.Row < 0 || pos.Row >= s.Height || pos.Col < 0 || pos.Col >= s.Width {
		return CellView{}
	}
	return s.Cells[pos.Row][pos.Col]
}

// MinesRemaining returns the mine count minus placed flags
func (s Snapshot) MinesRemaining() int {
	return s.MineCount - s.FlagCount
}

// Elapsed returns how long the game has run as of now
func (s Snapshot) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if !s.FinishedAt.IsZero() {
		return s.FinishedAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}
