package model

// Mark is the player's annotation on a hidden cell
type Mark int

const (
	MarkNone Mark = iota
	MarkFlag
	MarkQuestion
)

func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkFlag:
		return "flag"
	case MarkQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// MineSentinel is reported by Cell.Count for mine cells
const MineSentinel = -1

// Cell is one grid position. The zero value is a hidden, unmarked, empty cell.
type Cell struct {
	Mine     bool
	Mark     Mark
	Revealed bool
	Adjacent int // Mines among the 8 neighbours, valid once generated
}

// IsFlagged returns true if the cell carries a flag
func (c Cell) IsFlagged() bool {
	return c.Mark == MarkFlag
}

// IsMarked returns true if the cell carries a flag or a question mark
func (c Cell) IsMarked() bool {
	return c.Mark == MarkFlag || c.Mark == MarkQuestion
}

// Count returns the adjacency count, or MineSentinel for a mine
func (c Cell) Count() int {
	if c.Mine {
		return MineSentinel
	}
	return c.Adjacent
}

// CellChange records one cell before and after a mutation
type CellChange struct {
	Pos    Position
	Before Cell
	After  Cell
}
