package reveal

import (
	"github.com/mcoot/termsweeper/internal/model"
)

// Outcome is the result of a reveal
type Outcome string

const (
	OutcomeNoOp     Outcome = "no_op"
	OutcomeRevealed Outcome = "revealed"
	OutcomeHitMine  Outcome = "hit_mine"
)

// Service opens cells on a generated grid, flooding outward from zero cells
type Service struct {
	queue []model.Position
}

// New creates a new reveal Service
func New() *Service {
	return &Service{}
}

// Reveal opens the cell at pos. Flagged and already revealed cells are left
// alone. Opening a zero cell keeps opening its neighbours until the region
// is bounded by numbered cells; flagged cells inside the region stay closed.
// The returned changes are in the order they were applied.
func (s *Service) Reveal(grid *model.Grid, pos model.Position) (Outcome, []model.CellChange, error) {
	cell, err := grid.CellAt(pos)
	if err != nil {
		return OutcomeNoOp, nil, err
	}
	if grid.Generation != model.GenerationGenerated {
		return OutcomeNoOp, nil, model.ErrNotGenerated
	}
	if cell.Revealed || cell.IsFlagged() {
		return OutcomeNoOp, nil, nil
	}

	changes := []model.CellChange{open(grid, pos)}
	if cell.Mine {
		return OutcomeHitMine, changes, nil
	}

	s.queue = append(s.queue[:0], pos)
	for len(s.queue) > 0 {
		current := s.queue[0]
		s.queue = s.queue[1:]

		if grid.Get(current).Count() != 0 {
			continue
		}
		for _, n := range grid.Neighbors(current) {
			c := grid.Get(n)
			if c.Revealed || c.IsFlagged() || c.Mine {
				continue
			}
			changes = append(changes, open(grid, n))
			s.queue = append(s.queue, n)
		}
	}

	return OutcomeRevealed, changes, nil
}

// IsWon returns true once every safe cell is revealed
func IsWon(grid *model.Grid) bool {
	return grid.Generation == model.GenerationGenerated && grid.SafeRemaining() == 0
}

func open(grid *model.Grid, pos model.Position) model.CellChange {
	before := grid.Get(pos)
	after := before
	after.Revealed = true
	after.Mark = model.MarkNone
	grid.Set(pos, after)
	return model.CellChange{Pos: pos, Before: before, After: after}
}
