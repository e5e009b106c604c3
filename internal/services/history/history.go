package history

import (
	"fmt"

	"github.com/mcoot/termsweeper/internal/model"
)

// Entry is one recorded command with the cell changes it applied and the
// progress on either side of it
type Entry struct {
	Command model.Command
	Changes []model.CellChange
	Before  model.Progress
	After   model.Progress
}

// History is a linear undo/redo log of cell deltas
type History struct {
	undo []Entry
	redo []Entry
}

// New creates an empty History
func New() *History {
	return &History{}
}

// Push records an entry and discards anything that could have been redone
func (h *History) Push(entry Entry) {
	changes := make([]model.CellChange, len(entry.Changes))
	copy(changes, entry.Changes)
	entry.Changes = changes

	h.undo = append(h.undo, entry)
	h.redo = nil
}

// Undo rolls back the most recent entry on grid, restoring every changed
// cell to its earlier state in reverse order, and returns the entry
func (h *History) Undo(grid *model.Grid) (Entry, error) {
	if len(h.undo) == 0 {
		return Entry{}, model.ErrNothingToUndo
	}
	entry := h.undo[len(h.undo)-1]
	if err := checkBounds(grid, entry.Changes); err != nil {
		return Entry{}, err
	}

	for i := len(entry.Changes) - 1; i >= 0; i-- {
		grid.Set(entry.Changes[i].Pos, entry.Changes[i].Before)
	}

	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, entry)
	return entry, nil
}

// Redo reapplies the most recently undone entry on grid and returns it
func (h *History) Redo(grid *model.Grid) (Entry, error) {
	if len(h.redo) == 0 {
		return Entry{}, model.ErrNothingToRedo
	}
	entry := h.redo[len(h.redo)-1]
	if err := checkBounds(grid, entry.Changes); err != nil {
		return Entry{}, err
	}

	for _, change := range entry.Changes {
		grid.Set(change.Pos, change.After)
	}

	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, entry)
	return entry, nil
}

// Clear drops every entry
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// CanUndo returns true if there is an entry to undo
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if there is an entry to redo
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of undoable entries
func (h *History) Len() int {
	return len(h.undo)
}

func checkBounds(grid *model.Grid, changes []model.CellChange) error {
	for _, change := range changes {
		if !grid.InBounds(change.Pos) {
			return fmt.Errorf("%w: history entry outside %dx%d grid at (%d,%d)",
				model.ErrInvalidCommand, grid.Width, grid.Height, change.Pos.Row, change.Pos.Col)
		}
	}
	return nil
}
