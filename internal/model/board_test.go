package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridValidation(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name    string
		width   int
		height  int
		mines   int
		wantErr error
	}{
		{name: "smallest", width: 2, height: 2, mines: 1},
		{name: "largest", width: 256, height: 256, mines: 100},
		{name: "no mines", width: 9, height: 9, mines: 0},
		{name: "all but one", width: 3, height: 3, mines: 8},
		{name: "too narrow", width: 1, height: 9, mines: 1, wantErr: ErrInvalidDimensions},
		{name: "too short", width: 9, height: 1, mines: 1, wantErr: ErrInvalidDimensions},
		{name: "negative", width: -3, height: 9, mines: 1, wantErr: ErrInvalidDimensions},
		{name: "too wide", width: 257, height: 9, mines: 1, wantErr: ErrInvalidDimensions},
		{name: "negative mines", width: 9, height: 9, mines: -1, wantErr: ErrInvalidMineCount},
		{name: "mine on every cell", width: 3, height: 3, mines: 9, wantErr: ErrInvalidMineCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(rules, tt.width, tt.height, tt.mines)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, GenerationPending, grid.Generation)
			assert.Equal(t, tt.width*tt.height, grid.Area())
			assert.Equal(t, 0, grid.PlacedMineCount())
		})
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	grid, err := NewGrid(DefaultRules(), 4, 3, 1)
	require.NoError(t, err)

	_, err = grid.CellAt(Position{Row: 2, Col: 3})
	assert.NoError(t, err)

	for _, pos := range []Position{{Row: 3, Col: 0}, {Row: 0, Col: 4}, {Row: -1, Col: 0}, {Row: 0, Col: -1}} {
		_, err := grid.CellAt(pos)
		assert.ErrorIs(t, err, ErrOutOfBounds, "pos %v", pos)
	}
}

func TestNeighbors(t *testing.T) {
	grid, _ := NewGrid(DefaultRules(), 4, 3, 1)

	assert.Equal(t, []Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, grid.Neighbors(Position{Row: 0, Col: 0}))
	assert.Len(t, grid.Neighbors(Position{Row: 1, Col: 1}), 8)
	assert.Len(t, grid.Neighbors(Position{Row: 2, Col: 2}), 5)
}

func TestPlaceMinesComputesAdjacency(t *testing.T) {
	grid, _ := NewGrid(DefaultRules(), 3, 3, 2)

	err := grid.PlaceMines([]Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}})
	require.NoError(t, err)

	assert.Equal(t, GenerationGenerated, grid.Generation)
	assert.Equal(t, 2, grid.PlacedMineCount())
	assert.Equal(t, MineSentinel, grid.Get(Position{Row: 0, Col: 0}).Count())
	assert.Equal(t, 2, grid.Get(Position{Row: 1, Col: 1}).Count())
	assert.Equal(t, 1, grid.Get(Position{Row: 0, Col: 1}).Count())
	assert.Equal(t, 0, grid.Get(Position{Row: 0, Col: 2}).Count())
}

func TestPlaceMinesRejectsBadInput(t *testing.T) {
	grid, _ := NewGrid(DefaultRules(), 3, 3, 2)

	assert.ErrorIs(t, grid.PlaceMines([]Position{{Row: 0, Col: 0}}), ErrInvalidMineCount)
	assert.ErrorIs(t, grid.PlaceMines([]Position{{Row: 0, Col: 0}, {Row: 0, Col: 0}}), ErrInvalidMineCount)

	grid, _ = NewGrid(DefaultRules(), 3, 3, 2)
	assert.ErrorIs(t, grid.PlaceMines([]Position{{Row: 0, Col: 0}, {Row: 5, Col: 0}}), ErrOutOfBounds)

	grid, _ = NewGrid(DefaultRules(), 3, 3, 1)
	require.NoError(t, grid.PlaceMines([]Position{{Row: 1, Col: 1}}))
	assert.ErrorIs(t, grid.PlaceMines([]Position{{Row: 0, Col: 0}}), ErrAlreadyGenerated)
}

func TestRebuildKeepsMarksInOverlap(t *testing.T) {
	rules := DefaultRules()
	grid, _ := NewGrid(rules, 4, 4, 2)
	grid.Set(Position{Row: 0, Col: 0}, Cell{Mark: MarkFlag})
	grid.Set(Position{Row: 3, Col: 3}, Cell{Mark: MarkFlag})
	grid.Set(Position{Row: 1, Col: 1}, Cell{Mark: MarkQuestion})
	grid.Set(Position{Row: 1, Col: 2}, Cell{Revealed: true})

	next, err := grid.Rebuild(rules, 3, 5, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, next.Width)
	assert.Equal(t, 5, next.Height)
	assert.Equal(t, 4, next.MineCount)
	assert.Equal(t, GenerationPending, next.Generation)
	assert.Equal(t, MarkFlag, next.Get(Position{Row: 0, Col: 0}).Mark)
	assert.Equal(t, MarkQuestion, next.Get(Position{Row: 1, Col: 1}).Mark)
	assert.False(t, next.Get(Position{Row: 1, Col: 2}).Revealed)
	assert.Equal(t, 0, next.RevealedCount())
	assert.Equal(t, 1, next.FlagCount())
}

func TestRebuildDemotesFlagsPastMineCount(t *testing.T) {
	rules := DefaultRules()
	grid, _ := NewGrid(rules, 4, 4, 4)
	for col := 0; col < 4; col++ {
		grid.Set(Position{Row: 0, Col: col}, Cell{Mark: MarkFlag})
	}

	next, err := grid.Rebuild(rules, 4, 4, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, next.FlagCount())
	assert.Equal(t, MarkFlag, next.Get(Position{Row: 0, Col: 0}).Mark)
	assert.Equal(t, MarkFlag, next.Get(Position{Row: 0, Col: 1}).Mark)
	assert.Equal(t, MarkQuestion, next.Get(Position{Row: 0, Col: 2}).Mark)
	assert.Equal(t, MarkQuestion, next.Get(Position{Row: 0, Col: 3}).Mark)
}

func TestDemoteExcessFlags(t *testing.T) {
	flagged := func() *Grid {
		grid, _ := NewGrid(DefaultRules(), 3, 3, 1)
		grid.Set(Position{Row: 0, Col: 0}, Cell{Mark: MarkFlag})
		grid.Set(Position{Row: 2, Col: 2}, Cell{Mark: MarkFlag})
		return grid
	}

	t.Run("without question marks", func(t *testing.T) {
		rules := DefaultRules()
		rules.QuestionMarks = false
		grid := flagged()

		assert.Equal(t, 1, grid.DemoteExcessFlags(rules))
		assert.Equal(t, MarkFlag, grid.Get(Position{Row: 0, Col: 0}).Mark)
		assert.Equal(t, MarkNone, grid.Get(Position{Row: 2, Col: 2}).Mark)
	})

	t.Run("uncapped", func(t *testing.T) {
		rules := DefaultRules()
		rules.CapFlags = false
		grid := flagged()

		assert.Equal(t, 0, grid.DemoteExcessFlags(rules))
		assert.Equal(t, 2, grid.FlagCount())
	})

	t.Run("within the cap", func(t *testing.T) {
		grid := flagged()
		grid.MineCount = 2

		assert.Equal(t, 0, grid.DemoteExcessFlags(DefaultRules()))
		assert.Equal(t, 2, grid.FlagCount())
	})
}

func TestCellsReturnsCopy(t *testing.T) {
	grid, _ := NewGrid(DefaultRules(), 2, 2, 1)
	cells := grid.Cells()
	cells[0].Revealed = true

	assert.False(t, grid.Get(Position{Row: 0, Col: 0}).Revealed)
}

func TestViewsHideCountsBeforeGeneration(t *testing.T) {
	grid, _ := NewGrid(DefaultRules(), 2, 2, 1)
	grid.Set(Position{Row: 0, Col: 0}, Cell{Adjacent: 3})

	assert.Equal(t, 0, grid.Views()[0][0].Count)
}

func TestMaxMines(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 72, rules.MaxMines(9, 9))
	assert.Equal(t, 2, rules.MaxMines(2, 2))
	assert.Equal(t, 7, rules.MaxMines(3, 3))
}

func TestNextMark(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, MarkFlag, rules.NextMark(MarkNone, true))
	assert.Equal(t, MarkQuestion, rules.NextMark(MarkFlag, true))
	assert.Equal(t, MarkNone, rules.NextMark(MarkQuestion, true))
	assert.Equal(t, MarkQuestion, rules.NextMark(MarkNone, false))

	rules.QuestionMarks = false
	assert.Equal(t, MarkNone, rules.NextMark(MarkFlag, true))
	assert.Equal(t, MarkNone, rules.NextMark(MarkNone, false))

	rules.CapFlags = false
	assert.Equal(t, MarkFlag, rules.NextMark(MarkNone, false))
}

func TestGameStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusNotStarted.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusWon.IsTerminal())
	assert.True(t, StatusLost.IsTerminal())
	assert.True(t, StatusSurrendered.IsTerminal())
}
