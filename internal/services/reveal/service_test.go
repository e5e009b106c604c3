package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/termsweeper/internal/dependencies/random"
	"github.com/mcoot/termsweeper/internal/model"
	"github.com/mcoot/termsweeper/internal/services/generator"
	"github.com/mcoot/termsweeper/internal/testutil"
)

func newGrid(t *testing.T, width, height int, mines ...model.Position) *model.Grid {
	t.Helper()
	grid, err := model.NewGrid(model.DefaultRules(), width, height, len(mines))
	require.NoError(t, err)
	require.NoError(t, grid.PlaceMines(mines))
	return grid
}

// floodOracle computes the expected revealed set with a recursive walk
func floodOracle(grid *model.Grid, start model.Position) map[model.Position]bool {
	result := map[model.Position]bool{}
	var visit func(pos model.Position)
	visit = func(pos model.Position) {
		c := grid.Get(pos)
		if result[pos] || c.Revealed || c.IsFlagged() || c.Mine {
			return
		}
		result[pos] = true
		if c.Count() == 0 {
			for _, n := range grid.Neighbors(pos) {
				visit(n)
			}
		}
	}
	visit(start)
	return result
}

func revealedSet(grid *model.Grid) map[model.Position]bool {
	result := map[model.Position]bool{}
	for _, pos := range grid.Positions() {
		if grid.Get(pos).Revealed {
			result[pos] = true
		}
	}
	return result
}

func TestRevealNumberedCellOpensOnlyThatCell(t *testing.T) {
	grid := newGrid(t, 3, 3, model.Position{Row: 0, Col: 0})

	outcome, changes, err := New().Reveal(grid, model.Position{Row: 1, Col: 1})
	require.NoError(t, err)

	assert.Equal(t, OutcomeRevealed, outcome)
	require.Len(t, changes, 1)
	assert.Equal(t, model.Position{Row: 1, Col: 1}, changes[0].Pos)
	assert.False(t, changes[0].Before.Revealed)
	assert.True(t, changes[0].After.Revealed)
	assert.Equal(t, 1, grid.RevealedCount())
}

func TestRevealZeroCellFloods(t *testing.T) {
	// Mine in the corner; everything else is reachable from the far corner
	grid := newGrid(t, 4, 4, model.Position{Row: 0, Col: 0})

	outcome, changes, err := New().Reveal(grid, model.Position{Row: 3, Col: 3})
	require.NoError(t, err)

	assert.Equal(t, OutcomeRevealed, outcome)
	assert.Len(t, changes, 15)
	assert.Equal(t, 15, grid.RevealedCount())
	assert.True(t, IsWon(grid))
}

func TestRevealMine(t *testing.T) {
	grid := newGrid(t, 3, 3, model.Position{Row: 2, Col: 2})

	outcome, changes, err := New().Reveal(grid, model.Position{Row: 2, Col: 2})
	require.NoError(t, err)

	assert.Equal(t, OutcomeHitMine, outcome)
	require.Len(t, changes, 1)
	assert.Equal(t, 1, grid.RevealedMineCount())
	assert.Equal(t, 1, grid.RevealedCount())
}

func TestRevealFlaggedCellIsNoOp(t *testing.T) {
	grid := newGrid(t, 3, 3, model.Position{Row: 0, Col: 0})
	pos := model.Position{Row: 2, Col: 2}
	grid.Set(pos, model.Cell{Mark: model.MarkFlag})

	outcome, changes, err := New().Reveal(grid, pos)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoOp, outcome)
	assert.Empty(t, changes)
	assert.Equal(t, 0, grid.RevealedCount())
}

func TestRevealTwiceIsNoOp(t *testing.T) {
	grid := newGrid(t, 4, 4, model.Position{Row: 0, Col: 0})
	svc := New()

	_, _, err := svc.Reveal(grid, model.Position{Row: 3, Col: 3})
	require.NoError(t, err)
	before := grid.Cells()

	outcome, changes, err := svc.Reveal(grid, model.Position{Row: 3, Col: 3})
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoOp, outcome)
	assert.Empty(t, changes)
	assert.Equal(t, before, grid.Cells())
}

func TestFloodSkipsFlags(t *testing.T) {
	grid := newGrid(t, 5, 5, model.Position{Row: 0, Col: 0})
	flagged := model.Position{Row: 4, Col: 0}
	grid.Set(flagged, model.Cell{Mark: model.MarkFlag})

	_, changes, err := New().Reveal(grid, model.Position{Row: 4, Col: 4})
	require.NoError(t, err)

	assert.Equal(t, model.MarkFlag, grid.Get(flagged).Mark)
	assert.False(t, grid.Get(flagged).Revealed)
	for _, c := range changes {
		assert.NotEqual(t, flagged, c.Pos)
	}
	assert.False(t, IsWon(grid))
}

func TestFloodOpensQuestionMarks(t *testing.T) {
	grid := newGrid(t, 4, 4, model.Position{Row: 0, Col: 0})
	marked := model.Position{Row: 3, Col: 0}
	grid.Set(marked, model.Cell{Mark: model.MarkQuestion})

	_, _, err := New().Reveal(grid, model.Position{Row: 3, Col: 3})
	require.NoError(t, err)

	cell := grid.Get(marked)
	assert.True(t, cell.Revealed)
	assert.Equal(t, model.MarkNone, cell.Mark)
}

func TestFloodStopsAtNumberedBoundary(t *testing.T) {
	// A wall of mines down column 2 keeps the right side closed
	grid := newGrid(t, 5, 3,
		model.Position{Row: 0, Col: 2},
		model.Position{Row: 1, Col: 2},
		model.Position{Row: 2, Col: 2},
	)

	_, _, err := New().Reveal(grid, model.Position{Row: 1, Col: 0})
	require.NoError(t, err)

	for row := 0; row < 3; row++ {
		assert.True(t, grid.Get(model.Position{Row: row, Col: 0}).Revealed)
		assert.True(t, grid.Get(model.Position{Row: row, Col: 1}).Revealed)
		assert.False(t, grid.Get(model.Position{Row: row, Col: 3}).Revealed)
		assert.False(t, grid.Get(model.Position{Row: row, Col: 4}).Revealed)
	}
}

func TestRevealMatchesOracleOnRandomBoards(t *testing.T) {
	svc := New()
	for seed := uint64(1); seed <= 30; seed++ {
		grid, err := model.NewGrid(model.DefaultRules(), 16, 12, 30)
		require.NoError(t, err)
		start := model.Position{Row: int(seed) % 12, Col: int(seed*5) % 16}
		gen := generator.New(random.New(seed), testutil.NopLogger())
		require.NoError(t, gen.Generate(grid, start))

		expected := floodOracle(grid, start)
		_, changes, err := svc.Reveal(grid, start)
		require.NoError(t, err)

		assert.Equal(t, expected, revealedSet(grid), "seed %d", seed)
		assert.Len(t, changes, len(expected), "seed %d", seed)
	}
}

func TestRevealBeforeGeneration(t *testing.T) {
	grid, err := model.NewGrid(model.DefaultRules(), 3, 3, 1)
	require.NoError(t, err)

	_, _, err = New().Reveal(grid, model.Position{Row: 0, Col: 0})
	assert.ErrorIs(t, err, model.ErrNotGenerated)
}

func TestRevealOutOfBounds(t *testing.T) {
	grid := newGrid(t, 3, 3, model.Position{Row: 0, Col: 0})

	_, _, err := New().Reveal(grid, model.Position{Row: -1, Col: 0})
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestIsWonRequiresGeneration(t *testing.T) {
	grid, err := model.NewGrid(model.DefaultRules(), 3, 3, 1)
	require.NoError(t, err)
	assert.False(t, IsWon(grid))
}
