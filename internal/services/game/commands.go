package game

import (
	"fmt"

	"github.com/mcoot/termsweeper/internal/model"
	"github.com/mcoot/termsweeper/internal/services/history"
	"github.com/mcoot/termsweeper/internal/services/reveal"
)

func (c *Controller) revealCell(cmd model.Command) (model.Effect, error) {
	if c.progress.Status.IsTerminal() {
		return model.Effect{}, model.ErrGameOver
	}
	cell, err := c.grid.CellAt(cmd.Pos)
	if err != nil {
		return model.Effect{}, err
	}

	effect := c.newEffect(model.ActionExecute, cmd)
	if cell.Revealed || cell.IsFlagged() {
		return effect, nil
	}

	if c.grid.Generation == model.GenerationPending {
		if err := c.generator.Generate(c.grid, cmd.Pos); err != nil {
			return model.Effect{}, fmt.Errorf("generating mines: %w", err)
		}
		effect.Generated = true
	}

	outcome, changes, err := c.reveal.Reveal(c.grid, cmd.Pos)
	if err != nil {
		return model.Effect{}, err
	}

	before := c.progress
	after := before
	if after.Status == model.StatusNotStarted {
		after.Status = model.StatusInProgress
		after.StartedAt = c.clock.Now()
	}
	switch {
	case outcome == reveal.OutcomeHitMine:
		after.Status = model.StatusLost
		after.FinishedAt = c.clock.Now()
	case reveal.IsWon(c.grid):
		after.Status = model.StatusWon
		after.FinishedAt = c.clock.Now()
	}

	c.record(cmd, changes, before, after)
	effect.Changed = changedPositions(changes)
	effect.Status = after.Status
	effect.Recorded = true
	return effect, nil
}

func (c *Controller) toggleFlag(cmd model.Command) (model.Effect, error) {
	if c.progress.Status.IsTerminal() {
		return model.Effect{}, model.ErrGameOver
	}
	cell, err := c.grid.CellAt(cmd.Pos)
	if err != nil {
		return model.Effect{}, err
	}
	if cell.Revealed {
		return model.Effect{}, fmt.Errorf("%w: cell (%d,%d) is already revealed", model.ErrInvalidCommand, cmd.Pos.Row, cmd.Pos.Col)
	}

	next := c.rules.NextMark(cell.Mark, c.grid.FlagCount() < c.grid.MineCount)
	if next == cell.Mark {
		return model.Effect{}, fmt.Errorf("%w: no flags remaining", model.ErrInvalidCommand)
	}

	return c.setMark(cmd, cell, next), nil
}

func (c *Controller) clearFlags(cmd model.Command) (model.Effect, error) {
	if c.progress.Status.IsTerminal() {
		return model.Effect{}, model.ErrGameOver
	}
	cell, err := c.grid.CellAt(cmd.Pos)
	if err != nil {
		return model.Effect{}, err
	}
	if cell.Revealed || !cell.IsMarked() {
		return c.newEffect(model.ActionExecute, cmd), nil
	}

	return c.setMark(cmd, cell, model.MarkNone), nil
}

func (c *Controller) setMark(cmd model.Command, cell model.Cell, mark model.Mark) model.Effect {
	after := cell
	after.Mark = mark
	c.grid.Set(cmd.Pos, after)

	c.record(cmd, []model.CellChange{{Pos: cmd.Pos, Before: cell, After: after}}, c.progress, c.progress)

	effect := c.newEffect(model.ActionExecute, cmd)
	effect.Changed = []model.Position{cmd.Pos}
	effect.Recorded = true
	return effect
}

func (c *Controller) surrender(cmd model.Command) (model.Effect, error) {
	if c.progress.Status.IsTerminal() {
		return model.Effect{}, model.ErrGameOver
	}

	effect := c.newEffect(model.ActionExecute, cmd)
	before := c.progress
	after := before
	after.Status = model.StatusSurrendered
	after.FinishedAt = c.clock.Now()

	c.record(cmd, nil, before, after)
	effect.Status = after.Status
	effect.Recorded = true
	return effect, nil
}

func (c *Controller) resize(cmd model.Command) (model.Effect, error) {
	if !c.rules.ValidDimensions(cmd.Width, cmd.Height) {
		return model.Effect{}, fmt.Errorf("%w: %dx%d", model.ErrInvalidDimensions, cmd.Width, cmd.Height)
	}
	terminal := c.progress.Status.IsTerminal()
	if !terminal && cmd.Width == c.grid.Width && cmd.Height == c.grid.Height {
		return c.newEffect(model.ActionExecute, cmd), nil
	}

	mines := min(c.grid.MineCount, c.rules.MaxMines(cmd.Width, cmd.Height))
	return c.replaceGrid(cmd, cmd.Width, cmd.Height, mines)
}

func (c *Controller) changeMineCount(cmd model.Command) (model.Effect, error) {
	target, err := c.steppedMineCount(cmd.Delta, cmd.Step)
	if err != nil {
		return model.Effect{}, err
	}
	terminal := c.progress.Status.IsTerminal()
	if !terminal && target == c.grid.MineCount {
		return c.newEffect(model.ActionExecute, cmd), nil
	}

	if !terminal && c.grid.Generation == model.GenerationPending {
		c.grid.MineCount = target
		effect := c.newEffect(model.ActionExecute, cmd)
		effect.Rebuilt = true
		if c.grid.DemoteExcessFlags(c.rules) > 0 {
			// Recorded marks no longer match the grid
			c.history.Clear()
			effect.HistoryCleared = true
		}
		return effect, nil
	}

	return c.replaceGrid(cmd, c.grid.Width, c.grid.Height, target)
}

// replaceGrid swaps in a pending grid of the given shape. Mid-game the marks
// in the overlap survive; after a terminal status this is a fresh game.
func (c *Controller) replaceGrid(cmd model.Command, width, height, mines int) (model.Effect, error) {
	var (
		next *model.Grid
		err  error
	)
	if c.progress.Status.IsTerminal() {
		next, err = model.NewGrid(c.rules, width, height, mines)
	} else {
		next, err = c.grid.Rebuild(c.rules, width, height, mines)
	}
	if err != nil {
		return model.Effect{}, err
	}

	effect := c.newEffect(model.ActionExecute, cmd)
	c.grid = next
	c.progress = model.NewProgress()
	c.history.Clear()

	effect.Status = c.progress.Status
	effect.Rebuilt = true
	effect.HistoryCleared = true
	return effect, nil
}

// steppedMineCount applies a mine count delta and clamps the result to what
// the current shape allows. A count already at or above the limit never
// moves up.
func (c *Controller) steppedMineCount(delta int, step model.MineStep) (int, error) {
	count := c.grid.MineCount
	limit := c.rules.MaxMines(c.grid.Width, c.grid.Height)
	switch step {
	case model.StepAbsolute:
		count += delta
	case model.StepPercent:
		count = PercentStep(count, c.grid.Area(), delta)
	default:
		return 0, fmt.Errorf("%w: unknown mine step %q", model.ErrInvalidCommand, step)
	}
	if delta > 0 && c.grid.MineCount >= limit {
		return c.grid.MineCount, nil
	}
	return max(0, min(count, limit)), nil
}

// PercentStep moves count by delta hundredths of area, landing on multiples
// of one hundredth. Upward steps go to the next multiple strictly above the
// current count; downward steps subtract a hundredth and round up.
func PercentStep(count, area, delta int) int {
	hundredth := max(1, area/100)
	for ; delta > 0; delta-- {
		count = nextMultiple(count+1, hundredth)
	}
	for ; delta < 0; delta++ {
		count = nextMultiple(max(0, count-hundredth), hundredth)
	}
	return count
}

func nextMultiple(n, m int) int {
	if r := n % m; r != 0 {
		return n + m - r
	}
	return n
}

func (c *Controller) record(cmd model.Command, changes []model.CellChange, before, after model.Progress) {
	c.history.Push(history.Entry{
		Command: cmd,
		Changes: changes,
		Before:  before,
		After:   after,
	})
	c.progress = after
}
