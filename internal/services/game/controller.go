package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/termsweeper/internal/dependencies/clock"
	"github.com/mcoot/termsweeper/internal/dependencies/random"
	"github.com/mcoot/termsweeper/internal/model"
	"github.com/mcoot/termsweeper/internal/services/generator"
	"github.com/mcoot/termsweeper/internal/services/history"
	"github.com/mcoot/termsweeper/internal/services/reveal"
)

// Controller manages the game state machine and applies player commands
type Controller struct {
	rules     model.Rules
	generator *generator.Service
	reveal    *reveal.Service
	history   *history.History
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	grid     *model.Grid
	progress model.Progress
	seed     uint64
}

// NewController creates a new game Controller. No game is in progress until
// NewGame is called.
func NewController(
	rules model.Rules,
	generator *generator.Service,
	reveal *reveal.Service,
	history *history.History,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		rules:     rules,
		generator: generator,
		reveal:    reveal,
		history:   history,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// NewGame replaces the grid with a pending one, reseeds the random source
// and clears history
func (c *Controller) NewGame(width, height, mines int, seed uint64) (model.Snapshot, error) {
	grid, err := model.NewGrid(c.rules, width, height, mines)
	if err != nil {
		return model.Snapshot{}, err
	}

	c.random.Seed(seed)
	c.seed = seed
	c.grid = grid
	c.progress = model.NewProgress()
	c.history.Clear()

	c.logger.Info("game started",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mines", mines),
		slog.Uint64("seed", seed),
	)

	return c.Snapshot(), nil
}

// Restart starts a new game with the current shape and mine count
func (c *Controller) Restart() (model.Snapshot, error) {
	if c.grid == nil {
		return model.Snapshot{}, model.ErrNoGameInProgress
	}
	return c.NewGame(c.grid.Width, c.grid.Height, c.grid.MineCount, c.seed+1)
}

// Execute applies a command to the current game
func (c *Controller) Execute(cmd model.Command) (model.Effect, error) {
	if c.grid == nil {
		return model.Effect{}, model.ErrNoGameInProgress
	}

	var (
		effect model.Effect
		err    error
	)
	switch cmd.Kind {
	case model.CommandReveal:
		effect, err = c.revealCell(cmd)
	case model.CommandToggleFlag:
		effect, err = c.toggleFlag(cmd)
	case model.CommandClearFlags:
		effect, err = c.clearFlags(cmd)
	case model.CommandResize:
		effect, err = c.resize(cmd)
	case model.CommandChangeMineCount:
		effect, err = c.changeMineCount(cmd)
	case model.CommandSurrender:
		effect, err = c.surrender(cmd)
	default:
		return model.Effect{}, fmt.Errorf("%w: unknown command %q", model.ErrInvalidCommand, cmd.Kind)
	}
	if err != nil {
		return model.Effect{}, err
	}

	c.logger.Debug("command executed",
		slog.String("command", cmd.String()),
		slog.String("status", string(effect.Status)),
		slog.Int("changed", len(effect.Changed)),
		slog.Bool("recorded", effect.Recorded),
	)
	if effect.Status != effect.StatusBefore && effect.Status.IsTerminal() {
		var elapsed time.Duration
		if !c.progress.StartedAt.IsZero() {
			elapsed = c.progress.FinishedAt.Sub(c.progress.StartedAt)
		}
		c.logger.Info("game finished",
			slog.String("status", string(effect.Status)),
			slog.Int("revealed", c.grid.RevealedCount()),
			slog.Duration("elapsed", elapsed),
		)
	}

	return effect, nil
}

// Undo rolls back the most recent recorded command, including its effect on
// the game status. Allowed in every state, so a losing reveal can be taken
// back.
func (c *Controller) Undo() (model.Effect, error) {
	if c.grid == nil {
		return model.Effect{}, model.ErrNoGameInProgress
	}
	entry, err := c.history.Undo(c.grid)
	if err != nil {
		return model.Effect{}, err
	}
	return c.restore(model.ActionUndo, entry, entry.Before), nil
}

// Redo reapplies the most recently undone command
func (c *Controller) Redo() (model.Effect, error) {
	if c.grid == nil {
		return model.Effect{}, model.ErrNoGameInProgress
	}
	entry, err := c.history.Redo(c.grid)
	if err != nil {
		return model.Effect{}, err
	}
	return c.restore(model.ActionRedo, entry, entry.After), nil
}

func (c *Controller) restore(action model.EffectAction, entry history.Entry, progress model.Progress) model.Effect {
	effect := c.newEffect(action, entry.Command)
	c.progress = progress
	effect.Status = progress.Status
	effect.Changed = changedPositions(entry.Changes)

	c.logger.Debug("history applied",
		slog.String("action", string(action)),
		slog.String("command", entry.Command.String()),
		slog.String("status", string(progress.Status)),
	)
	return effect
}

// Snapshot returns a read-only copy of the current game
func (c *Controller) Snapshot() model.Snapshot {
	if c.grid == nil {
		return model.Snapshot{Status: model.StatusNotStarted}
	}
	return model.Snapshot{
		Width:      c.grid.Width,
		Height:     c.grid.Height,
		MineCount:  c.grid.MineCount,
		FlagCount:  c.grid.FlagCount(),
		Status:     c.progress.Status,
		Generation: c.grid.Generation,
		Cells:      c.grid.Views(),
		CanUndo:    c.history.CanUndo(),
		CanRedo:    c.history.CanRedo(),
		StartedAt:  c.progress.StartedAt,
		FinishedAt: c.progress.FinishedAt,
	}
}

// Status returns the current game status
func (c *Controller) Status() model.GameStatus {
	return c.progress.Status
}

// Rules returns the rules the controller enforces
func (c *Controller) Rules() model.Rules {
	return c.rules
}

// Seed returns the seed of the current game
func (c *Controller) Seed() uint64 {
	return c.seed
}

func (c *Controller) newEffect(action model.EffectAction, cmd model.Command) model.Effect {
	return model.Effect{
		Action:       action,
		Command:      cmd,
		StatusBefore: c.progress.Status,
		Status:       c.progress.Status,
	}
}

func changedPositions(changes []model.CellChange) []model.Position {
	seen := make(map[model.Position]bool, len(changes))
	result := make([]model.Position, 0, len(changes))
	for _, change := range changes {
		if !seen[change.Pos] {
			seen[change.Pos] = true
			result = append(result, change.Pos)
		}
	}
	return result
}
