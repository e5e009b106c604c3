package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/termsweeper/internal/dependencies/clock"
	"github.com/mcoot/termsweeper/internal/dependencies/random"
	"github.com/mcoot/termsweeper/internal/model"
	"github.com/mcoot/termsweeper/internal/services/game"
	"github.com/mcoot/termsweeper/internal/services/generator"
	"github.com/mcoot/termsweeper/internal/services/history"
	"github.com/mcoot/termsweeper/internal/services/reveal"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Generator      *generator.Service
	Reveal         *reveal.Service
	History        *history.History
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Width, Height and Mines describe the board of the first game.
	// If Width and Height are both zero, the default board is used.
	Width  int
	Height int
	Mines  int
	// Seed fixes the first game's layout (optional)
	// If nil, a seed is derived from the clock
	Seed *uint64
	// Rules holds board limits and marking behaviour (optional)
	// If zero value, defaults to model.DefaultRules()
	Rules model.Rules
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired and the first
// game started
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Use default rules if not provided
	rules := cfg.Rules
	if rules.MaxDimension == 0 {
		rules = model.DefaultRules()
	}

	width, height, mines := cfg.Width, cfg.Height, cfg.Mines
	if width == 0 && height == 0 {
		width, height, mines = model.DefaultWidth, model.DefaultHeight, model.DefaultMines
	}

	// Create external dependencies
	clk := clock.New()
	seed := clock.SeedFrom(clk)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rnd := random.New(seed)

	app := newWithDependencies(rules, clk, rnd, logger)
	if _, err := app.GameController.NewGame(width, height, mines, seed); err != nil {
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(rules model.Rules, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	generatorService := generator.New(rnd, logger)
	revealService := reveal.New()
	commandLog := history.New()
	gameController := game.NewController(rules, generatorService, revealService, commandLog, clk, rnd, logger)

	return &App{
		Clock:          clk,
		Random:         rnd,
		Generator:      generatorService,
		Reveal:         revealService,
		History:        commandLog,
		GameController: gameController,
	}
}
