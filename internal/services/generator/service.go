package generator

import (
	"log/slog"

	"github.com/mcoot/termsweeper/internal/dependencies/random"
	"github.com/mcoot/termsweeper/internal/model"
)

// Service places mines on pending grids
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new generator Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Generate places grid.MineCount mines uniformly at random, keeping first
// and its neighbours clear so the first reveal opens a zero cell. On grids
// too dense for that, only first itself is kept clear.
func (s *Service) Generate(grid *model.Grid, first model.Position) error {
	if grid.Generation == model.GenerationGenerated {
		return model.ErrAlreadyGenerated
	}
	if !grid.InBounds(first) {
		return model.ErrOutOfBounds
	}

	candidates := Candidates(grid, SafeZone(grid, first))
	relaxed := false
	if len(candidates) < grid.MineCount {
		candidates = Candidates(grid, map[model.Position]bool{first: true})
		relaxed = true
	}
	if len(candidates) < grid.MineCount {
		return model.ErrMineCountUnsatisfiable
	}

	// Partial Fisher-Yates: the first MineCount slots end up a uniform sample
	for i := 0; i < grid.MineCount; i++ {
		j := i + s.random.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	if err := grid.PlaceMines(candidates[:grid.MineCount]); err != nil {
		return err
	}

	s.logger.Debug("mines generated",
		slog.Int("width", grid.Width),
		slog.Int("height", grid.Height),
		slog.Int("mines", grid.MineCount),
		slog.Int("first_row", first.Row),
		slog.Int("first_col", first.Col),
		slog.Bool("relaxed_safe_zone", relaxed),
	)

	return nil
}

// SafeZone returns pos and its in-bounds neighbours
func SafeZone(grid *model.Grid, pos model.Position) map[model.Position]bool {
	zone := map[model.Position]bool{pos: true}
	for _, n := range grid.Neighbors(pos) {
		zone[n] = true
	}
	return zone
}

// Candidates returns every position outside excluded, in row-major order
func Candidates(grid *model.Grid, excluded map[model.Position]bool) []model.Position {
	result := make([]model.Position, 0, grid.Area())
	for _, pos := range grid.Positions() {
		if !excluded[pos] {
			result = append(result, pos)
		}
	}
	return result
}
