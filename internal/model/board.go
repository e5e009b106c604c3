package model

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Grid is the minefield for a single game. Cells are stored row-major and
// owned exclusively by the grid; callers only ever see copies.
type Grid struct {
	Width      int
	Height     int
	MineCount  int
	Generation GenerationState
	cells      []Cell
}

// NewGrid creates a pending grid with no mines placed
func NewGrid(rules Rules, width, height, mines int) (*Grid, error) {
	if !rules.ValidDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}
	if mines < 0 || mines >= width*height {
		return nil, ErrInvalidMineCount
	}
	return &Grid{
		Width:      width,
		Height:     height,
		MineCount:  mines,
		Generation: GenerationPending,
		cells:      make([]Cell, width*height),
	}, nil
}

// Rebuild returns a fresh pending grid of the given shape that keeps the
// marks of any unrevealed cells inside the overlap with g. Flags beyond the
// new mine count are demoted when the rules cap flags.
func (g *Grid) Rebuild(rules Rules, width, height, mines int) (*Grid, error) {
	next, err := NewGrid(rules, width, height, mines)
	if err != nil {
		return nil, err
	}
	for row := 0; row < min(g.Height, height); row++ {
		for col := 0; col < min(g.Width, width); col++ {
			pos := Position{Row: row, Col: col}
			if old := g.Get(pos); !old.Revealed {
				next.Set(pos, Cell{Mark: old.Mark})
			}
		}
	}
	next.DemoteExcessFlags(rules)
	return next, nil
}

// DemoteExcessFlags removes flags until there are no more than MineCount,
// starting from the last cell in row-major order. Demoted flags become
// question marks, or plain cells when question marks are off. It returns the
// number of cells changed, and does nothing unless rules cap flags.
func (g *Grid) DemoteExcessFlags(rules Rules) int {
	if !rules.CapFlags {
		return 0
	}
	demoted := MarkNone
	if rules.QuestionMarks {
		demoted = MarkQuestion
	}

	excess := g.FlagCount() - g.MineCount
	changed := 0
	for i := len(g.cells) - 1; i >= 0 && excess > 0; i-- {
		if g.cells[i].IsFlagged() {
			g.cells[i].Mark = demoted
			excess--
			changed++
		}
	}
	return changed
}

// Area returns the number of cells
func (g *Grid) Area() int {
	return g.Width * g.Height
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// CellAt returns a copy of the cell at pos
func (g *Grid) CellAt(pos Position) (Cell, error) {
	if !g.InBounds(pos) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[g.index(pos)], nil
}

// Get returns the cell at pos, or the zero cell if out of bounds
func (g *Grid) Get(pos Position) Cell {
	if !g.InBounds(pos) {
		return Cell{}
	}
	return g.cells[g.index(pos)]
}

// Set replaces the cell at pos. Out of bounds positions are ignored.
func (g *Grid) Set(pos Position, cell Cell) {
	if g.InBounds(pos) {
		g.cells[g.index(pos)] = cell
	}
}

// Cells returns a copy of all cells in row-major order
func (g *Grid) Cells() []Cell {
	result := make([]Cell, len(g.cells))
	copy(result, g.cells)
	return result
}

// Views returns the rendering view of every cell as rows
func (g *Grid) Views() [][]CellView {
	rows := make([][]CellView, g.Height)
	for row := range rows {
		rows[row] = make([]CellView, g.Width)
		for col := range rows[row] {
			c := g.cells[row*g.Width+col]
			view := CellView{Mine: c.Mine, Mark: c.Mark, Revealed: c.Revealed}
			if g.Generation == GenerationGenerated {
				view.Count = c.Count()
			}
			rows[row][col] = view
		}
	}
	return rows
}

// Positions returns every position in row-major order
func (g *Grid) Positions() []Position {
	result := make([]Position, 0, len(g.cells))
	for i := range g.cells {
		result = append(result, g.positionOf(i))
	}
	return result
}

// Neighbors returns the in-bounds 8-neighbours of pos, top-left to
// bottom-right
func (g *Grid) Neighbors(pos Position) []Position {
	result := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if g.InBounds(n) {
				result = append(result, n)
			}
		}
	}
	return result
}

// PlaceMines lays the given mines on a pending grid, computes adjacency
// counts for every other cell and marks the grid as generated
func (g *Grid) PlaceMines(mines []Position) error {
	if g.Generation == GenerationGenerated {
		return ErrAlreadyGenerated
	}
	if len(mines) != g.MineCount {
		return ErrInvalidMineCount
	}
	seen := make(map[Position]bool, len(mines))
	for _, pos := range mines {
		if !g.InBounds(pos) {
			return ErrOutOfBounds
		}
		if seen[pos] {
			return ErrInvalidMineCount
		}
		seen[pos] = true
	}
	for _, pos := range mines {
		g.cells[g.index(pos)].Mine = true
	}

	for i := range g.cells {
		if g.cells[i].Mine {
			continue
		}
		count := 0
		for _, n := range g.Neighbors(g.positionOf(i)) {
			if g.cells[g.index(n)].Mine {
				count++
			}
		}
		g.cells[i].Adjacent = count
	}

	g.Generation = GenerationGenerated
	return nil
}

// FlagCount returns the number of flagged cells
func (g *Grid) FlagCount() int {
	return g.count(func(c Cell) bool { return c.IsFlagged() })
}

// RevealedCount returns the number of revealed cells
func (g *Grid) RevealedCount() int {
	return g.count(func(c Cell) bool { return c.Revealed })
}

// RevealedMineCount returns the number of revealed mines
func (g *Grid) RevealedMineCount() int {
	return g.count(func(c Cell) bool { return c.Revealed && c.Mine })
}

// PlacedMineCount returns the number of cells holding a mine
func (g *Grid) PlacedMineCount() int {
	return g.count(func(c Cell) bool { return c.Mine })
}

// SafeRemaining returns the number of unrevealed cells without a mine.
// Before generation every cell counts as safe.
func (g *Grid) SafeRemaining() int {
	return g.count(func(c Cell) bool { return !c.Mine && !c.Revealed })
}

func (g *Grid) count(match func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

func (g *Grid) index(pos Position) int {
	return pos.Row*g.Width + pos.Col
}

func (g *Grid) positionOf(i int) Position {
	return Position{Row: i / g.Width, Col: i % g.Width}
}
