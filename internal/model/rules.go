package model

// Rules holds the board limits and marking behaviour for a session
type Rules struct {
	MinDimension   int     // Smallest playable width or height
	MaxDimension   int     // Largest width or height
	DensityCeiling float64 // Highest mine fraction reachable by resizing or stepping the mine count
	QuestionMarks  bool    // Toggling cycles none -> flag -> question -> none
	CapFlags       bool    // Flags may not outnumber mines
}

// DefaultRules returns the default rules
func DefaultRules() Rules {
	return Rules{
		MinDimension:   2,
		MaxDimension:   256,
		DensityCeiling: 0.9,
		QuestionMarks:  true,
		CapFlags:       true,
	}
}

// ValidDimensions returns true if a width x height grid is allowed
func (r Rules) ValidDimensions(width, height int) bool {
	return width >= r.MinDimension && width <= r.MaxDimension &&
		height >= r.MinDimension && height <= r.MaxDimension
}

// MaxMines returns the largest mine count the mine-count step and resize
// clamping will produce for a width x height grid. It always leaves at
// least two cells free of mines.
func (r Rules) MaxMines(width, height int) int {
	area := width * height
	limit := int(float64(area) * r.DensityCeiling)
	if limit > area-2 {
		limit = area - 2
	}
	if limit < 0 {
		limit = 0
	}
	return limit
}

// NextMark returns the mark that follows current when the player toggles a
// hidden cell. flagAvailable is false when the flag cap has been reached.
func (r Rules) NextMark(current Mark, flagAvailable bool) Mark {
	switch current {
	case MarkNone:
		if flagAvailable || !r.CapFlags {
			return MarkFlag
		}
		if r.QuestionMarks {
			return MarkQuestion
		}
		return MarkNone
	case MarkFlag:
		if r.QuestionMarks {
			return MarkQuestion
		}
		return MarkNone
	default:
		return MarkNone
	}
}

// Default board for a new session
const (
	DefaultWidth  = 32
	DefaultHeight = 16
	DefaultMines  = 100
)
