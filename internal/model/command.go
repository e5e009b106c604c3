package model

import "fmt"

// CommandKind identifies the type of command
type CommandKind string

const (
	CommandReveal          CommandKind = "reveal"
	CommandToggleFlag      CommandKind = "toggle_flag"
	CommandClearFlags      CommandKind = "clear_flags"
	CommandResize          CommandKind = "resize"
	CommandChangeMineCount CommandKind = "change_mine_count"
	CommandSurrender       CommandKind = "surrender"
)

// MineStep selects how a mine count delta is interpreted
type MineStep string

const (
	StepAbsolute MineStep = "absolute" // Delta is a number of mines
	StepPercent  MineStep = "percent"  // Delta is a number of hundredths of the grid area
)

// Command is one player action against the board. Only the fields relevant
// to Kind are set.
type Command struct {
	Kind CommandKind

	Pos Position // reveal, toggle_flag, clear_flags

	Width  int // resize
	Height int // resize

	Delta int      // change_mine_count
	Step  MineStep // change_mine_count
}

// RevealCell opens the cell at pos
func RevealCell(pos Position) Command {
	return Command{Kind: CommandReveal, Pos: pos}
}

// ToggleFlag cycles the mark on the cell at pos
func ToggleFlag(pos Position) Command {
	return Command{Kind: CommandToggleFlag, Pos: pos}
}

// ClearFlags removes any mark from the cell at pos
func ClearFlags(pos Position) Command {
	return Command{Kind: CommandClearFlags, Pos: pos}
}

// Resize replaces the grid with one of the given shape
func Resize(width, height int) Command {
	return Command{Kind: CommandResize, Width: width, Height: height}
}

// ChangeMineCount moves the mine count by delta units of step
func ChangeMineCount(delta int, step MineStep) Command {
	return Command{Kind: CommandChangeMineCount, Delta: delta, Step: step}
}

// Surrender gives up the current game
func Surrender() Command {
	return Command{Kind: CommandSurrender}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandReveal, CommandToggleFlag, CommandClearFlags:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.Pos.Row, c.Pos.Col)
	case CommandResize:
		return fmt.Sprintf("%s(%dx%d)", c.Kind, c.Width, c.Height)
	case CommandChangeMineCount:
		return fmt.Sprintf("%s(%+d %s)", c.Kind, c.Delta, c.Step)
	default:
		return string(c.Kind)
	}
}
