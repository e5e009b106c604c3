package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/termsweeper/internal/model"
)

// InputKind identifies what a line of player input asks for
type InputKind int

const (
	InputNone    InputKind = iota // Blank line
	InputCommand                  // A board command for the engine
	InputUndo
	InputRedo
	InputRestart
	InputHelp
	InputQuit
)

// Input is one parsed line of player input
type Input struct {
	Kind    InputKind
	Command model.Command
}

const helpText = `Commands:
  r|x|space <row> <col>     reveal a cell
  f|z <row> <col>           cycle flag / question mark
  c|backspace <row> <col>   clear the mark on a cell
  k                         surrender
  u                         undo
  y                         redo
  + / -                     one more / one fewer mine
  n / p                     one percent more / fewer mines
  w+ w- h+ h-               grow or shrink the board
  resize <width> <height>   set the board size
  mines <count>             set the mine count
  new                       start a new game on the same board
  help                      show this list
  q|esc                     quit`

// ParseInput turns a line of player input into an Input. Relative board
// adjustments are resolved against snap.
func ParseInput(line string, snap model.Snapshot) (Input, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Input{Kind: InputNone}, nil
	}
	verb, args := fields[0], fields[1:]

	command := func(cmd model.Command) (Input, error) {
		return Input{Kind: InputCommand, Command: cmd}, nil
	}

	switch verb {
	case "r", "x", "space", "reveal":
		pos, err := parsePosition(verb, args)
		if err != nil {
			return Input{}, err
		}
		return command(model.RevealCell(pos))
	case "f", "z", "flag":
		pos, err := parsePosition(verb, args)
		if err != nil {
			return Input{}, err
		}
		return command(model.ToggleFlag(pos))
	case "c", "backspace", "clear":
		pos, err := parsePosition(verb, args)
		if err != nil {
			return Input{}, err
		}
		return command(model.ClearFlags(pos))
	case "k", "surrender":
		return command(model.Surrender())
	case "+":
		return command(model.ChangeMineCount(1, model.StepAbsolute))
	case "-":
		return command(model.ChangeMineCount(-1, model.StepAbsolute))
	case "n":
		return command(model.ChangeMineCount(1, model.StepPercent))
	case "p":
		return command(model.ChangeMineCount(-1, model.StepPercent))
	case "w+":
		return command(model.Resize(snap.Width+1, snap.Height))
	case "w-":
		return command(model.Resize(snap.Width-1, snap.Height))
	case "h+":
		return command(model.Resize(snap.Width, snap.Height+1))
	case "h-":
		return command(model.Resize(snap.Width, snap.Height-1))
	case "resize":
		nums, err := parseInts(verb, args, "<width> <height>")
		if err != nil {
			return Input{}, err
		}
		return command(model.Resize(nums[0], nums[1]))
	case "mines":
		nums, err := parseInts(verb, args, "<count>")
		if err != nil {
			return Input{}, err
		}
		return command(model.ChangeMineCount(nums[0]-snap.MineCount, model.StepAbsolute))
	case "u", "undo":
		return Input{Kind: InputUndo}, nil
	case "y", "redo":
		return Input{Kind: InputRedo}, nil
	case "new":
		return Input{Kind: InputRestart}, nil
	case "help", "?":
		return Input{Kind: InputHelp}, nil
	case "q", "esc", "quit", "exit":
		return Input{Kind: InputQuit}, nil
	default:
		return Input{}, fmt.Errorf("%w: unknown input %q (try help)", model.ErrInvalidCommand, verb)
	}
}

func parsePosition(verb string, args []string) (model.Position, error) {
	nums, err := parseInts(verb, args, "<row> <col>")
	if err != nil {
		return model.Position{}, err
	}
	return model.Position{Row: nums[0], Col: nums[1]}, nil
}

// parseInts reads exactly as many integers as usage names
func parseInts(verb string, args []string, usage string) ([]int, error) {
	want := len(strings.Fields(usage))
	if len(args) != want {
		return nil, fmt.Errorf("%w: usage: %s %s", model.ErrInvalidCommand, verb, usage)
	}
	nums := make([]int, want)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", model.ErrInvalidCommand, arg)
		}
		nums[i] = n
	}
	return nums, nil
}
