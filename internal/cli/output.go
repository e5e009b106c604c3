package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/termsweeper/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintSnapshot outputs the board as of now
func (o *Output) PrintSnapshot(snap model.Snapshot, now time.Time) {
	o.Print(NewBoardView(snap, now))
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Prompt asks for the next command. JSON output never prompts.
func (o *Output) Prompt() {
	if o.format != "json" {
		fmt.Fprint(o.w, "> ")
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case Settings:
		o.printSettings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is the rendered board for output
type BoardView struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Mines          int      `json:"mines"`
	Flags          int      `json:"flags"`
	MinesRemaining int      `json:"mines_remaining"`
	Status         string   `json:"status"`
	Generation     string   `json:"generation"`
	CanUndo        bool     `json:"can_undo"`
	CanRedo        bool     `json:"can_redo"`
	ElapsedSeconds int      `json:"elapsed_seconds"`
	Rows           []string `json:"rows"`
}

// Board glyphs
const (
	glyphHidden    = '#'
	glyphFlag      = '!'
	glyphQuestion  = '?'
	glyphEmpty     = '.'
	glyphMine      = '*'
	glyphWrongFlag = 'x'
)

// NewBoardView renders a snapshot. Once the game is over, hidden mines are
// shown and flags on safe cells are marked wrong.
func NewBoardView(snap model.Snapshot, now time.Time) BoardView {
	terminal := snap.Status.IsTerminal()
	rows := make([]string, len(snap.Cells))
	for i, row := range snap.Cells {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cellGlyph(cell, terminal))
		}
		rows[i] = b.String()
	}

	return BoardView{
		Width:          snap.Width,
		Height:         snap.Height,
		Mines:          snap.MineCount,
		Flags:          snap.FlagCount,
		MinesRemaining: snap.MinesRemaining(),
		Status:         string(snap.Status),
		Generation:     string(snap.Generation),
		CanUndo:        snap.CanUndo,
		CanRedo:        snap.CanRedo,
		ElapsedSeconds: int(snap.Elapsed(now) / time.Second),
		Rows:           rows,
	}
}

func cellGlyph(cell model.CellView, terminal bool) rune {
	if cell.Revealed {
		switch {
		case cell.Mine:
			return glyphMine
		case cell.Count == 0:
			return glyphEmpty
		default:
			return rune('0' + cell.Count)
		}
	}
	if terminal {
		if cell.Mine && cell.Mark != model.MarkFlag {
			return glyphMine
		}
		if !cell.Mine && cell.Mark == model.MarkFlag {
			return glyphWrongFlag
		}
	}
	switch cell.Mark {
	case model.MarkFlag:
		return glyphFlag
	case model.MarkQuestion:
		return glyphQuestion
	default:
		return glyphHidden
	}
}

func (o *Output) printBoard(v BoardView) {
	fmt.Fprintf(o.w, "%dx%d  mines: %d  flags: %d  time: %ds  [%s]\n",
		v.Width, v.Height, v.Mines, v.Flags, v.ElapsedSeconds, v.Status)

	// Column headers repeat every ten columns
	fmt.Fprint(o.w, "     ")
	for col := 0; col < v.Width; col++ {
		fmt.Fprintf(o.w, "%d", col%10)
	}
	fmt.Fprintln(o.w)

	for row, cells := range v.Rows {
		fmt.Fprintf(o.w, "%4d %s\n", row, cells)
	}

	switch model.GameStatus(v.Status) {
	case model.StatusWon:
		fmt.Fprintln(o.w, "You win!")
	case model.StatusLost:
		fmt.Fprintln(o.w, "Boom! You hit a mine.")
	case model.StatusSurrendered:
		fmt.Fprintln(o.w, "You gave up.")
	}
}

// Settings is the effective configuration for a session
type Settings struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Mines          int     `json:"mines"`
	Seed           string  `json:"seed,omitempty"`
	MinDimension   int     `json:"min_dimension"`
	MaxDimension   int     `json:"max_dimension"`
	DensityCeiling float64 `json:"density_ceiling"`
	QuestionMarks  bool    `json:"question_marks"`
	CapFlags       bool    `json:"cap_flags"`
}

func (o *Output) printSettings(s Settings) {
	seed := s.Seed
	if seed == "" {
		seed = "(random)"
	}
	fmt.Fprintf(o.w, "Board: %dx%d, %d mines\n", s.Width, s.Height, s.Mines)
	fmt.Fprintf(o.w, "Seed: %s\n", seed)
	fmt.Fprintf(o.w, "Dimensions: %d-%d\n", s.MinDimension, s.MaxDimension)
	fmt.Fprintf(o.w, "Density ceiling: %.0f%%\n", s.DensityCeiling*100)
	fmt.Fprintf(o.w, "Question marks: %t\n", s.QuestionMarks)
	fmt.Fprintf(o.w, "Flag cap: %t\n", s.CapFlags)
}
