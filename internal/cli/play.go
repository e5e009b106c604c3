package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcoot/termsweeper/internal/dependencies/clock"
	"github.com/mcoot/termsweeper/internal/factory"
	"github.com/mcoot/termsweeper/internal/model"
	"github.com/mcoot/termsweeper/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game, one command per line",
		Long:  "Play a game, reading one command per line from stdin.\n\n" + helpText,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := cfg.SeedValue()
			if err != nil {
				return err
			}

			app, err := factory.New(factory.Config{
				Width:  cfg.Width,
				Height: cfg.Height,
				Mines:  cfg.Mines,
				Seed:   seed,
				Rules:  cfg.Rules,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			s := &session{
				controller:  app.GameController,
				clock:       app.Clock,
				out:         NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()),
				in:          cmd.InOrStdin(),
				interactive: isTerminal(cmd.InOrStdin()),
			}
			return s.run()
		},
	}
	addBoardFlags(cmd)
	return cmd
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&cfg.Width, "width", "x", cfg.Width, "Board width (env: TERMSWEEPER_WIDTH)")
	cmd.Flags().IntVarP(&cfg.Height, "height", "y", cfg.Height, "Board height (env: TERMSWEEPER_HEIGHT)")
	cmd.Flags().IntVarP(&cfg.Mines, "mines", "m", cfg.Mines, "Number of mines (env: TERMSWEEPER_MINES)")
	cmd.Flags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for a reproducible layout (env: TERMSWEEPER_SEED)")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// session runs the read-apply-print loop for one player
type session struct {
	controller  *game.Controller
	clock       clock.Clock
	out         *Output
	in          io.Reader
	interactive bool
}

func (s *session) run() error {
	s.printBoard()

	scanner := bufio.NewScanner(s.in)
	for {
		if s.interactive {
			s.out.Prompt()
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		input, err := ParseInput(scanner.Text(), s.controller.Snapshot())
		if err != nil {
			s.out.PrintError(err)
			continue
		}

		switch input.Kind {
		case InputNone:
			continue
		case InputQuit:
			return nil
		case InputHelp:
			s.out.PrintMessage(helpText)
			continue
		}

		if err := s.apply(input); err != nil {
			s.out.PrintError(err)
			continue
		}
		s.printBoard()
	}
}

func (s *session) apply(input Input) error {
	var err error
	switch input.Kind {
	case InputCommand:
		_, err = s.controller.Execute(input.Command)
	case InputUndo:
		_, err = s.controller.Undo()
	case InputRedo:
		_, err = s.controller.Redo()
	case InputRestart:
		_, err = s.controller.Restart()
	default:
		err = model.ErrInvalidCommand
	}
	if errors.Is(err, model.ErrGameOver) {
		return fmt.Errorf("%w: undo, new, or change the board to keep playing", err)
	}
	return err
}

func (s *session) printBoard() {
	s.out.PrintSnapshot(s.controller.Snapshot(), s.clock.Now())
}
