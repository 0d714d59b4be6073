package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start brickgame in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  brickgame menu
  brickgame menu --storage redis`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	warnSmallTerminal()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	for {
		result, err := tui.RunMenu(a.highScore)
		if err != nil {
			return err
		}

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			width, height := 80, 24
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width, height = w, h
			}

			var source tui.ScoreSource
			if a.results != nil {
				source = a.results
			}
			goBack, err := tui.RunScoreboard(source, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if result.GameID == "" {
			return nil
		}
		if err := a.play(result.GameID); err != nil {
			return err
		}
	}
}
