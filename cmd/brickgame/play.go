package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-arcade/internal/registry"
)

// Smallest terminal that fits the board, the side panel and the help line.
const (
	minTermWidth  = 44
	minTermHeight = 25
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter          - Start / play again
  Arrows, WASD   - Move (Tetris: Up rotates, Down drops; Snake: steer)
  Space          - Rotate (Tetris) / pause (Snake)
  P              - Pause / resume
  Esc/Q          - End the round
  Q              - Leave after the round ended
  Ctrl+C         - Quit

Holding the key for the current heading speeds the snake up.

Examples:
  brickgame play tetris
  brickgame play snake --seed 42
  brickgame play tetris --storage sqlite --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'brickgame list' to see available games", gameID)
	}
	warnSmallTerminal()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	return a.play(gameID)
}

// warnSmallTerminal prints a hint when the board will not fit.
func warnSmallTerminal() {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < minTermWidth || h < minTermHeight {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n",
			w, h, minTermWidth, minTermHeight)
	}
}
