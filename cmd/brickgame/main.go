// brickgame plays handheld brick-game classics in the terminal.
//
// Usage:
//
//	brickgame list              - List available games
//	brickgame play <game>       - Play a game
//	brickgame menu              - Pick games interactively
//	brickgame scores [game]     - Show recorded results
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.brickgame/brickgame.yaml)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--storage <name>    - High-score backend: file, sqlite, redis, memory
//	--db <path>         - SQLite database path
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brick-arcade/internal/games/snake"
	_ "github.com/vovakirdan/brick-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagStorage  string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - Tetris and Snake in your terminal",
	Long: `Brick Game brings the handheld brick-game classics to the terminal:
a 10x20 field, a next-piece preview and a persistent high score.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View recorded results

Examples:
  brickgame list
  brickgame play tetris
  brickgame play snake --seed 42
  brickgame menu --storage sqlite
  brickgame scores tetris`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "High-score backend: file, sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
