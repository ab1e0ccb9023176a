// tui2048 is a terminal take on the 2048 sliding-tile puzzle.
//
// Usage:
//
//	tui2048 list               - List available game variants
//	tui2048 play [variant]     - Play a variant (default: classic)
//	tui2048 serve              - Start SSH server for remote play
//	tui2048 scores [variant]   - Browse high scores
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.tui2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys, join matching pairs to double them and
chase the winning tile. Variants change the board size, the spawn rate
and the goal.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  scores   - Browse high scores

Examples:
  tui2048 list
  tui2048 play
  tui2048 play big
  tui2048 serve --ssh :2222
  tui2048 scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui2048/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
