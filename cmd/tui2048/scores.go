package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Browse high scores",
	Long: `Open the interactive high score browser, starting on the given
variant (classic when omitted). Tab cycles through variants.

With --plain the top 10 scores are printed to stdout instead.
With --reset all recorded scores for the variant are deleted.

Examples:
  tui2048 scores
  tui2048 scores big
  tui2048 scores classic --plain
  tui2048 scores classic --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive browser")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := config.DefaultVariantID
	if len(args) > 0 {
		variantID = args[0]
	}

	variants, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading variants: %v\n", err)
		os.Exit(1)
	}

	variant, ok := config.ByID(variants, variantID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'tui2048 list' to see available variants.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(variant.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", variant.Name)
		return
	}

	if flagPlain {
		printScores(store, variant)
		return
	}

	// Terminal size for the interactive browser
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, variants, variant.ID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, variant config.Variant) {
	scores, err := store.TopScores(variant.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", variant.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tui2048 play %s' to set the first high score!\n", variant.ID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-9s  %-7s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-7s  %s\n", "----", "-----", "--------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-9d  %-7d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	// Variant summary
	fmt.Println()
	stats, err := store.Stats(variant.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.BestScore, stats.AvgScore, stats.BestTile)
	}
}
