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

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing the specified variant, or classic when omitted.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Swipe to slide
  C                - Keep playing after winning
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play big
  tui2048 play mini --seed 42
  tui2048 play classic --config ./my-variants.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variants YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := config.DefaultVariantID
	if len(args) > 0 {
		variantID = args[0]
	}

	variants, err := config.Load(flagConfig)
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

	// Get terminal size for centering the board
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.RunPlay(variant, store, flagSeed, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
