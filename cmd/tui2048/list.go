package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/config"
)

var flagListConfig string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every game variant you can play, built-in and custom.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListConfig, "config", "", "Path to custom variants YAML")
}

func runList(cmd *cobra.Command, args []string) {
	variants, err := config.Load(flagListConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading variants: %v\n", err)
		os.Exit(1)
	}

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Board", "Goal", "Description")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----------")

	// Print variants
	for _, v := range variants {
		board := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-6s  %-6d  %s\n", maxIDLen, v.ID, board, v.WinValue, v.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tui2048 play <id>' to play a variant.")
}
