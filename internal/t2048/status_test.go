package t2048

import "testing"

func TestHasWinningTile(t *testing.T) {
	tests := []struct {
		name     string
		grid     [][]int
		winValue int
		expected bool
	}{
		{
			name: "winning tile present",
			grid: [][]int{
				{2, 4, 0, 0},
				{0, 2048, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			winValue: 2048,
			expected: true,
		},
		{
			name: "beyond the winning value still wins",
			grid: [][]int{
				{4096, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			winValue: 2048,
			expected: true,
		},
		{
			name: "below the winning value",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 0},
				{0, 0, 0, 0},
			},
			winValue: 2048,
			expected: false,
		},
		{
			name:     "empty board",
			grid:     [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			winValue: 2048,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasWinningTile(tilesOf(tt.grid), tt.winValue); got != tt.expected {
				t.Errorf("hasWinningTile = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNoMovesLeft(t *testing.T) {
	tests := []struct {
		name     string
		grid     [][]int
		expected bool
	}{
		{
			name: "empty cell always leaves a move",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{2, 4, 8, 16},
			},
			expected: false,
		},
		{
			name: "full board with horizontal merge",
			grid: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{4, 8, 16, 32},
			},
			expected: false,
		},
		{
			name: "full board with vertical merge",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{32, 1024, 2048, 4096},
				{4, 8, 16, 64},
			},
			expected: false,
		},
		{
			name: "checkerboard is dead",
			grid: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: true,
		},
		{
			name: "full ladder is dead",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := noMovesLeft(tilesOf(tt.grid), 4); got != tt.expected {
				t.Errorf("noMovesLeft = %v, want %v", got, tt.expected)
			}
		})
	}
}
