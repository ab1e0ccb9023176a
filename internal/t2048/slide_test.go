package t2048

import (
	"reflect"
	"testing"
)

// rowOf builds a slide input row from values, 0 meaning empty. Tiles sit on
// row 0 at their index column.
func rowOf(values ...int) []*Tile {
	row := make([]*Tile, len(values))
	for i, v := range values {
		if v == 0 {
			continue
		}
		row[i] = &Tile{Pos: Position{Row: 0, Col: i}, Value: v, State: Static{}}
	}
	return row
}

// rowValues flattens a row back to plain values, 0 meaning empty.
func rowValues(row []*Tile) []int {
	values := make([]int, len(row))
	for i, t := range row {
		if t != nil {
			values[i] = t.Value
		}
	}
	return values
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		delta    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			delta:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			delta:    8,
		},
		{
			name:     "merge result never absorbs the next tile",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			delta:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			delta:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			delta:    0,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			delta:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slideRow(rowOf(tt.input...))

			if got := rowValues(result); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, got, tt.expected)
			}

			delta := 0
			for _, tile := range result {
				if tile == nil {
					continue
				}
				if st, ok := tile.State.(Merged); ok {
					delta += st.Value * 2
				}
			}
			if delta != tt.delta {
				t.Errorf("slideRow(%v) merge delta = %d, want %d", tt.input, delta, tt.delta)
			}
		})
	}
}

func TestSlideRowProvenance(t *testing.T) {
	t.Run("merge across the full row", func(t *testing.T) {
		result := slideRow(rowOf(2, 0, 0, 2))

		merged := result[0]
		if merged == nil || merged.Value != 4 {
			t.Fatalf("expected a 4 tile at column 0, got %+v", merged)
		}
		st, ok := merged.State.(Merged)
		if !ok {
			t.Fatalf("expected Merged state, got %T", merged.State)
		}
		if st.From1 != (Position{Row: 0, Col: 0}) || st.From2 != (Position{Row: 0, Col: 3}) {
			t.Errorf("merge sources = %v, %v, want (0,0), (0,3)", st.From1, st.From2)
		}
		if st.Value != 2 {
			t.Errorf("pre-merge value = %d, want 2", st.Value)
		}
	})

	t.Run("merge then trailing move", func(t *testing.T) {
		result := slideRow(rowOf(2, 2, 2, 0))

		st, ok := result[0].State.(Merged)
		if !ok {
			t.Fatalf("column 0: expected Merged, got %T", result[0].State)
		}
		if st.From1 != (Position{Row: 0, Col: 0}) || st.From2 != (Position{Row: 0, Col: 1}) {
			t.Errorf("merge sources = %v, %v, want (0,0), (0,1)", st.From1, st.From2)
		}

		moved, ok := result[1].State.(Moved)
		if !ok {
			t.Fatalf("column 1: expected Moved, got %T", result[1].State)
		}
		if moved.From != (Position{Row: 0, Col: 2}) {
			t.Errorf("moved from %v, want (0,2)", moved.From)
		}
		if result[1].Value != 2 {
			t.Errorf("column 1 value = %d, want 2", result[1].Value)
		}
	})

	t.Run("stationary tiles stay static", func(t *testing.T) {
		result := slideRow(rowOf(2, 4, 0, 0))

		for col := range 2 {
			if _, ok := result[col].State.(Static); !ok {
				t.Errorf("column %d: expected Static, got %T", col, result[col].State)
			}
		}
	})
}

func TestSlideDirections(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		name     string
		dir      Direction
		expected [][]int
	}{
		{
			name: "left",
			dir:  DirLeft,
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			expected: [][]int{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slide(tilesOf(board), 4, tt.dir)

			if got := gridOf(result, 4); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("slide %s: got\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestSlidePositionsInBounds(t *testing.T) {
	tiles := tilesOf([][]int{
		{2, 0, 2, 0},
		{0, 4, 0, 4},
		{8, 0, 0, 8},
		{0, 2, 4, 0},
	})

	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		result := slide(tiles, 4, dir)

		seen := make(map[Position]bool)
		for _, tile := range result {
			if tile.Pos.Row < 0 || tile.Pos.Row >= 4 || tile.Pos.Col < 0 || tile.Pos.Col >= 4 {
				t.Errorf("%v: tile out of bounds at %v", dir, tile.Pos)
			}
			if seen[tile.Pos] {
				t.Errorf("%v: two tiles at %v", dir, tile.Pos)
			}
			seen[tile.Pos] = true
		}
	}
}

func TestSlideMovedFromKeepsBoardCoordinates(t *testing.T) {
	// Sliding up moves (3,1) to (0,1); the Moved state must carry the
	// original board position, not a transformed one.
	tiles := []Tile{{Pos: Position{Row: 3, Col: 1}, Value: 2, State: Static{}}}

	result := slide(tiles, 4, DirUp)

	if len(result) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(result))
	}
	if result[0].Pos != (Position{Row: 0, Col: 1}) {
		t.Errorf("position = %v, want (0,1)", result[0].Pos)
	}
	moved, ok := result[0].State.(Moved)
	if !ok {
		t.Fatalf("expected Moved, got %T", result[0].State)
	}
	if moved.From != (Position{Row: 3, Col: 1}) {
		t.Errorf("moved from %v, want (3,1)", moved.From)
	}
}

func TestAllStatic(t *testing.T) {
	blocked := slide(tilesOf([][]int{
		{2, 4, 0, 0},
		{8, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}), 4, DirLeft)
	if !allStatic(blocked) {
		t.Error("left-packed unequal rows should slide to all-static")
	}

	moved := slide(tilesOf([][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}), 4, DirLeft)
	if allStatic(moved) {
		t.Error("a tile that slid should not report all-static")
	}
}
