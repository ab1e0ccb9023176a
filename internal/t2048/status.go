package t2048

// hasWinningTile reports whether any tile has reached the winning value.
func hasWinningTile(tiles []Tile, winValue int) bool {
	for _, t := range tiles {
		if t.Value >= winValue {
			return true
		}
	}
	return false
}

// noMovesLeft reports whether the position is dead: every cell occupied and
// no orthogonally adjacent pair of equal values. A board with an empty cell
// always has a move, so it returns false before scanning neighbors.
func noMovesLeft(tiles []Tile, size int) bool {
	if len(tiles) < size*size {
		return false
	}

	matrix := tilesToMatrix(tiles, size)
	for r := range size {
		for c := range size {
			t := matrix[r][c]
			if t == nil {
				return false
			}
			// Checking right and bottom neighbors covers every pair.
			if c+1 < size && matrix[r][c+1] != nil && matrix[r][c+1].Value == t.Value {
				return false
			}
			if r+1 < size && matrix[r+1][c] != nil && matrix[r+1][c].Value == t.Value {
				return false
			}
		}
	}

	return true
}
