package t2048

// tilesToMatrix projects the sparse tile list onto a dense size-by-size grid.
// nil marks an empty cell. A second tile claiming an occupied cell would
// violate the board invariant and is ignored.
func tilesToMatrix(tiles []Tile, size int) [][]*Tile {
	matrix := make([][]*Tile, size)
	for r := range matrix {
		matrix[r] = make([]*Tile, size)
	}

	for _, t := range tiles {
		if matrix[t.Pos.Row][t.Pos.Col] != nil {
			continue
		}
		matrix[t.Pos.Row][t.Pos.Col] = &t
	}

	return matrix
}

// matrixToTiles collects the occupied cells in row-major order, rewriting
// each tile's Pos from its cell coordinates. The slide step works purely
// positionally, so this is where positions are synchronized back.
func matrixToTiles(matrix [][]*Tile) []Tile {
	var tiles []Tile
	for r := range matrix {
		for c := range matrix[r] {
			if matrix[r][c] == nil {
				continue
			}
			t := *matrix[r][c]
			t.Pos = Position{Row: r, Col: c}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// transpose mirrors the grid across its main diagonal. Applying it twice
// restores the original grid.
func transpose(matrix [][]*Tile) [][]*Tile {
	size := len(matrix)
	result := make([][]*Tile, size)
	for r := range result {
		result[r] = make([]*Tile, size)
		for c := range result[r] {
			result[r][c] = matrix[c][r]
		}
	}
	return result
}

// reverseRows mirrors every row left to right. Applying it twice restores
// the original grid.
func reverseRows(matrix [][]*Tile) [][]*Tile {
	size := len(matrix)
	result := make([][]*Tile, size)
	for r := range result {
		result[r] = make([]*Tile, size)
		for c := range result[r] {
			result[r][c] = matrix[r][size-1-c]
		}
	}
	return result
}
