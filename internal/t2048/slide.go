package t2048

// slideRow compacts one row toward index 0, merging adjacent equal pairs.
// Input tiles keep their pre-move Pos untouched; every output tile gets a
// fresh state describing how it arrived. Merging is strictly pairwise and
// non-chaining: a tile written as Merged never absorbs another tile in the
// same pass, so [2,2,2,2] becomes [4,4,_,_] and never [8,_,_,_].
func slideRow(row []*Tile) []*Tile {
	result := make([]*Tile, len(row))
	writePos := 0

	for i, t := range row {
		if t == nil {
			continue
		}

		if writePos > 0 {
			last := result[writePos-1]
			if _, alreadyMerged := last.State.(Merged); !alreadyMerged && last.Value == t.Value {
				result[writePos-1] = &Tile{
					Pos:   last.Pos,
					Value: t.Value * 2,
					State: Merged{From1: last.Pos, From2: t.Pos, Value: t.Value},
				}
				continue
			}
		}

		out := &Tile{Pos: t.Pos, Value: t.Value}
		if i == writePos {
			out.State = Static{}
		} else {
			out.State = Moved{From: t.Pos}
		}
		result[writePos] = out
		writePos++
	}

	return result
}

// slideLeft applies the row algorithm to every row of the matrix.
func slideLeft(matrix [][]*Tile) [][]*Tile {
	result := make([][]*Tile, len(matrix))
	for r := range matrix {
		result[r] = slideRow(matrix[r])
	}
	return result
}

// slide resolves a move in the given direction. Right reduces to left by
// reversing each row, up and down by transposing; the transforms are their
// own inverses, so the same sequence restores board orientation. Positions
// are resynchronized from the final grid coordinates.
func slide(tiles []Tile, size int, dir Direction) []Tile {
	matrix := tilesToMatrix(tiles, size)

	switch dir {
	case DirLeft:
		matrix = slideLeft(matrix)
	case DirRight:
		matrix = reverseRows(slideLeft(reverseRows(matrix)))
	case DirUp:
		matrix = transpose(slideLeft(transpose(matrix)))
	case DirDown:
		matrix = transpose(reverseRows(slideLeft(reverseRows(transpose(matrix)))))
	}

	return matrixToTiles(matrix)
}

// allStatic reports whether a slide left the board untouched.
func allStatic(tiles []Tile) bool {
	for _, t := range tiles {
		if _, ok := t.State.(Static); !ok {
			return false
		}
	}
	return true
}
