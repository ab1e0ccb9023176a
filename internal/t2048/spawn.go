package t2048

// spawnTiles adds up to count new tiles on empty cells and returns the
// extended tile list. Every spawned tile consumes exactly two draws from
// random: the first picks a cell from the remaining empties, the second
// picks the value (2 with probability 0.9, otherwise 4). A full board
// stops the loop early without consuming any draws.
func spawnTiles(tiles []Tile, size, count int, random func() float64) []Tile {
	empty := emptyPositions(tiles, size)

	result := make([]Tile, len(tiles), len(tiles)+count)
	copy(result, tiles)

	for range count {
		if len(empty) == 0 {
			return result
		}

		idx := int(random() * float64(len(empty)))
		pos := empty[idx]
		empty = append(empty[:idx], empty[idx+1:]...)

		value := 2
		if random() >= 0.9 {
			value = 4
		}

		result = append(result, Tile{Pos: pos, Value: value, State: Spawned{}})
	}

	return result
}

// emptyPositions lists the unoccupied cells in row-major order.
func emptyPositions(tiles []Tile, size int) []Position {
	occupied := make(map[Position]bool, len(tiles))
	for _, t := range tiles {
		occupied[t.Pos] = true
	}

	var empty []Position
	for r := range size {
		for c := range size {
			pos := Position{Row: r, Col: c}
			if !occupied[pos] {
				empty = append(empty, pos)
			}
		}
	}
	return empty
}
