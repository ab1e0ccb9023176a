package t2048

// Rules holds the immutable parameters of a game variant.
type Rules struct {
	Size         int // board edge length
	WinValue     int // tile value that triggers the won state
	SpawnPerMove int // tiles spawned after each effective move
	StartTiles   int // tiles spawned by NewGame
}

// DefaultRules returns the classic game: a 4x4 board, win at 2048, one
// spawn per move and two starting tiles.
func DefaultRules() Rules {
	return Rules{Size: 4, WinValue: 2048, SpawnPerMove: 1, StartTiles: 2}
}

// NewGame returns a fresh model with the starting tiles spawned.
// Callers that persist a best score seed BestScore afterwards.
func (r Rules) NewGame(random func() float64) Model {
	return Model{
		Tiles:  spawnTiles(nil, r.Size, r.StartTiles, random),
		Status: StatusPlaying,
	}
}

// Move resolves one turn: slide the board in dir, score the merges, check
// for a win, spawn replacement tiles and check for a dead position. It
// returns nil when the move is rejected or changes nothing; the input model
// is never modified either way.
func (r Rules) Move(m Model, dir Direction, random func() float64) *Model {
	if m.Status == StatusWon || m.Status == StatusOver {
		return nil
	}

	slid := slide(m.Tiles, r.Size, dir)

	if allStatic(slid) {
		// The direction is blocked. Only a full board with no adjacent
		// equal pair is actually dead; on any other board the move is
		// simply a no-op.
		if noMovesLeft(m.Tiles, r.Size) {
			next := m.clone()
			next.Status = StatusOver
			return &next
		}
		return nil
	}

	next := m.clone()
	next.Tiles = slid
	next.ScoreDeltas = append(next.ScoreDeltas, mergeDelta(slid))
	if score := next.Score(); score > next.BestScore {
		next.BestScore = score
	}

	// Once the player has continued past a win, higher tiles never
	// re-trigger the won state.
	if next.Status == StatusPlaying && hasWinningTile(slid, r.WinValue) {
		// The winning move ends the turn immediately: no spawn.
		next.Status = StatusWon
		return &next
	}

	next.Tiles = spawnTiles(slid, r.Size, r.SpawnPerMove, random)
	if noMovesLeft(next.Tiles, r.Size) {
		next.Status = StatusOver
	}

	return &next
}

// mergeDelta sums the points this move's merges scored: each merge is worth
// the value of the tile it produced.
func mergeDelta(tiles []Tile) int {
	delta := 0
	for _, t := range tiles {
		if st, ok := t.State.(Merged); ok {
			delta += st.Value * 2
		}
	}
	return delta
}

// PrepareMove returns a copy of the model with every tile state reset to
// Static, or nil when the status blocks further moves. UI layers call it
// once the previous move has been presented, so stale Moved and Merged
// accents do not leak into the next turn.
func PrepareMove(m Model) *Model {
	if m.Status == StatusWon || m.Status == StatusOver {
		return nil
	}

	next := m.clone()
	for i := range next.Tiles {
		next.Tiles[i].State = Static{}
	}
	return &next
}

// KeepPlaying acknowledges a win and unlocks further moves. It returns nil
// unless the game is in the won state.
func KeepPlaying(m Model) *Model {
	if m.Status != StatusWon {
		return nil
	}

	next := m.clone()
	next.Status = StatusContinue
	return &next
}
