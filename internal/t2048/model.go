package t2048

// Status represents the game lifecycle state.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusContinue Status = "continue"
	StatusOver     Status = "over"
)

// Model is a complete game position. The caller owns it; the engine never
// retains references across calls, and every move returns a fresh Model
// built from copied slices.
type Model struct {
	// Tiles is the sparse board: one entry per occupied cell.
	Tiles []Tile

	// ScoreDeltas holds one non-negative entry per effective move, the
	// points its merges scored. The total score is their sum.
	ScoreDeltas []int

	// Status is the current lifecycle state (see the Status constants).
	Status Status

	// BestScore is the running maximum of the total score. Callers that
	// persist it across games seed it after NewGame.
	BestScore int
}

// Score returns the cumulative score: the sum of every per-move delta.
func (m Model) Score() int {
	total := 0
	for _, d := range m.ScoreDeltas {
		total += d
	}
	return total
}

// clone returns a copy whose slices do not alias the receiver's.
func (m Model) clone() Model {
	next := m
	next.Tiles = append([]Tile(nil), m.Tiles...)
	next.ScoreDeltas = append([]int(nil), m.ScoreDeltas...)
	return next
}

// MaxTile returns the highest tile value on the board, 0 for an empty board.
func MaxTile(tiles []Tile) int {
	maxVal := 0
	for _, t := range tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
