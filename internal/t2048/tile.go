// Package t2048 implements the rules engine of the 2048 sliding-tile puzzle:
// the board model, the slide/merge algorithm, tile spawning, and the win/loss
// state machine. The package does no rendering and no I/O, so a game can be
// replayed deterministically from a seed.
package t2048

// Position identifies a board cell. Row and Col are zero-based.
type Position struct {
	Row int
	Col int
}

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// TileState records what happened to a tile during the most recent move.
// It is a closed set: Static, Moved, Merged and Spawned are the only
// implementations. The slide algorithm uses the state to enforce the
// one-merge-per-turn rule; renderers switch on it to pick accents.
type TileState interface {
	isTileState()
}

// Static marks a tile that did not move this turn.
type Static struct{}

// Moved marks a tile that slid to a new cell without merging.
// From is its pre-move position.
type Moved struct {
	From Position
}

// Merged marks a tile produced by combining two equal tiles. From1 and From2
// are the pre-move positions of the two sources, and Value is the pre-merge
// value of each source, so the tile's own value is always twice Value.
type Merged struct {
	From1 Position
	From2 Position
	Value int
}

// Spawned marks a tile created after the slide resolved.
type Spawned struct{}

func (Static) isTileState()  {}
func (Moved) isTileState()   {}
func (Merged) isTileState()  {}
func (Spawned) isTileState() {}

// Tile is a single numbered tile. Value is a positive power of two.
// At most one tile occupies any position, and the whole tile list is
// replaced, never mutated in place, on every move.
type Tile struct {
	Pos   Position
	Value int
	State TileState
}
