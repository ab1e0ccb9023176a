// Package config provides YAML-based variant loading for the game.
// A variant is a named rule set: board size, winning tile and spawn
// behavior. Players pick one by ID and can override the built-in list
// with their own variants file.
package config

import (
	"github.com/vovakirdan/tui2048/internal/t2048"
)

// DefaultVariantID is the variant used when the player names none.
const DefaultVariantID = "classic"

// Variant is a named rule set a game can be started with.
type Variant struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Size         int    `yaml:"size"`
	WinValue     int    `yaml:"win_value"`
	SpawnPerMove int    `yaml:"spawn_per_move"`
	StartTiles   int    `yaml:"start_tiles"`
}

// Rules converts the variant into the rule set the engine consumes.
func (v Variant) Rules() t2048.Rules {
	return t2048.Rules{
		Size:         v.Size,
		WinValue:     v.WinValue,
		SpawnPerMove: v.SpawnPerMove,
		StartTiles:   v.StartTiles,
	}
}

// Playable reports whether the variant carries a rule set a game can
// actually run on.
func (v Variant) Playable() bool {
	return v.ID != "" && v.Size >= 2 && v.WinValue >= 4 && v.SpawnPerMove >= 1 && v.StartTiles >= 1
}

// VariantsFile is the on-disk shape of a variants configuration.
type VariantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// ByID finds a variant by its identifier.
func ByID(variants []Variant, id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
