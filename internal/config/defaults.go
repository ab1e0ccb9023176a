package config

import (
	_ "embed"
)

//go:embed defaults/variants.yaml
var defaultVariantsYAML []byte

// DefaultVariants returns the built-in rule sets, used when no variants
// file can be found or parsed.
func DefaultVariants() []Variant {
	return []Variant{
		{
			ID:           "classic",
			Name:         "Classic",
			Description:  "The original 4x4 board, first to 2048 wins",
			Size:         4,
			WinValue:     2048,
			SpawnPerMove: 1,
			StartTiles:   2,
		},
		{
			ID:           "big",
			Name:         "Big Board",
			Description:  "A roomy 5x5 board for long games",
			Size:         5,
			WinValue:     2048,
			SpawnPerMove: 1,
			StartTiles:   2,
		},
		{
			ID:           "twin",
			Name:         "Twin Spawn",
			Description:  "Two tiles drop after every move",
			Size:         4,
			WinValue:     2048,
			SpawnPerMove: 2,
			StartTiles:   2,
		},
		{
			ID:           "mini",
			Name:         "Mini",
			Description:  "A tight 3x3 board, 1024 to win",
			Size:         3,
			WinValue:     1024,
			SpawnPerMove: 1,
			StartTiles:   2,
		},
	}
}
