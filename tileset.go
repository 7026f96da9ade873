package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within a tile sheet, in pixels.
// Stored and passed by value, no pointer.
type TextureRegion struct {
	X, Y          int
	Width, Height int
}

// SliceSheet cuts a uniform tile sheet into regions, row-major. Every
// region is tileSize x tileSize; partial edge tiles are ignored.
func SliceSheet(sheetW, sheetH, tileSize int) []TextureRegion {
	if tileSize < 1 {
		return nil
	}
	cols := sheetW / tileSize
	rows := sheetH / tileSize
	regions := make([]TextureRegion, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			regions = append(regions, TextureRegion{
				X:      c * tileSize,
				Y:      r * tileSize,
				Width:  tileSize,
				Height: tileSize,
			})
		}
	}
	return regions
}

// SpriteSet maps each tile layer to its sprite table. Tile types index
// the table directly: world.Tile(layer, x, y) == 3 draws Tables[layer][3].
//
// A SpriteSet must pass Validate before a Board will accept it; after
// that, an out-of-range layer/type pair at draw time is a fatal
// configuration error (world data referencing sprites that don't
// exist), not a recoverable condition.
type SpriteSet struct {
	// Sheet is the atlas image all regions index into. May be nil for
	// boards that never draw (headless tests).
	Sheet *ebiten.Image
	// Tables holds one region table per layer.
	Tables [NumLayers][]TextureRegion
}

// SetLayer assigns the sprite table for one layer.
func (s *SpriteSet) SetLayer(layer Layer, regions []TextureRegion) {
	s.Tables[layer] = regions
}

// Validate checks that every layer has a non-empty sprite table.
// Called once at board construction, never per frame.
func (s *SpriteSet) Validate() error {
	if s == nil {
		return fmt.Errorf("rowan: nil sprite set")
	}
	for l := Layer(0); l < NumLayers; l++ {
		if len(s.Tables[l]) == 0 {
			return fmt.Errorf("rowan: sprite set: layer %s has no sprite table", l)
		}
	}
	return nil
}

// region resolves a layer/type pair, panicking on out-of-range indices.
func (s *SpriteSet) region(layer Layer, tileType int) TextureRegion {
	table := s.Tables[layer]
	if tileType < 0 || tileType >= len(table) {
		panic(fmt.Sprintf("rowan: no sprite for layer %s tile type %d (table size %d)",
			layer, tileType, len(table)))
	}
	return table[tileType]
}
