// Package worldgen demonstrates reproducible hierarchical generation
// on top of the rng package: an unbounded tile map where every tile is
// drawn from a parameterized split of one world generator. The same
// seed always yields the same world, and any tile can be generated in
// isolation without visiting its neighbours.
package worldgen

import (
	"encoding/binary"

	"github.com/lox/splitrand/rng"
)

// Tile is a terrain kind.
type Tile uint8

const (
	Water Tile = iota
	Sand
	Grass
	Forest
	Rock
)

// Rune returns the map glyph for the tile.
func (t Tile) Rune() rune {
	switch t {
	case Water:
		return '~'
	case Sand:
		return '.'
	case Grass:
		return '"'
	case Forest:
		return '♠'
	default:
		return '^'
	}
}

func (t Tile) String() string {
	switch t {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Forest:
		return "forest"
	default:
		return "rock"
	}
}

// World derives tiles from a single seed generator. TileAt never
// mutates the generator, so a World is safe to share between
// goroutines that only read tiles.
type World struct {
	gen *rng.Generator
}

// New creates a world from a seed buffer.
func New(seed []byte) *World {
	return &World{gen: rng.New(seed)}
}

// FromGenerator creates a world over an existing generator, for
// callers that derive the world itself from a larger session.
func FromGenerator(g *rng.Generator) *World {
	return &World{gen: g}
}

// tileKey packs coordinates into the fixed parameter layout hashed by
// SplitParams: two little-endian int32 words. The layout is pinned;
// changing it re-rolls every world.
func tileKey(x, y int32) []byte {
	var key [8]byte
	binary.LittleEndian.PutUint32(key[0:4], uint32(x))
	binary.LittleEndian.PutUint32(key[4:8], uint32(y))
	return key[:]
}

// TileAt returns the tile at (x, y). Each tile gets its own generator
// via a parameterized split keyed on the coordinates, then draws an
// elevation and a moisture value to pick the terrain.
func (w *World) TileAt(x, y int32) Tile {
	g := w.gen.SplitParams(tileKey(x, y))
	elevation := g.Below(100)
	moisture := g.Below(100)

	switch {
	case elevation < 30:
		return Water
	case elevation < 40:
		return Sand
	case elevation < 80:
		if moisture >= 50 {
			return Forest
		}
		return Grass
	default:
		return Rock
	}
}

// Render returns the rows of a width x height window of the world with
// its top-left corner at (x, y).
func (w *World) Render(x, y int32, width, height int) []string {
	rows := make([]string, 0, height)
	for dy := 0; dy < height; dy++ {
		row := make([]rune, 0, width)
		for dx := 0; dx < width; dx++ {
			row = append(row, w.TileAt(x+int32(dx), y+int32(dy)).Rune())
		}
		rows = append(rows, string(row))
	}
	return rows
}
