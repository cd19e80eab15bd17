package entity

import (
	"slices"

	"github.com/solarlune/resolv"
)

// TileKind represents the visual type of a tile
type TileKind int

const (
	TileEmpty TileKind = iota
	TileDirt
	TileGrass
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileDirt:
		return "dirt"
	case TileGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// TileKindFromCode maps a level grid code to a tile kind.
// Only 1 (dirt) and 2 (grass) place a tile; every other code is skipped.
func TileKindFromCode(code int) (TileKind, bool) {
	switch code {
	case 1:
		return TileDirt, true
	case 2:
		return TileGrass, true
	default:
		return TileEmpty, false
	}
}

// Tile is a static collision cell. Tiles are never mutated after world load.
type Tile struct {
	Kind TileKind
	Rect Rect
}

// World holds the ordered tile list of one level
type World struct {
	tiles    []Tile
	tileSize int
	cols     int
	rows     int

	// space indexes tiles by cell for broad-phase lookups
	space *resolv.Space
}

// NewWorld builds the tile list from a row-major grid of tile codes.
// Tile order follows the grid: row by row, left to right.
func NewWorld(grid [][]int, tileSize int) *World {
	w := &World{
		tileSize: tileSize,
		rows:     len(grid),
	}

	for row, codes := range grid {
		if len(codes) > w.cols {
			w.cols = len(codes)
		}
		for col, code := range codes {
			kind, ok := TileKindFromCode(code)
			if !ok {
				continue
			}
			w.tiles = append(w.tiles, Tile{
				Kind: kind,
				Rect: Rect{X: col * tileSize, Y: row * tileSize, W: tileSize, H: tileSize},
			})
		}
	}

	if tileSize > 0 && w.cols > 0 && w.rows > 0 {
		w.space = resolv.NewSpace(w.cols*tileSize, w.rows*tileSize, tileSize, tileSize)
		for i, t := range w.tiles {
			obj := resolv.NewObject(float64(t.Rect.X), float64(t.Rect.Y), float64(t.Rect.W), float64(t.Rect.H), "solid", t.Kind.String())
			obj.Data = i
			w.space.Add(obj)
		}
	}

	return w
}

// Tiles returns the tiles in grid order
func (w *World) Tiles() []Tile {
	return w.tiles
}

// TileSize returns the tile edge length in pixels
func (w *World) TileSize() int {
	return w.tileSize
}

// Size returns the grid dimensions in tiles
func (w *World) Size() (cols, rows int) {
	return w.cols, w.rows
}

// CollidingTiles returns every tile whose rectangle intersects r, in grid order.
func (w *World) CollidingTiles(r Rect) []Tile {
	if w.space == nil || r.W <= 0 || r.H <= 0 {
		return nil
	}

	cx, cy := w.space.WorldToSpace(float64(r.X), float64(r.Y))
	ex, ey := w.space.WorldToSpace(float64(r.X+r.W-1), float64(r.Y+r.H-1))

	// Tiles are grid aligned so each one lives in exactly one cell,
	// but the seen set keeps the result free of duplicates regardless.
	seen := make(map[int]struct{})
	var hits []int
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := w.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				idx, ok := obj.Data.(int)
				if !ok {
					continue
				}
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				if w.tiles[idx].Rect.Intersects(r) {
					hits = append(hits, idx)
				}
			}
		}
	}

	slices.Sort(hits)
	out := make([]Tile, 0, len(hits))
	for _, idx := range hits {
		out = append(out, w.tiles[idx])
	}
	return out
}

// Blocked reports whether r intersects any tile
func (w *World) Blocked(r Rect) bool {
	return len(w.CollidingTiles(r)) > 0
}
