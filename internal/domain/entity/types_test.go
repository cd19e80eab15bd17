package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWorld() *World {
	// 4x3 grid, 40px tiles:
	//   . 1 . 2
	//   . . 7 .
	//   2 2 2 1
	return NewWorld([][]int{
		{0, 1, 0, 2},
		{0, 0, 7, 0},
		{2, 2, 2, 1},
	}, 40)
}

func TestTileKindFromCode(t *testing.T) {
	tests := []struct {
		code   int
		want   TileKind
		wantOK bool
	}{
		{0, TileEmpty, false},
		{1, TileDirt, true},
		{2, TileGrass, true},
		{3, TileEmpty, false},
		{-1, TileEmpty, false},
	}

	for _, tt := range tests {
		kind, ok := TileKindFromCode(tt.code)
		assert.Equal(t, tt.want, kind, "code %d", tt.code)
		assert.Equal(t, tt.wantOK, ok, "code %d", tt.code)
	}
}

func TestTileKind_String(t *testing.T) {
	assert.Equal(t, "empty", TileEmpty.String())
	assert.Equal(t, "dirt", TileDirt.String())
	assert.Equal(t, "grass", TileGrass.String())
	assert.Equal(t, "unknown", TileKind(42).String())
}

func TestNewWorld_PlacesTilesOnGrid(t *testing.T) {
	w := createTestWorld()

	want := []Tile{
		{Kind: TileDirt, Rect: Rect{X: 40, Y: 0, W: 40, H: 40}},
		{Kind: TileGrass, Rect: Rect{X: 120, Y: 0, W: 40, H: 40}},
		{Kind: TileGrass, Rect: Rect{X: 0, Y: 80, W: 40, H: 40}},
		{Kind: TileGrass, Rect: Rect{X: 40, Y: 80, W: 40, H: 40}},
		{Kind: TileGrass, Rect: Rect{X: 80, Y: 80, W: 40, H: 40}},
		{Kind: TileDirt, Rect: Rect{X: 120, Y: 80, W: 40, H: 40}},
	}
	assert.Equal(t, want, w.Tiles())

	cols, rows := w.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 40, w.TileSize())
}

func TestNewWorld_EveryCodedCellHasOneTile(t *testing.T) {
	grid := [][]int{
		{1, 2, 0, 1, 2, 0, 5},
		{0, 0, 0, 0, 0, 0, 0},
		{2, 1, 2, 1, 2, 1, 2},
		{0, 9, 0, 1},
	}
	const size = 16
	w := NewWorld(grid, size)

	count := 0
	for r, row := range grid {
		for c, code := range row {
			kind, ok := TileKindFromCode(code)
			if !ok {
				continue
			}
			count++
			found := 0
			for _, tile := range w.Tiles() {
				if tile.Rect == (Rect{X: c * size, Y: r * size, W: size, H: size}) {
					found++
					assert.Equal(t, kind, tile.Kind)
				}
			}
			assert.Equal(t, 1, found, "cell (%d,%d)", r, c)
		}
	}
	assert.Len(t, w.Tiles(), count)
}

func TestNewWorld_Empty(t *testing.T) {
	w := NewWorld(nil, 40)

	assert.Empty(t, w.Tiles())
	assert.Empty(t, w.CollidingTiles(Rect{X: 0, Y: 0, W: 600, H: 600}))
	assert.False(t, w.Blocked(Rect{X: 0, Y: 0, W: 600, H: 600}))
}

func TestWorld_CollidingTiles(t *testing.T) {
	w := createTestWorld()

	tests := []struct {
		name  string
		probe Rect
		want  []Rect
	}{
		{
			name:  "open air",
			probe: Rect{X: 0, Y: 0, W: 40, H: 40},
			want:  nil,
		},
		{
			name:  "overlapping a single tile",
			probe: Rect{X: 10, Y: 10, W: 60, H: 70},
			want:  []Rect{{X: 40, Y: 0, W: 40, H: 40}},
		},
		{
			name:  "sunk one pixel into the floor",
			probe: Rect{X: 0, Y: 41, W: 40, H: 40},
			want:  []Rect{{X: 0, Y: 80, W: 40, H: 40}},
		},
		{
			name:  "spanning two floor tiles in grid order",
			probe: Rect{X: 30, Y: 75, W: 20, H: 10},
			want:  []Rect{{X: 0, Y: 80, W: 40, H: 40}, {X: 40, Y: 80, W: 40, H: 40}},
		},
		{
			name:  "ignored code leaves a hole",
			probe: Rect{X: 85, Y: 45, W: 30, H: 30},
			want:  nil,
		},
		{
			name:  "partly outside the world",
			probe: Rect{X: -20, Y: 70, W: 30, H: 30},
			want:  []Rect{{X: 0, Y: 80, W: 40, H: 40}},
		},
		{
			name:  "whole world",
			probe: Rect{X: -100, Y: -100, W: 1000, H: 1000},
			want: []Rect{
				{X: 40, Y: 0, W: 40, H: 40},
				{X: 120, Y: 0, W: 40, H: 40},
				{X: 0, Y: 80, W: 40, H: 40},
				{X: 40, Y: 80, W: 40, H: 40},
				{X: 80, Y: 80, W: 40, H: 40},
				{X: 120, Y: 80, W: 40, H: 40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := w.CollidingTiles(tt.probe)
			var got []Rect
			for _, h := range hits {
				got = append(got, h.Rect)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, w.Blocked(tt.probe))
		})
	}
}

func TestWorld_CollidingTilesMatchesBruteForce(t *testing.T) {
	w := NewWorld([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 2, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 2, 2, 2, 1},
	}, 40)

	for y := -50; y < 200; y += 7 {
		for x := -50; x < 230; x += 11 {
			probe := Rect{X: x, Y: y, W: 60, H: 70}

			var want []Tile
			for _, tile := range w.Tiles() {
				if tile.Rect.Intersects(probe) {
					want = append(want, tile)
				}
			}

			got := w.CollidingTiles(probe)
			require.Len(t, got, len(want), "probe %+v", probe)
			for i := range want {
				assert.Equal(t, want[i], got[i], "probe %+v", probe)
			}
		}
	}
}
