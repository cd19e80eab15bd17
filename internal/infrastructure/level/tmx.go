package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TileLayerName is the tile layer read from Tiled maps
const TileLayerName = "tiles"

// LoadTMX converts a Tiled map into a tile code grid.
// A tile's code is its tileset-local ID plus one unless the tileset tile
// carries an integer "code" property.
func LoadTMX(fsys fs.FS, path string) ([][]int, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", path)
	}

	layer := m.Layers[0]
	for _, l := range m.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
	}

	grid := make([][]int, m.Height)
	for y := 0; y < m.Height; y++ {
		grid[y] = make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			grid[y][x] = tileCode(tile)
		}
	}
	return grid, nil
}

func tileCode(tile *tiled.LayerTile) int {
	code := int(tile.ID) + 1
	if tile.Tileset == nil {
		return code
	}
	if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tt.Properties.Get("code") != nil {
		return tt.Properties.GetInt("code")
	}
	return code
}
