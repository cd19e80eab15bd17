package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
	"github.com/younwookim/voiceplatform/internal/infrastructure/level"
)

func TestLoadWorld(t *testing.T) {
	src := level.Source{
		Kind:  level.KindProvided,
		Level: 1,
		Grid: [][]int{
			{1, 0, 2},
			{0, 0, 0},
		},
	}

	world := LoadWorld(src, &config.WorldConfig{TileSize: 40})

	require.NotNil(t, world)
	assert.Equal(t, 40, world.TileSize())
	assert.Equal(t, []entity.Tile{
		{Kind: entity.TileDirt, Rect: entity.Rect{X: 0, Y: 0, W: 40, H: 40}},
		{Kind: entity.TileGrass, Rect: entity.Rect{X: 80, Y: 0, W: 40, H: 40}},
	}, world.Tiles())
}

func TestLoadWorld_BundledLevel(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	levelCfg, err := loader.LoadLevel(1)
	require.NoError(t, err)

	world := LoadWorld(level.Resolve(nil, 1, levelCfg.Grid), &config.WorldConfig{TileSize: 40})

	for _, tile := range world.Tiles() {
		assert.Zero(t, tile.Rect.X%40)
		assert.Zero(t, tile.Rect.Y%40)
		assert.Less(t, tile.Rect.Bottom(), 601)
		assert.Less(t, tile.Rect.Right(), 601)
	}
}
