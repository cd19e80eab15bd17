package system

import (
	"log"

	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
	"github.com/younwookim/voiceplatform/internal/infrastructure/level"
)

// LoadWorld builds the tile world of a resolved level
func LoadWorld(src level.Source, cfg *config.WorldConfig) *entity.World {
	world := entity.NewWorld(src.Grid, cfg.TileSize)
	cols, rows := world.Size()
	log.Printf("Loaded level %d (%s): %d tiles, %dx%d grid", src.Level, src.Kind, len(world.Tiles()), cols, rows)
	return world
}
