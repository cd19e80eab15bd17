// Package assets loads the game's PNG artwork and prepares it for drawing.
//
// Loading happens in two stages. Load decodes and scales everything into
// plain image.Image values, generating a placeholder for any file that is
// missing or unreadable. NewSet then uploads those images to the GPU as
// ebiten images.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/younwookim/voiceplatform/internal/domain/entity"
)

// File names inside the asset directory
const (
	BackgroundFile = "bg.png"
	SunFile        = "sun.png"
	DirtFile       = "dirt.png"
	GrassFile      = "grass.png"
)

// PlayerFrameFile returns the file name of walk frame n (1-based)
func PlayerFrameFile(n int) string {
	return fmt.Sprintf("girl%d.png", n)
}

// Sizes holds the pixel sizes the artwork is scaled to
type Sizes struct {
	ScreenWidth  int
	ScreenHeight int
	TileSize     int
	PlayerWidth  int
	PlayerHeight int
	Frames       int
}

// Images holds decoded, scaled artwork
type Images struct {
	Background image.Image
	Sun        image.Image
	Tiles      map[entity.TileKind]image.Image
	Right      []image.Image
	Left       []image.Image

	// Missing lists the files that were replaced by placeholders
	Missing []string
}

// Load reads every image from fsys. Tiles are scaled to the tile size,
// player frames to the player size, and left frames are mirrored right
// frames. Background and sun keep their native size.
func Load(fsys fs.FS, sizes Sizes) *Images {
	imgs := &Images{
		Tiles: make(map[entity.TileKind]image.Image, 2),
	}

	imgs.Background = imgs.load(fsys, BackgroundFile, func() image.Image {
		return Gradient(sizes.ScreenWidth, sizes.ScreenHeight, Palette.SkyTop, Palette.SkyBottom)
	})
	imgs.Sun = imgs.load(fsys, SunFile, func() image.Image {
		return Disc(sunSize, Palette.Sun)
	})

	dirt := imgs.load(fsys, DirtFile, func() image.Image {
		return BorderedTile(sizes.TileSize, Palette.Dirt, Palette.DirtEdge, 3)
	})
	grass := imgs.load(fsys, GrassFile, func() image.Image {
		return GrassTile(sizes.TileSize)
	})
	imgs.Tiles[entity.TileDirt] = Scale(dirt, sizes.TileSize, sizes.TileSize)
	imgs.Tiles[entity.TileGrass] = Scale(grass, sizes.TileSize, sizes.TileSize)

	for n := 1; n <= sizes.Frames; n++ {
		frame := n
		img := imgs.load(fsys, PlayerFrameFile(n), func() image.Image {
			return PlayerFrame(sizes.PlayerWidth, sizes.PlayerHeight, frame)
		})
		right := Scale(img, sizes.PlayerWidth, sizes.PlayerHeight)
		imgs.Right = append(imgs.Right, right)
		imgs.Left = append(imgs.Left, FlipHorizontal(right))
	}

	if len(imgs.Missing) > 0 {
		log.Printf("Using placeholders for %d missing images", len(imgs.Missing))
	}
	return imgs
}

func (imgs *Images) load(fsys fs.FS, name string, placeholder func() image.Image) image.Image {
	img, err := decode(fsys, name)
	if err != nil {
		log.Printf("Image %s unavailable, using placeholder: %v", name, err)
		imgs.Missing = append(imgs.Missing, name)
		return placeholder()
	}
	return img
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}
