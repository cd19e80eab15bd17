package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/voiceplatform/internal/domain/entity"
)

// Set holds the GPU-side images used by the renderer
type Set struct {
	Background *ebiten.Image
	Sun        *ebiten.Image
	Tiles      map[entity.TileKind]*ebiten.Image
	Right      []*ebiten.Image
	Left       []*ebiten.Image
}

// NewSet uploads decoded images
func NewSet(imgs *Images) *Set {
	s := &Set{
		Background: ebiten.NewImageFromImage(imgs.Background),
		Sun:        ebiten.NewImageFromImage(imgs.Sun),
		Tiles:      make(map[entity.TileKind]*ebiten.Image, len(imgs.Tiles)),
		Right:      upload(imgs.Right),
		Left:       upload(imgs.Left),
	}
	for kind, img := range imgs.Tiles {
		s.Tiles[kind] = ebiten.NewImageFromImage(img)
	}
	return s
}

func upload(src []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(src))
	for i, img := range src {
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}

// Tile returns the image for a tile kind, or nil
func (s *Set) Tile(kind entity.TileKind) *ebiten.Image {
	return s.Tiles[kind]
}

// PlayerFrame returns the walk frame selected by ref.
// Left selects the mirrored frames; anything else selects the right-facing ones.
func (s *Set) PlayerFrame(ref entity.SpriteRef) *ebiten.Image {
	frames := s.Right
	if ref.Facing == entity.FacingLeft {
		frames = s.Left
	}
	if len(frames) == 0 {
		return nil
	}
	idx := ref.Index
	if idx < 0 || idx >= len(frames) {
		idx = 0
	}
	return frames[idx]
}
