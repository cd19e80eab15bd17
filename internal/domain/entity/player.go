package entity

import "time"

// Intent holds the input flags for the current frame.
// Keyboard and voice input both write here; physics only reads.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// SpriteRef selects one frame of the walk cycle.
// Facing picks the sequence (left or right), Index the frame within it.
type SpriteRef struct {
	Facing Facing
	Index  int
}

// Player represents the player entity
type Player struct {
	Rect   Rect
	VelY   int
	Facing Facing
	Intent Intent

	// Jump state
	Jumped    bool
	JumpStart time.Duration

	// Animation state
	FrameIndex   int
	FrameCounter int
	Sprite       SpriteRef
}

// NewPlayer creates a player at the given pixel position.
// The initial sprite is the first right-facing frame while facing stays none.
func NewPlayer(x, y, w, h int) *Player {
	return &Player{
		Rect:   Rect{X: x, Y: y, W: w, H: h},
		Sprite: SpriteRef{Facing: FacingRight, Index: 0},
	}
}

// Moving returns true if either horizontal intent flag is set
func (p *Player) Moving() bool {
	return p.Intent.MoveLeft || p.Intent.MoveRight
}
