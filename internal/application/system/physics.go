package system

import (
	"time"

	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
)

// Motion reports the deltas applied to the player in one update
type Motion struct {
	DX, DY       int
	FloorClamped bool
}

// PhysicsSystem advances the player one frame against a static world
type PhysicsSystem struct {
	config *config.PlayerConfig
	world  *entity.World
	floor  int
}

// NewPhysicsSystem creates a new physics system.
// floor is the playfield height the player's bottom edge is clamped to.
func NewPhysicsSystem(cfg *config.PlayerConfig, world *entity.World, floor int) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		world:  world,
		floor:  floor,
	}
}

// Update runs one frame. now is the session clock used for the jump cooldown.
// The step order is fixed: jump, horizontal intent, animation, gravity,
// collision, apply, floor clamp.
func (s *PhysicsSystem) Update(player *entity.Player, now time.Duration) Motion {
	s.arbitrateJump(player, now)
	dx := s.horizontalIntent(player)
	s.advanceAnimation(player)
	dy := s.applyGravity(player)

	dx, dy = s.resolveCollisions(player, dx, dy)

	player.Rect.X += dx
	player.Rect.Y += dy

	clamped := false
	if player.Rect.Bottom() > s.floor {
		player.Rect.Y = s.floor - player.Rect.H
		clamped = true
	}

	return Motion{DX: dx, DY: dy, FloorClamped: clamped}
}

// arbitrateJump launches a jump or releases the jump lock.
// The lock is time based, so it can release while still airborne.
func (s *PhysicsSystem) arbitrateJump(player *entity.Player, now time.Duration) {
	if player.Intent.Jump && !player.Jumped {
		player.VelY = s.config.Jump.Velocity
		player.Jumped = true
		player.JumpStart = now
	} else if now-player.JumpStart >= s.config.Jump.Cooldown() {
		player.Jumped = false
	}
}

// horizontalIntent sums the move flags. Right is evaluated after left so
// it wins the facing when both are held.
func (s *PhysicsSystem) horizontalIntent(player *entity.Player) int {
	dx := 0
	speed := s.config.Movement.MoveSpeed

	if player.Intent.MoveLeft {
		dx -= speed
		player.FrameCounter++
		player.Facing = entity.FacingLeft
	}
	if player.Intent.MoveRight {
		dx += speed
		player.FrameCounter++
		player.Facing = entity.FacingRight
	}

	maxSpeed := s.config.Movement.MaxSpeed
	if dx < -maxSpeed {
		dx = -maxSpeed
	} else if dx > maxSpeed {
		dx = maxSpeed
	}
	return dx
}

// advanceAnimation steps the walk cycle. The sprite is only reselected
// when idle with a facing, or when the frame advances.
func (s *PhysicsSystem) advanceAnimation(player *entity.Player) {
	if !player.Moving() {
		player.FrameCounter = 0
		player.FrameIndex = 0
		if player.Facing != entity.FacingNone {
			player.Sprite = entity.SpriteRef{Facing: player.Facing, Index: 0}
		}
		return
	}

	if player.FrameCounter > s.config.Sprite.WalkCooldown {
		player.FrameCounter = 0
		player.FrameIndex++
		if player.FrameIndex >= s.config.Sprite.Frames {
			player.FrameIndex = 0
		}
		if player.Facing != entity.FacingNone {
			player.Sprite = entity.SpriteRef{Facing: player.Facing, Index: player.FrameIndex}
		}
	}
}

// applyGravity accelerates the fall and returns the tentative vertical delta
func (s *PhysicsSystem) applyGravity(player *entity.Player) int {
	player.VelY += s.config.Physics.Gravity
	if player.VelY > s.config.Physics.MaxFallSpeed {
		player.VelY = s.config.Physics.MaxFallSpeed
	}
	return player.VelY
}

// resolveCollisions checks each axis separately from the current position.
// Any horizontal hit cancels dx entirely. Vertical hits snap to the tile
// edge and zero the velocity; tiles are visited in grid order and each
// later tile sees the dy and velocity left by earlier ones.
func (s *PhysicsSystem) resolveCollisions(player *entity.Player, dx, dy int) (int, int) {
	if s.world.Blocked(player.Rect.Offset(dx, 0)) {
		dx = 0
	}

	for _, tile := range s.world.Tiles() {
		if !tile.Rect.Intersects(player.Rect.Offset(0, dy)) {
			continue
		}
		if player.VelY < 0 {
			dy = tile.Rect.Bottom() - player.Rect.Top()
		} else {
			dy = tile.Rect.Top() - player.Rect.Bottom()
		}
		player.VelY = 0
	}

	return dx, dy
}
