package system

import (
	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// Intent represents an action requested by a voice command
type Intent interface {
	isIntent()
}

// MoveIntent starts moving one way and cancels the other way
type MoveIntent struct {
	Facing entity.Facing
}

func (MoveIntent) isIntent() {}

// JumpIntent requests a jump
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// StopIntent clears every movement and jump flag
type StopIntent struct{}

func (StopIntent) isIntent() {}

// VoiceIntent maps a command to its intent.
// Down is reserved and, like non-gameplay words, maps to nothing.
func VoiceIntent(cmd voice.Command) (Intent, bool) {
	switch cmd {
	case voice.CommandUp:
		return JumpIntent{}, true
	case voice.CommandLeft:
		return MoveIntent{Facing: entity.FacingLeft}, true
	case voice.CommandRight:
		return MoveIntent{Facing: entity.FacingRight}, true
	case voice.CommandStop:
		return StopIntent{}, true
	default:
		return nil, false
	}
}

// ApplyIntent mutates the player's intent flags
func ApplyIntent(player *entity.Player, intent Intent) {
	switch in := intent.(type) {
	case JumpIntent:
		player.Intent.Jump = true
	case MoveIntent:
		switch in.Facing {
		case entity.FacingLeft:
			player.Intent.MoveRight = false
			player.Intent.MoveLeft = true
		case entity.FacingRight:
			player.Intent.MoveLeft = false
			player.Intent.MoveRight = true
		}
		player.Facing = in.Facing
	case StopIntent:
		player.Intent = entity.Intent{}
	}
}
