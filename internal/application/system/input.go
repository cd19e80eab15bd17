package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// Key bindings
const (
	KeyJump  = ebiten.KeySpace
	KeyLeft  = ebiten.KeyArrowLeft
	KeyRight = ebiten.KeyArrowRight
)

// KeyEvents holds the key transitions seen during one tick
type KeyEvents struct {
	JumpDown  bool
	JumpUp    bool
	LeftDown  bool
	LeftUp    bool
	RightDown bool
	RightUp   bool
}

// InputSystem translates keyboard and voice input into player intent
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the key transitions of the current tick
func (s *InputSystem) GetInput() KeyEvents {
	return KeyEvents{
		JumpDown:  inpututil.IsKeyJustPressed(KeyJump),
		JumpUp:    inpututil.IsKeyJustReleased(KeyJump),
		LeftDown:  inpututil.IsKeyJustPressed(KeyLeft),
		LeftUp:    inpututil.IsKeyJustReleased(KeyLeft),
		RightDown: inpututil.IsKeyJustPressed(KeyRight),
		RightUp:   inpututil.IsKeyJustReleased(KeyRight),
	}
}

// ApplyKeys sets intent flags on key down and clears them on key up
func (s *InputSystem) ApplyKeys(player *entity.Player, keys KeyEvents) {
	if keys.JumpDown {
		player.Intent.Jump = true
	}
	if keys.LeftDown {
		player.Intent.MoveLeft = true
	}
	if keys.RightDown {
		player.Intent.MoveRight = true
	}
	if keys.JumpUp {
		player.Intent.Jump = false
	}
	if keys.LeftUp {
		player.Intent.MoveLeft = false
	}
	if keys.RightUp {
		player.Intent.MoveRight = false
	}
}

// ApplyVoice applies a recognized command on top of the keyboard state.
// It runs after ApplyKeys every frame, so a held command overrides a key release.
func (s *InputSystem) ApplyVoice(player *entity.Player, cmd voice.Command) {
	intent, ok := VoiceIntent(cmd)
	if !ok {
		return
	}
	ApplyIntent(player, intent)
}

// Update applies one frame of keyboard events and the current voice command
func (s *InputSystem) Update(player *entity.Player, keys KeyEvents, cmd voice.Command, hasCmd bool) {
	s.ApplyKeys(player, keys)
	if hasCmd {
		s.ApplyVoice(player, cmd)
	}
}
