// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/voiceplatform/internal/application/replay"
	"github.com/younwookim/voiceplatform/internal/application/scene"
	"github.com/younwookim/voiceplatform/internal/application/session"
	"github.com/younwookim/voiceplatform/internal/application/state"
	"github.com/younwookim/voiceplatform/internal/application/system"
	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/assets"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// Colors for rendering
var (
	colorOutline = color.RGBA{255, 255, 255, 255}
	colorSky     = color.RGBA{140, 200, 240, 255}
	colorDirt    = color.RGBA{130, 85, 50, 255}
	colorGrass   = color.RGBA{70, 170, 60, 255}
	colorPlayer  = color.RGBA{230, 90, 140, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Sun placement and bob
const (
	sunX        = 100
	sunY        = 100
	sunBob      = 6
	sunBobSecs  = 2
	controlHelp = "Left/Right: Move | Space: Jump | ESC: Pause"
)

// Options configure optional scene behaviour
type Options struct {
	// Level is written into recordings
	Level int
	// RecordPath enables input recording when not empty
	RecordPath string
	// Replayer, when set, drives input instead of the keyboard and bridge
	Replayer *replay.Replayer
}

// Playing is the main gameplay scene
type Playing struct {
	config        *config.GameConfig
	session       *session.Session
	assets        *assets.Set
	state         state.GameState
	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	screenW       int
	screenH       int

	// Frame clock
	tick    time.Duration
	elapsed time.Duration
	frame   int

	lastMotion system.Motion
	lastVoice  voice.Command

	// Decoration
	sun       *gween.Sequence
	sunOffset float32

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	saved          bool
	replayer       *replay.Replayer

	// closeRequested reports a window close; replaced in tests
	closeRequested func() bool
}

// New creates a new Playing scene for sess.
// set may be nil, in which case flat colors stand in for the artwork.
func New(cfg *config.GameConfig, sess *session.Session, set *assets.Set, opts Options) *Playing {
	p := &Playing{
		config:         cfg,
		session:        sess,
		assets:         set,
		state:          state.StatePlaying,
		physicsSystem:  system.NewPhysicsSystem(&cfg.Player, sess.World, cfg.Display.ScreenHeight),
		inputSystem:    system.NewInputSystem(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		tick:           cfg.Display.TickDuration(),
		sun:            newSunTween(),
		recordFilename: opts.RecordPath,
		replayer:       opts.Replayer,
		closeRequested: ebiten.IsWindowBeingClosed,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Level)
		log.Printf("Recording enabled: %s (level %d)", opts.RecordPath, opts.Level)
	}
	if opts.Replayer != nil {
		log.Printf("Replaying %d frames", opts.Replayer.TotalFrames())
	}

	return p
}

func newSunTween() *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, sunBob, sunBobSecs, ease.InOutSine),
		gween.New(sunBob, 0, sunBobSecs, ease.InOutSine),
	)
	return seq
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.closeRequested() {
		return nil, p.finish()
	}

	switch p.state {
	case state.StatePlaying:
		return nil, p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		return nil, ebiten.Termination
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	keys := p.inputSystem.GetInput()
	cmd, hasCmd := p.session.Bridge.Peek()

	if p.replayer != nil {
		if p.replayer.Done() {
			log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
			return p.finish()
		}
		in, _ := p.replayer.GetInput()
		keys, cmd, hasCmd = in.Keys, in.Voice, in.HasVoice
	}

	p.Step(keys, cmd, hasCmd)
	return nil
}

// Step advances the world one frame with the given input.
// Keyboard transitions are applied first, then the voice command.
func (p *Playing) Step(keys system.KeyEvents, cmd voice.Command, hasCmd bool) {
	if p.recorder != nil {
		p.recorder.RecordFrame(keys, cmd, hasCmd)
	}

	if hasCmd {
		p.lastVoice = cmd
	}

	player := p.session.Player
	p.inputSystem.Update(player, keys, cmd, hasCmd)
	p.lastMotion = p.physicsSystem.Update(player, p.elapsed)

	p.elapsed += p.tick
	p.frame++

	offset, _, done := p.sun.Update(float32(p.tick.Seconds()))
	p.sunOffset = offset
	if done {
		p.sun.Reset()
	}
}

// finish moves to game over, saves any recording and ends the loop
func (p *Playing) finish() error {
	if p.state != state.StateGameOver {
		p.state = state.StateGameOver
		log.Printf("Game Over")
		p.saveRecording()
		if p.recorder != nil {
			p.recorder.Stop()
		}
	}
	return ebiten.Termination
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	p.saved = true
	log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Elapsed returns the frame clock
func (p *Playing) Elapsed() time.Duration {
	return p.elapsed
}

// LastMotion returns the deltas of the most recent step
func (p *Playing) LastMotion() system.Motion {
	return p.lastMotion
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.recorder != nil && !p.saved {
		p.saveRecording()
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.drawBackground(screen)
	p.drawTiles(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image) {
	if p.assets == nil {
		screen.Fill(colorSky)
		return
	}

	screen.DrawImage(p.assets.Background, nil)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sunX, sunY+float64(p.sunOffset))
	screen.DrawImage(p.assets.Sun, op)
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	for _, tile := range p.session.World.Tiles() {
		r := tile.Rect
		var img *ebiten.Image
		if p.assets != nil {
			img = p.assets.Tile(tile.Kind)
		}

		if img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(r.X), float64(r.Y))
			screen.DrawImage(img, op)
		} else {
			c := colorDirt
			if tile.Kind == entity.TileGrass {
				c = colorGrass
			}
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		}

		p.drawOutline(screen, r)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.session.Player
	r := player.Rect

	var img *ebiten.Image
	if p.assets != nil {
		img = p.assets.PlayerFrame(player.Sprite)
	}

	if img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.X), float64(r.Y))
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorPlayer, false)
	}

	p.drawOutline(screen, r)
}

// drawOutline strokes r inside its bounds, like a bordered rect
func (p *Playing) drawOutline(screen *ebiten.Image, r entity.Rect) {
	if !p.config.Debug.Outline {
		return
	}
	w := float32(p.config.Debug.OutlineWidth)
	if w <= 0 {
		return
	}
	half := w / 2
	vector.StrokeRect(screen,
		float32(r.X)+half, float32(r.Y)+half,
		float32(r.W)-w, float32(r.H)-w,
		w, colorOutline, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	cmd := "-"
	if p.lastVoice != "" {
		cmd = p.lastVoice.String()
	}
	hud := fmt.Sprintf("%s\nVoice: %s", controlHelp, cmd)
	if p.recorder != nil && p.recorder.IsRecording() {
		hud += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		hud += fmt.Sprintf("\nReplay: %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
