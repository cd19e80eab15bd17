// Package game provides the ebiten.Game that drives the active Scene.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/voiceplatform/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ended   bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// tps is the fixed update rate; values <= 0 mean 60.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// When the scene ends the loop with ebiten.Termination, the scene's
// OnExit runs once before the error is handed back to ebiten.
func (g *Game) Update() error {
	if g.ended {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.ended = true
			g.current.OnExit()
		}
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Ended reports whether the current scene terminated the loop
func (g *Game) Ended() bool {
	return g.ended
}

// DT returns the delta time passed to scenes, in seconds
func (g *Game) DT() float64 {
	return g.dt
}
