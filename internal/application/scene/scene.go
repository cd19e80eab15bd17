// Package scene defines the Scene interface implemented by game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The Game forwards ebiten's Update and
// Draw calls to the active scene.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene
	// replaces this one. Returning ebiten.Termination ends the game
	// loop normally; any other error aborts it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene onto screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes active.
	OnEnter()

	// OnExit runs when the scene is replaced or the loop ends.
	OnExit()
}
