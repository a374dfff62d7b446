// Package scene defines the Scene interface for showcase screens.
//
// Each screen (card shuffle, dialogue, fire) implements the Scene interface
// to load its resources, run its animation flows and render itself. The
// director drives the lifecycle; scenes never switch themselves.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/showcase/internal/application/task"
)

// Scene represents a showcase screen
//
// Lifecycle: Load, OnEnter, then Update/Draw every frame while entered,
// then OnExit and Destroy. Load, OnEnter and OnExit may suspend through co.
type Scene interface {
	// Load acquires everything the scene needs before it is shown.
	Load(co *task.Co) error

	// OnEnter starts the scene's animation flows. Long-running flows must
	// run as their own tasks so OnEnter returns promptly.
	OnEnter(co *task.Co) error

	// Update runs per-frame work that is not a tween. It must not suspend.
	Update(dt time.Duration)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnExit stops the scene's flows and returns once Destroy is safe.
	OnExit(co *task.Co) error

	// Destroy releases the scene's animation groups and visuals.
	// It must be safe to call more than once.
	Destroy()
}

// Name identifies a scene
type Name string

const (
	CardShuffle      Name = "AceOfShadows"
	DialoguePlayback Name = "MagicWords"
	FireEffect       Name = "PhoenixFlame"
)

// Names lists the scenes in menu order
var Names = []Name{CardShuffle, DialoguePlayback, FireEffect}

// Title returns the human readable scene title
func (n Name) Title() string {
	switch n {
	case CardShuffle:
		return "Ace of Shadows"
	case DialoguePlayback:
		return "Magic Words"
	case FireEffect:
		return "Phoenix Flame"
	default:
		return string(n)
	}
}

// Constructor builds a fresh, unloaded scene
type Constructor func() Scene

// FastToggler is implemented by scenes with a fast mode
type FastToggler interface {
	ToggleFast() bool
}
