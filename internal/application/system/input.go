// Package system reads player input and turns it into host commands.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/showcase/internal/application/scene"
)

// Input holds the commands issued this frame
type Input struct {
	// Scene is the scene requested by a hotkey, empty if none
	Scene       scene.Name
	ToggleFast  bool
	ToggleDebug bool
}

// Empty reports whether no command was issued
func (in Input) Empty() bool {
	return in.Scene == "" && !in.ToggleFast && !in.ToggleDebug
}

// Binding maps a key to the scene it selects
type Binding struct {
	Key   ebiten.Key
	Scene scene.Name
}

// DefaultBindings selects scenes with the digit row and the numpad
var DefaultBindings = []Binding{
	{ebiten.KeyDigit1, scene.CardShuffle},
	{ebiten.KeyNumpad1, scene.CardShuffle},
	{ebiten.KeyDigit2, scene.DialoguePlayback},
	{ebiten.KeyNumpad2, scene.DialoguePlayback},
	{ebiten.KeyDigit3, scene.FireEffect},
	{ebiten.KeyNumpad3, scene.FireEffect},
}

// InputSystem handles player input
type InputSystem struct {
	bindings []Binding
	pressed  func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading ebiten's key state
func NewInputSystem() *InputSystem {
	return NewInputSystemFunc(inpututil.IsKeyJustPressed)
}

// NewInputSystemFunc creates an input system reading key presses from
// justPressed
func NewInputSystemFunc(justPressed func(ebiten.Key) bool) *InputSystem {
	return &InputSystem{bindings: DefaultBindings, pressed: justPressed}
}

// GetInput reads this frame's key presses
func (s *InputSystem) GetInput() Input {
	return s.Map(s.pressed)
}

// Map builds the frame's commands from a just-pressed predicate.
// The first bound key that is down wins.
func (s *InputSystem) Map(justPressed func(ebiten.Key) bool) Input {
	var in Input
	for _, b := range s.bindings {
		if justPressed(b.Key) {
			in.Scene = b.Scene
			break
		}
	}
	in.ToggleFast = justPressed(ebiten.KeyF)
	in.ToggleDebug = justPressed(ebiten.KeyF3)
	return in
}
