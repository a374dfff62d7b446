// Package director owns the single active scene and runs transitions
// between scenes behind the loading indicator.
package director

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/state"
	"github.com/younwookim/showcase/internal/application/task"
)

var (
	// ErrUnknownScene is returned for names missing from the registry.
	ErrUnknownScene = errors.New("director: unknown scene")
	// ErrTransitionInFlight is returned when a load is requested while
	// another one is still running. The running load is unaffected.
	ErrTransitionInFlight = errors.New("director: transition in flight")
)

// Surface is where scenes are attached for presentation
type Surface interface {
	Attach(s scene.Scene)
	Detach(s scene.Scene)
}

// Indicator masks transitions. Both calls return once their fade is done.
type Indicator interface {
	Show(co *task.Co) error
	Hide(co *task.Co) error
}

type entry struct {
	name     scene.Name
	scene    scene.Scene
	state    state.Lifecycle
	attached bool
}

func (e *entry) advance(next state.Lifecycle) {
	if !e.state.CanTransition(next) {
		log.Printf("[Director] %s: unexpected transition %s -> %s", e.name, e.state, next)
	}
	e.state = next
}

// Director owns the current scene
type Director struct {
	registry  map[scene.Name]scene.Constructor
	surface   Surface
	indicator Indicator

	current *entry
	busy    bool
	pending *task.Task

	onBusy func(busy bool)
}

// New creates a director with no current scene
func New(registry map[scene.Name]scene.Constructor, surface Surface, indicator Indicator) *Director {
	return &Director{
		registry:  registry,
		surface:   surface,
		indicator: indicator,
	}
}

// OnBusyChange registers fn to be called when a transition starts or ends
func (d *Director) OnBusyChange(fn func(busy bool)) {
	d.onBusy = fn
}

func (d *Director) setBusy(busy bool) {
	d.busy = busy
	if d.onBusy != nil {
		d.onBusy(busy)
	}
}

// LoadScene replaces the current scene with a new instance of name.
//
// The indicator is shown, the new scene loaded, the indicator hidden, the
// old scene exited and destroyed, and finally the new scene attached and
// entered. If anything fails before the old scene is exited, the new scene
// is destroyed, the indicator hidden and the old scene stays current.
func (d *Director) LoadScene(co *task.Co, name scene.Name) error {
	ctor, ok := d.registry[name]
	if !ok {
		log.Printf("[Director] scene %q not found", name)
		return fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	if d.busy {
		log.Printf("[Director] ignoring %s: a transition is already running", name)
		return fmt.Errorf("%w: %s", ErrTransitionInFlight, name)
	}
	d.setBusy(true)
	defer d.setBusy(false)

	started := time.Now()
	next := &entry{name: name, scene: ctor(), state: state.Constructed}

	if err := d.indicator.Show(co); err != nil {
		d.abort(co, next)
		return fmt.Errorf("failed to show loading indicator: %w", err)
	}
	if err := next.scene.Load(co); err != nil {
		log.Printf("[Director] failed to load %s: %v", name, err)
		d.abort(co, next)
		return fmt.Errorf("failed to load scene %s: %w", name, err)
	}
	next.advance(state.Loaded)

	if err := d.indicator.Hide(co); err != nil {
		next.scene.Destroy()
		next.advance(state.Destroyed)
		return fmt.Errorf("failed to hide loading indicator: %w", err)
	}

	if d.current != nil {
		d.exitCurrent(co)
	}

	d.surface.Attach(next.scene)
	next.attached = true
	d.current = next
	next.advance(state.Entered)
	if err := next.scene.OnEnter(co); err != nil {
		log.Printf("[Director] %s failed to enter: %v", name, err)
		return fmt.Errorf("failed to enter scene %s: %w", name, err)
	}

	log.Printf("[Director] switched to %s in %v", name, time.Since(started).Round(time.Millisecond))
	return nil
}

// abort discards a scene that never became current
func (d *Director) abort(co *task.Co, e *entry) {
	e.scene.Destroy()
	e.advance(state.Destroyed)
	if err := d.indicator.Hide(co); err != nil {
		log.Printf("[Director] failed to hide loading indicator: %v", err)
	}
}

// exitCurrent runs the current scene's OnExit and destroys it. An OnExit
// error is logged; the scene is destroyed regardless.
func (d *Director) exitCurrent(co *task.Co) {
	old := d.current
	if err := old.scene.OnExit(co); err != nil {
		log.Printf("[Director] %s failed to exit cleanly: %v", old.name, err)
	}
	old.advance(state.Exited)
	d.surface.Detach(old.scene)
	old.attached = false
	old.scene.Destroy()
	old.advance(state.Destroyed)
	d.current = nil
}

// Switch runs LoadScene as its own task. The returned task reports the
// outcome through Err once finished.
func (d *Director) Switch(name scene.Name) *task.Task {
	t := task.Go("load "+string(name), func(co *task.Co) error {
		return d.LoadScene(co, name)
	})
	if !t.Finished() {
		d.pending = t
	}
	return t
}

// Update forwards dt to the current scene while it is entered
func (d *Director) Update(dt time.Duration) {
	if d.current == nil || !d.current.state.Updatable() {
		return
	}
	d.current.scene.Update(dt)
}

// Draw renders the current scene while it is attached
func (d *Director) Draw(screen *ebiten.Image) {
	if d.current == nil || !d.current.attached {
		return
	}
	d.current.scene.Draw(screen)
}

// Destroy stops a pending transition and destroys the current scene
// without running its OnExit.
func (d *Director) Destroy() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	if d.current == nil {
		return
	}
	if d.current.attached {
		d.surface.Detach(d.current.scene)
		d.current.attached = false
	}
	d.current.scene.Destroy()
	d.current.advance(state.Destroyed)
	d.current = nil
}

// Current returns the current scene, nil if none
func (d *Director) Current() scene.Scene {
	if d.current == nil {
		return nil
	}
	return d.current.scene
}

// CurrentName returns the current scene's name, empty if none
func (d *Director) CurrentName() scene.Name {
	if d.current == nil {
		return ""
	}
	return d.current.name
}

// CurrentState returns the current scene's lifecycle state.
// With no current scene it reports Destroyed.
func (d *Director) CurrentState() state.Lifecycle {
	if d.current == nil {
		return state.Destroyed
	}
	return d.current.state
}

// Busy reports whether a transition is running
func (d *Director) Busy() bool {
	return d.busy
}
