// Package tween provides time-based property interpolation organised in
// named, independently cancellable groups.
//
// A Tween is built, configured and started exactly once. The Scheduler
// advances every group once per frame; a finished tween fires its
// completion continuations once and leaves its group. Destroying a group
// cancels its tweens: completion continuations are dropped and only the
// cancel hooks run.
package tween

import (
	"errors"
	"time"

	"github.com/younwookim/showcase/internal/domain/entity"
)

// ErrCancelled is reported to waiters of a tween whose group was destroyed
// before it finished.
var ErrCancelled = errors.New("tween: cancelled")

// Property identifies an animatable scalar on a Target.
type Property = entity.Property

const (
	PropX     = entity.PropX
	PropY     = entity.PropY
	PropAlpha = entity.PropAlpha
	PropScale = entity.PropScale
)

// Target exposes mutable properties to tweens.
// Field returns nil for properties the target does not have.
type Target interface {
	Field(p Property) *float64
}

// Values maps properties to end values.
type Values map[Property]float64

// State is the progress state of a tween.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

type channel struct {
	field      *float64
	start, end float64
}

// Tween interpolates properties of one target toward end values.
type Tween struct {
	group  *Group
	target Target

	values   Values
	duration time.Duration
	delay    time.Duration
	easing   EasingFunc

	channels []channel
	elapsed  time.Duration
	state    State

	onComplete []func()
	onCancel   []func()
}

func newTween(g *Group, target Target) *Tween {
	return &Tween{
		group:  g,
		target: target,
		easing: Linear,
	}
}

// To sets the end values and the duration.
func (t *Tween) To(values Values, duration time.Duration) *Tween {
	t.values = values
	t.duration = duration
	return t
}

// Easing sets the easing curve. nil restores Linear.
func (t *Tween) Easing(fn EasingFunc) *Tween {
	if fn == nil {
		fn = Linear
	}
	t.easing = fn
	return t
}

// Delay postpones the interpolation by d after Start.
func (t *Tween) Delay(d time.Duration) *Tween {
	t.delay = d
	return t
}

// OnComplete registers a continuation fired once when the tween finishes.
// Continuations are not fired if the tween is cancelled.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = append(t.onComplete, fn)
	return t
}

// OnCancel registers a hook fired once if the tween is cancelled.
func (t *Tween) OnCancel(fn func()) *Tween {
	t.onCancel = append(t.onCancel, fn)
	return t
}

// Start captures the start values and registers the tween with its group.
// A tween may be started at most once; a second call panics.
func (t *Tween) Start() *Tween {
	if t.state != StateIdle {
		panic("tween: Start called twice")
	}
	t.state = StateRunning
	if t.target != nil {
		for p, end := range t.values {
			field := t.target.Field(p)
			if field == nil {
				continue
			}
			t.channels = append(t.channels, channel{field: field, start: *field, end: end})
		}
	}
	if t.group.destroyed {
		t.cancel()
		return t
	}
	t.group.add(t)
	return t
}

// Cancel stops a running tween. Only its cancel hooks fire.
func (t *Tween) Cancel() {
	if t.state != StateRunning {
		return
	}
	t.group.remove(t)
	t.group.cancelled++
	t.cancel()
}

// State returns the current state.
func (t *Tween) State() State {
	return t.state
}

// Elapsed returns the time accumulated since Start, delay included.
func (t *Tween) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the interpolation duration, delay excluded.
func (t *Tween) Duration() time.Duration {
	return t.duration
}

// advance moves the tween forward by dt and reports whether it finished.
func (t *Tween) advance(dt time.Duration) bool {
	if t.state != StateRunning {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.delay {
		return false
	}

	progress := 1.0
	if t.duration > 0 {
		progress = float64(t.elapsed-t.delay) / float64(t.duration)
		if progress > 1 {
			progress = 1
		}
	}
	eased := t.easing(progress)
	for _, c := range t.channels {
		*c.field = Lerp(c.start, c.end, eased)
	}

	if progress < 1 {
		return false
	}
	// Land exactly on the end values regardless of the easing curve.
	for _, c := range t.channels {
		*c.field = c.end
	}
	t.state = StateCompleted
	return true
}

func (t *Tween) complete() {
	callbacks := t.onComplete
	t.onComplete = nil
	t.onCancel = nil
	for _, fn := range callbacks {
		fn()
	}
}

func (t *Tween) cancel() {
	if t.state == StateCompleted || t.state == StateCancelled {
		return
	}
	t.state = StateCancelled
	hooks := t.onCancel
	t.onComplete = nil
	t.onCancel = nil
	for _, fn := range hooks {
		fn()
	}
}
