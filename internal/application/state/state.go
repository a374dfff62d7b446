// Package state defines the lifecycle states a scene passes through.
package state

// Lifecycle is the lifecycle state of a scene instance
type Lifecycle int

const (
	Constructed Lifecycle = iota
	Loaded
	Entered
	Exited
	Destroyed
)

// String returns the string representation of the lifecycle state
func (s Lifecycle) String() string {
	switch s {
	case Constructed:
		return "Constructed"
	case Loaded:
		return "Loaded"
	case Entered:
		return "Entered"
	case Exited:
		return "Exited"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether moving from s to next follows the lifecycle:
// Constructed→Loaded→Entered→Exited, and any state→Destroyed.
func (s Lifecycle) CanTransition(next Lifecycle) bool {
	if next == Destroyed {
		return true
	}
	switch s {
	case Constructed:
		return next == Loaded
	case Loaded:
		return next == Entered
	case Entered:
		return next == Exited
	default:
		return false
	}
}

// Updatable reports whether a scene in this state may receive frame updates
func (s Lifecycle) Updatable() bool {
	return s == Entered
}
