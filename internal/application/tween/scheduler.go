package tween

import (
	"log"
	"time"
)

// DefaultGroup is the name of the implicit group shared by all callers that
// do not name one. It always exists.
const DefaultGroup = ""

// Stats is a snapshot of scheduler activity.
type Stats struct {
	Groups    int
	Active    int
	Started   int
	Completed int
	Cancelled int
}

// Scheduler owns every animation group and advances them once per frame.
// It is not safe for concurrent use; all calls happen on the frame loop.
type Scheduler struct {
	order  []*Group
	byName map[string]*Group

	// retired keeps the counters of destroyed groups for Stats.
	retired Stats
}

// NewScheduler creates a scheduler holding only the default group.
func NewScheduler() *Scheduler {
	s := &Scheduler{byName: make(map[string]*Group)}
	s.ensure(DefaultGroup)
	return s
}

func (s *Scheduler) ensure(name string) *Group {
	if g, ok := s.byName[name]; ok {
		return g
	}
	g := newGroup(name)
	s.byName[name] = g
	s.order = append(s.order, g)
	return g
}

// Create builds an unstarted tween in the default group.
func (s *Scheduler) Create(target Target) *Tween {
	return newTween(s.ensure(DefaultGroup), target)
}

// CreateIn builds an unstarted tween in the named group, creating the group
// if it does not exist.
func (s *Scheduler) CreateIn(group string, target Target) *Tween {
	return newTween(s.ensure(group), target)
}

// Timer builds an unstarted tween with no target that completes after d.
func (s *Scheduler) Timer(group string, d time.Duration) *Tween {
	return s.CreateIn(group, nil).To(nil, d)
}

// Group returns the named group if it exists.
func (s *Scheduler) Group(name string) (*Group, bool) {
	g, ok := s.byName[name]
	return g, ok
}

// DestroyGroup cancels every tween in the named group and removes it.
// The default group is emptied but stays registered. Unknown names are a no-op.
func (s *Scheduler) DestroyGroup(name string) {
	g, ok := s.byName[name]
	if !ok {
		return
	}
	if name != DefaultGroup {
		delete(s.byName, name)
		for i, other := range s.order {
			if other == g {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		g.destroyed = true
	}
	g.RemoveAll()
	if g.destroyed {
		s.retired.Started += g.started
		s.retired.Completed += g.completed
		s.retired.Cancelled += g.cancelled
	}
}

// Tick advances every registered group by dt in creation order.
// A panic in one group's continuations is logged and does not stop the
// remaining groups.
func (s *Scheduler) Tick(dt time.Duration) {
	groups := make([]*Group, len(s.order))
	copy(groups, s.order)
	for _, g := range groups {
		if g.destroyed {
			continue
		}
		s.tickGroup(g, dt)
	}
}

func (s *Scheduler) tickGroup(g *Group, dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Tween] group %q: continuation panicked: %v", g.name, r)
		}
	}()
	g.Update(dt)
}

// Stats returns activity counters across live and destroyed groups.
func (s *Scheduler) Stats() Stats {
	st := s.retired
	st.Groups = len(s.order)
	for _, g := range s.order {
		st.Active += len(g.tweens)
		st.Started += g.started
		st.Completed += g.completed
		st.Cancelled += g.cancelled
	}
	return st
}
