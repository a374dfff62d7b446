package tween

import "time"

// Group is a named collection of running tweens advanced together.
type Group struct {
	name      string
	tweens    []*Tween
	destroyed bool

	started   int
	completed int
	cancelled int
}

func newGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Len returns the number of running tweens.
func (g *Group) Len() int {
	return len(g.tweens)
}

func (g *Group) add(t *Tween) {
	g.tweens = append(g.tweens, t)
	g.started++
}

// Update advances every tween that was running when the call began.
// Tweens started by a completion continuation begin advancing on the next
// Update. Finished tweens are removed before their continuations fire.
func (g *Group) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	snapshot := make([]*Tween, len(g.tweens))
	copy(snapshot, g.tweens)

	for _, t := range snapshot {
		if !t.advance(dt) {
			continue
		}
		g.remove(t)
		g.completed++
		t.complete()
	}
}

// RemoveAll cancels every running tween. No completion continuation fires.
func (g *Group) RemoveAll() {
	tweens := g.tweens
	g.tweens = nil
	for _, t := range tweens {
		if t.state == StateRunning {
			g.cancelled++
		}
		t.cancel()
	}
}

func (g *Group) remove(t *Tween) {
	for i, other := range g.tweens {
		if other == t {
			g.tweens = append(g.tweens[:i], g.tweens[i+1:]...)
			return
		}
	}
}
