package task

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/showcase/internal/application/tween"
)

func TestGo_RunsUntilFirstSuspension(t *testing.T) {
	f := NewFuture()
	var steps []string

	tk := Go("steps", func(co *Co) error {
		steps = append(steps, "before")
		if err := co.Await(f); err != nil {
			return err
		}
		steps = append(steps, "after")
		return nil
	})

	assert.Equal(t, []string{"before"}, steps)
	assert.False(t, tk.Finished())

	f.Resolve(nil)

	assert.Equal(t, []string{"before", "after"}, steps)
	assert.True(t, tk.Finished())
	assert.NoError(t, tk.Err())
}

func TestGo_BodyWithoutSuspensionFinishesImmediately(t *testing.T) {
	boom := errors.New("boom")
	tk := Go("sync", func(co *Co) error { return boom })

	assert.True(t, tk.Finished())
	assert.ErrorIs(t, tk.Err(), boom)
	assert.True(t, tk.Done().Done())
}

func TestAwait_ResolvedFutureDoesNotSuspend(t *testing.T) {
	got := make([]error, 0)
	Go("resolved", func(co *Co) error {
		got = append(got, co.Await(Resolved(nil)))
		return nil
	})
	assert.Equal(t, []error{nil}, got)
}

func TestStop_ReturnsAfterBodyExits(t *testing.T) {
	f := NewFuture()
	var awaitErr error
	cleanedUp := false

	tk := Go("stoppable", func(co *Co) error {
		awaitErr = co.Await(f)
		cleanedUp = true
		return nil
	})

	tk.Stop()

	assert.True(t, cleanedUp, "Stop must wait for the body to return")
	assert.ErrorIs(t, awaitErr, ErrStopped)
	assert.True(t, tk.Finished())
	assert.ErrorIs(t, tk.Err(), ErrStopped)

	// Late resolution of the abandoned future must not resume anything
	assert.NotPanics(t, func() { f.Resolve(nil) })
}

func TestStop_EveryLaterAwaitFailsFast(t *testing.T) {
	var errs []error
	tk := Go("loop", func(co *Co) error {
		for i := 0; i < 3; i++ {
			errs = append(errs, co.Await(NewFuture()))
		}
		return nil
	})

	tk.Stop()

	require.Len(t, errs, 3)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrStopped)
	}
}

func TestStop_FromInsideBody(t *testing.T) {
	var self *Task
	f := NewFuture()
	var err error

	self = Go("self", func(co *Co) error {
		if err := co.Await(f); err != nil {
			return err
		}
		self.Stop()
		err = co.Await(Resolved(nil))
		return nil
	})
	f.Resolve(nil)

	assert.ErrorIs(t, err, ErrStopped)
	assert.True(t, self.Finished())
}

func TestStop_BeforeFirstResumeIsSafe(t *testing.T) {
	tk := Go("done", func(co *Co) error { return nil })
	assert.NotPanics(t, tk.Stop)
	assert.NoError(t, tk.Err())
}

func TestTask_PanicBecomesError(t *testing.T) {
	f := NewFuture()
	tk := Go("panicky", func(co *Co) error {
		_ = co.Await(f)
		panic("kaboom")
	})

	assert.NotPanics(t, func() { f.Resolve(nil) })
	assert.True(t, tk.Finished())
	assert.ErrorContains(t, tk.Err(), "kaboom")
}

func TestTask_AwaitOtherTask(t *testing.T) {
	gate := NewFuture()
	child := Go("child", func(co *Co) error {
		return co.Await(gate)
	})

	var order []string
	parent := Go("parent", func(co *Co) error {
		order = append(order, "waiting")
		err := co.Await(child.Done())
		order = append(order, "child done")
		return err
	})

	gate.Resolve(nil)

	assert.Equal(t, []string{"waiting", "child done"}, order)
	assert.True(t, parent.Finished())
}

func TestAwaitTween_ResumesOnTick(t *testing.T) {
	s := tween.NewScheduler()
	ticks := 0
	tk := Go("tween", func(co *Co) error {
		return AwaitTween(co, s.Timer("g", 100*time.Millisecond))
	})

	for !tk.Finished() && ticks < 100 {
		s.Tick(20 * time.Millisecond)
		ticks++
	}

	assert.True(t, tk.Finished())
	assert.NoError(t, tk.Err())
	assert.Equal(t, 5, ticks)
}

func TestAwaitTween_GroupDestroyedResumesWithCancelled(t *testing.T) {
	s := tween.NewScheduler()
	var got error
	tk := Go("cancel", func(co *Co) error {
		got = AwaitTween(co, s.Timer("g", time.Second))
		return got
	})

	s.DestroyGroup("g")

	assert.True(t, tk.Finished())
	assert.ErrorIs(t, got, tween.ErrCancelled)
}

func TestAwaitTween_StoppedTaskStartsNothing(t *testing.T) {
	s := tween.NewScheduler()
	tk := Go("stop", func(co *Co) error {
		for {
			if err := Sleep(co, s, "g", time.Second); err != nil {
				return err
			}
		}
	})
	tk.Stop()

	g, ok := s.Group("g")
	require.True(t, ok)
	startedBefore := s.Stats().Started
	s.Tick(2 * time.Second)

	assert.Equal(t, startedBefore, s.Stats().Started)
	assert.LessOrEqual(t, g.Len(), 1)
}

func TestMailbox_ResolvesOnlyOnDrain(t *testing.T) {
	m := NewMailbox(4)
	var wg sync.WaitGroup
	wg.Add(1)
	f := m.Run(func() error {
		defer wg.Done()
		return errors.New("io")
	})
	wg.Wait()

	assert.False(t, f.Done(), "work result must wait for Drain")
	assert.Equal(t, 1, m.Pending())

	// The goroutine may still be sending after wg.Done; poll briefly.
	deadline := time.Now().Add(time.Second)
	for m.Drain() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	assert.True(t, f.Done())
	assert.EqualError(t, f.Err(), "io")
	assert.Equal(t, 0, m.Pending())
}

func TestFuture_ResolveOnce(t *testing.T) {
	f := NewFuture()
	calls := 0
	f.Then(func() { calls++ })

	assert.True(t, f.Resolve(nil))
	assert.False(t, f.Resolve(errors.New("late")))
	assert.NoError(t, f.Err())
	assert.Equal(t, 1, calls)

	f.Then(func() { calls++ })
	assert.Equal(t, 2, calls, "Then on a resolved future runs immediately")
}
