package task

import (
	"errors"
	"time"

	"github.com/younwookim/showcase/internal/application/tween"
)

// AwaitTween starts tw and suspends until it completes.
// It returns tween.ErrCancelled if the tween's group is destroyed first and
// ErrStopped if the task is stopped; a stopped task never starts tw, and
// stopping a task while it waits cancels tw.
func AwaitTween(co *Co, tw *tween.Tween) error {
	if co.Stopped() {
		return ErrStopped
	}
	f := NewFuture()
	tw.OnComplete(func() { f.Resolve(nil) })
	tw.OnCancel(func() { f.Resolve(tween.ErrCancelled) })
	tw.Start()
	err := co.Await(f)
	if errors.Is(err, ErrStopped) {
		tw.Cancel()
	}
	return err
}

// Sleep suspends for d using a timer in the named group, so destroying the
// group also interrupts the pause.
func Sleep(co *Co, s *tween.Scheduler, group string, d time.Duration) error {
	return AwaitTween(co, s.Timer(group, d))
}
