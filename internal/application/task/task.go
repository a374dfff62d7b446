// Package task runs cooperative control flows on the frame loop.
//
// A Task is a coroutine (built on iter.Pull): it runs until it awaits an
// unresolved Future, then hands control back to whoever started or resumed
// it. Resolving the future resumes the task synchronously on the resolving
// call stack, so at most one flow executes at any moment and no locking is
// needed. Every suspension point honours Stop.
package task

import (
	"errors"
	"fmt"
	"iter"
	"log"
)

// ErrStopped is returned by Await once the owning task has been stopped.
var ErrStopped = errors.New("task: stopped")

// Co is the handle a task body uses to suspend itself.
type Co struct {
	task  *Task
	yield func(*Future) bool
}

// Await suspends the task until f resolves and returns f's error.
// It returns ErrStopped without suspending once the task is stopped, and
// ErrStopped if the task is stopped while suspended.
func (c *Co) Await(f *Future) error {
	if c.task.stopped {
		return ErrStopped
	}
	if f.Done() {
		return f.Err()
	}
	if !c.yield(f) {
		return ErrStopped
	}
	if c.task.stopped {
		return ErrStopped
	}
	return f.Err()
}

// Stopped reports whether the task was asked to stop.
func (c *Co) Stopped() bool {
	return c.task.stopped
}

// Task is a running cooperative control flow.
type Task struct {
	name string

	next func() (*Future, bool)
	stop func()

	running  bool
	stopped  bool
	finished bool
	err      error
	done     *Future
}

// Go starts body as a new task and runs it until its first suspension.
func Go(name string, body func(co *Co) error) *Task {
	t := &Task{name: name, done: NewFuture()}
	co := &Co{task: t}
	seq := func(yield func(*Future) bool) {
		co.yield = yield
		t.err = body(co)
	}
	t.next, t.stop = iter.Pull(iter.Seq[*Future](seq))
	t.step()
	return t
}

// step resumes the task until it suspends again or returns.
func (t *Task) step() {
	if t.finished || t.running {
		return
	}
	f, ok := t.resume()
	if !ok {
		t.finish()
		return
	}
	f.Then(t.step)
}

func (t *Task) resume() (f *Future, ok bool) {
	t.guard(func() { f, ok = t.next() })
	return f, ok
}

// guard runs fn with the task marked as running and turns a panic in the
// body into the task's error.
func (t *Task) guard(fn func()) {
	t.running = true
	defer func() {
		t.running = false
		if r := recover(); r != nil {
			t.err = fmt.Errorf("task %q panicked: %v", t.name, r)
			log.Printf("[Task] %v", t.err)
		}
	}()
	fn()
}

func (t *Task) finish() {
	if t.finished {
		return
	}
	t.finished = true
	t.stop()
	err := t.err
	if err == nil && t.stopped {
		err = ErrStopped
	}
	t.done.Resolve(err)
}

// Stop asks the task to end. When called from outside the task it returns
// only after the body has returned; every pending or later Await in the body
// yields ErrStopped. When called from inside the task's own body it only
// marks the task, and the next Await returns ErrStopped.
func (t *Task) Stop() {
	if t.finished {
		return
	}
	t.stopped = true
	if t.running {
		return
	}
	t.guard(t.stop)
	t.finish()
}

// Name returns the task name.
func (t *Task) Name() string {
	return t.name
}

// Finished reports whether the body has returned.
func (t *Task) Finished() bool {
	return t.finished
}

// Stopped reports whether Stop was called.
func (t *Task) Stopped() bool {
	return t.stopped
}

// Err returns the body's error once finished. A stopped task whose body
// returned nil reports ErrStopped.
func (t *Task) Err() error {
	if !t.finished {
		return nil
	}
	return t.done.Err()
}

// Done returns a future resolved with Err when the task finishes. Another
// task may Await it.
func (t *Task) Done() *Future {
	return t.done
}
