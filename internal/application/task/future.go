package task

// Future is a one-shot completion signal. It is resolved at most once with
// an optional error; callbacks registered with Then run on resolution, or
// immediately if the future is already resolved.
//
// Futures are not safe for concurrent use. Off-loop work must resolve them
// through a Mailbox.
type Future struct {
	done      bool
	err       error
	callbacks []func()
}

// NewFuture creates an unresolved future.
func NewFuture() *Future {
	return &Future{}
}

// Resolved returns a future already resolved with err.
func Resolved(err error) *Future {
	return &Future{done: true, err: err}
}

// Resolve completes the future. Only the first call has an effect; it
// reports whether this call resolved the future.
func (f *Future) Resolve(err error) bool {
	if f.done {
		return false
	}
	f.done = true
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
	return true
}

// Done reports whether the future is resolved.
func (f *Future) Done() bool {
	return f.done
}

// Err returns the resolution error, nil while pending.
func (f *Future) Err() error {
	return f.err
}

// Then registers fn to run once the future resolves.
func (f *Future) Then(fn func()) {
	if f.done {
		fn()
		return
	}
	f.callbacks = append(f.callbacks, fn)
}
