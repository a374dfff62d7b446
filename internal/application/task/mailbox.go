package task

// Mailbox carries results of off-loop work back to the frame loop.
//
// Run starts work on its own goroutine; the returned Future resolves only
// when the frame loop calls Drain after the work has finished. Scene state
// is therefore only ever touched from the frame goroutine.
type Mailbox struct {
	inbox   chan func()
	pending int
}

// NewMailbox creates a mailbox. capacity bounds how many finished jobs can
// wait for Drain before their goroutines block.
func NewMailbox(capacity int) *Mailbox {
	if capacity < 1 {
		capacity = 1
	}
	return &Mailbox{inbox: make(chan func(), capacity)}
}

// Run executes work on a new goroutine. work must not touch frame-loop state.
func (m *Mailbox) Run(work func() error) *Future {
	f := NewFuture()
	m.pending++
	go func() {
		err := work()
		m.inbox <- func() { f.Resolve(err) }
	}()
	return f
}

// Drain resolves every future whose work has finished and returns how many
// were resolved. It never blocks.
func (m *Mailbox) Drain() int {
	n := 0
	for {
		select {
		case deliver := <-m.inbox:
			m.pending--
			n++
			deliver()
		default:
			return n
		}
	}
}

// Pending returns the number of jobs not yet drained.
func (m *Mailbox) Pending() int {
	return m.pending
}
