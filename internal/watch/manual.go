package watch

import "sync"

// ManualWatcher is a Notifier driven by hand, for tests of code that reacts
// to file changes.
type ManualWatcher struct {
	changes chan struct{}
	errors  chan error
	closed  bool
	mu      sync.Mutex
}

// NewManualWatcher creates a ManualWatcher with buffered channels
func NewManualWatcher() *ManualWatcher {
	return &ManualWatcher{
		changes: make(chan struct{}, 10),
		errors:  make(chan error, 10),
	}
}

func (m *ManualWatcher) Changes() <-chan struct{} {
	return m.changes
}

func (m *ManualWatcher) Errors() <-chan error {
	return m.errors
}

// Close closes both channels. It is safe to call more than once.
func (m *ManualWatcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	close(m.changes)
	close(m.errors)
	return nil
}

// Trigger reports a change. It never blocks: once the buffer is full further
// changes are dropped, and nothing is sent after Close.
func (m *ManualWatcher) Trigger() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

// Fail reports an error. Like Trigger it drops the error when nobody is
// reading and the buffer is full.
func (m *ManualWatcher) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	select {
	case m.errors <- err:
	default:
	}
}
