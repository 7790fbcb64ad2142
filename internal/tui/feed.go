package tui

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Feed)(nil)

// Feed connects a progrock recorder to the model.
// Writes never block; Read blocks until an update is queued or the feed is closed.
type Feed struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
	ready   chan struct{}
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{ready: make(chan struct{}, 1)}
}

// WriteStatus queues update. Updates written after Close are dropped.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	if !f.closed {
		f.updates = append(f.updates, update)
	}
	f.mu.Unlock()
	f.signal()
	return nil
}

// Close ends the feed once the queued updates are read.
func (f *Feed) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.signal()
	return nil
}

// Read returns the next queued update, or io.EOF after Close.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	for {
		f.mu.Lock()
		if len(f.updates) > 0 {
			u := f.updates[0]
			f.updates = f.updates[1:]
			f.mu.Unlock()
			return u, nil
		}
		closed := f.closed
		f.mu.Unlock()

		if closed {
			return nil, io.EOF
		}
		<-f.ready
	}
}

func (f *Feed) signal() {
	select {
	case f.ready <- struct{}{}:
	default:
	}
}
