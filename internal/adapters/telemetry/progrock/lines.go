package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// LineWriter is a progrock.Writer that prints one line per finished vertex.
// It is used when no interactive view follows the render.
type LineWriter struct {
	mu   sync.Mutex
	out  io.Writer
	done map[string]bool
}

// NewLineWriter creates a LineWriter printing to out.
func NewLineWriter(out io.Writer) *LineWriter {
	return &LineWriter{out: out, done: make(map[string]bool)}
}

// WriteStatus prints the vertices of update that completed since the last call.
func (w *LineWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true

		var err error
		switch {
		case v.Error != nil:
			_, err = fmt.Fprintf(w.out, "✗ %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			_, err = fmt.Fprintf(w.out, "✓ %s (cached)\n", v.Name)
		default:
			_, err = fmt.Fprintf(w.out, "✓ %s\n", v.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close does nothing; the underlying writer is owned by the caller.
func (w *LineWriter) Close() error {
	return nil
}
