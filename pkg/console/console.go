// Package console provides an explicit, swappable output surface. Instead of
// patching a shared global writer, callers construct a Console around the
// original destination, hand it to whatever wants namespaced output, and can
// redirect or restore it at any time. The original writer is never mutated
// and Restore always hands it back.
package console

import (
	"io"
	"sync"
)

// Console decorates an io.Writer with redirect/restore semantics. It is safe
// for concurrent use.
type Console struct {
	mu       sync.Mutex
	original io.Writer
	current  io.Writer
}

// New wraps the original output surface.
func New(original io.Writer) *Console {
	return &Console{original: original, current: original}
}

// Write forwards to the current destination.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	w := c.current
	c.mu.Unlock()
	return w.Write(p)
}

// Redirect sends subsequent writes to w. A nil w is ignored.
func (c *Console) Redirect(w io.Writer) {
	if w == nil {
		return
	}
	c.mu.Lock()
	c.current = w
	c.mu.Unlock()
}

// Restore points writes back at the original destination and returns it.
func (c *Console) Restore() io.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.original
	return c.original
}
