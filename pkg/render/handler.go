package render

import (
	"fmt"
	"io"

	"github.com/dbgkit/dbg/pkg/debug"
)

// ConsoleHandler renders debug events as single lines on an output surface:
// colored namespace prefix, the message, and a dim humanized elapsed-time
// suffix. When the event reports no color support the line is plain text.
type ConsoleHandler struct {
	out io.Writer
}

// NewConsoleHandler returns a handler writing to out, typically a
// console.Console wrapping stderr.
func NewConsoleHandler(out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{out: out}
}

// Handle formats and writes one event. Write errors are dropped; debug
// output must never fail the caller.
func (h *ConsoleHandler) Handle(e debug.Event) {
	elapsed := Humanize(e.Elapsed)
	if !e.ColorSupport {
		fmt.Fprintf(h.out, "%s %s %s\n", e.Namespace, e.Message, elapsed)
		return
	}
	style := StyleFor(e.Color)
	fmt.Fprintf(h.out, "%s %s %s\n",
		style.Render(e.Namespace),
		e.Message,
		elapsedStyle.Render(elapsed))
}
