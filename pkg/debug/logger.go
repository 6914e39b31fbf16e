package debug

import (
	"fmt"
	"strings"
	"time"
)

// PaletteSize is the number of color tokens a logger can be assigned.
// Presentation layers map a token to whatever their output surface supports.
const PaletteSize = 12

// Event is what a logger hands to the presentation layer for one call that
// actually produced output.
type Event struct {
	Namespace string
	Message   string
	// Elapsed is the time since the previous emitting call of the same
	// logger, or since creation for the first one.
	Elapsed time.Duration
	// Color is a palette index in [0, PaletteSize), fixed at logger creation.
	Color        int
	ColorSupport bool
}

// Handler renders events. Implementations decide formatting and destination;
// the registry only guarantees it is called for enabled loggers.
type Handler interface {
	Handle(Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(Event)

func (f HandlerFunc) Handle(e Event) { f(e) }

// Logger is the per-namespace logging handle. Instances are created through a
// Registry and live for the rest of the process; the enabled flag is
// recomputed by the registry whenever the active filter changes.
type Logger struct {
	namespace string
	color     int

	reg     *Registry
	enabled bool
	// last is the time of the previous emitting call, initialized to the
	// creation time. Calls made while the logger is disabled do not advance
	// it.
	last time.Time
}

// timeNow is swapped out in tests for deterministic elapsed values.
var timeNow = time.Now

// Namespace returns the logger's immutable identity.
func (l *Logger) Namespace() string {
	return l.namespace
}

// Color returns the palette index assigned at creation.
func (l *Logger) Color() int {
	return l.color
}

// Enabled reports whether the logger currently produces output.
func (l *Logger) Enabled() bool {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()
	return l.enabled
}

// Logf formats and emits a message if the logger is enabled. Disabled loggers
// consume the call silently without touching the elapsed-time baseline.
func (l *Logger) Logf(format string, args ...any) {
	l.emit(fmt.Sprintf(format, args...))
}

// Log emits its arguments separated by spaces, fmt.Sprintln style without the
// trailing newline.
func (l *Logger) Log(args ...any) {
	l.emit(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (l *Logger) emit(msg string) {
	l.reg.mu.Lock()
	if !l.enabled {
		l.reg.mu.Unlock()
		return
	}
	now := timeNow()
	elapsed := now.Sub(l.last)
	l.last = now
	handler := l.reg.handler
	support := l.reg.colorSupport
	l.reg.mu.Unlock()

	if handler == nil {
		return
	}
	handler.Handle(Event{
		Namespace:    l.namespace,
		Message:      msg,
		Elapsed:      elapsed,
		Color:        l.color,
		ColorSupport: support,
	})
}

// colorFor assigns a palette index from the namespace's first byte and
// length. Collisions between unrelated namespaces are expected and fine for
// a development aid.
func colorFor(namespace string) int {
	if namespace == "" {
		return 0
	}
	return (int(namespace[0]) + len(namespace)) % PaletteSize
}
