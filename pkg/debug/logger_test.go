package debug

import (
	"testing"
	"time"
)

// fakeClock steps a synthetic time forward on demand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) install(t *testing.T) {
	t.Helper()
	c.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return c.now }
	t.Cleanup(func() { timeNow = orig })
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func collectEvents(r *Registry) *[]Event {
	events := &[]Event{}
	r.SetHandler(HandlerFunc(func(e Event) {
		*events = append(*events, e)
	}))
	return events
}

func TestDisabledLoggerIsSilent(t *testing.T) {
	r := NewRegistry()
	events := collectEvents(r)
	l := r.Logger("app:db")

	l.Logf("dropped %d", 1)
	l.Log("dropped", 2)
	if len(*events) != 0 {
		t.Fatalf("disabled logger emitted %d events", len(*events))
	}
}

func TestEnabledLoggerEmits(t *testing.T) {
	r := NewRegistry()
	events := collectEvents(r)
	r.Enable("app:*")
	l := r.Logger("app:db")

	l.Logf("connected in %dms", 12)
	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*events))
	}
	e := (*events)[0]
	if e.Namespace != "app:db" {
		t.Errorf("event namespace = %q", e.Namespace)
	}
	if e.Message != "connected in 12ms" {
		t.Errorf("event message = %q", e.Message)
	}
	if e.Color != l.Color() {
		t.Errorf("event color = %d, logger color = %d", e.Color, l.Color())
	}
}

func TestElapsedBetweenEmits(t *testing.T) {
	clock := &fakeClock{}
	clock.install(t)

	r := NewRegistry()
	events := collectEvents(r)
	r.Enable("app:*")
	l := r.Logger("app:db")

	clock.advance(10 * time.Millisecond)
	l.Log("first")
	clock.advance(50 * time.Millisecond)
	l.Log("second")

	if got := (*events)[0].Elapsed; got != 10*time.Millisecond {
		t.Errorf("first elapsed = %v, want 10ms since creation", got)
	}
	if got := (*events)[1].Elapsed; got != 50*time.Millisecond {
		t.Errorf("second elapsed = %v, want 50ms", got)
	}
}

func TestDisabledCallsDoNotAdvanceBaseline(t *testing.T) {
	clock := &fakeClock{}
	clock.install(t)

	r := NewRegistry()
	events := collectEvents(r)
	r.Enable("app:*")
	l := r.Logger("app:db")
	l.Log("baseline")

	r.Disable()
	clock.advance(30 * time.Millisecond)
	l.Log("swallowed")

	r.Enable("app:*")
	clock.advance(20 * time.Millisecond)
	l.Log("back")

	last := (*events)[len(*events)-1]
	if last.Message != "back" {
		t.Fatalf("unexpected final event %q", last.Message)
	}
	// 30ms disabled + 20ms enabled since the last emitting call.
	if last.Elapsed != 50*time.Millisecond {
		t.Errorf("elapsed = %v, want 50ms measured from the last emit", last.Elapsed)
	}
}

func TestColorAssignment(t *testing.T) {
	r := NewRegistry()
	l := r.Logger("app:db")
	if c := l.Color(); c < 0 || c >= PaletteSize {
		t.Fatalf("color %d outside palette", c)
	}
	if l.Color() != colorFor("app:db") {
		t.Fatal("color must be the deterministic hash of the namespace")
	}
}

func TestLogJoinsArguments(t *testing.T) {
	r := NewRegistry()
	events := collectEvents(r)
	r.Enable("*")
	r.Logger("x").Log("a", 1, true)

	if got, want := (*events)[0].Message, "a 1 true"; got != want {
		t.Fatalf("Log message = %q, want %q", got, want)
	}
}

func TestNoHandlerIsSafe(t *testing.T) {
	r := NewRegistry()
	r.Enable("*")
	r.Logger("x").Log("nobody listening") // must not panic
}
