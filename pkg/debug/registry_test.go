package debug

import (
	"reflect"
	"testing"
)

// memStore is an in-memory persistence adapter for tests.
type memStore struct {
	filter string
	ok     bool
	writes []string
}

func (s *memStore) Read() (string, bool) { return s.filter, s.ok }

func (s *memStore) Write(filter string) {
	s.filter = filter
	s.ok = true
	s.writes = append(s.writes, filter)
}

func TestLoggerIdentity(t *testing.T) {
	r := NewRegistry()
	a := r.Logger("app:db")
	b := r.Logger("app:db")
	if a != b {
		t.Fatal("same namespace must return the same instance")
	}
	if a.Color() != b.Color() {
		t.Fatal("color must be stable across lookups")
	}
}

func TestCreationStampsAgainstCurrentRules(t *testing.T) {
	r := NewRegistry()
	before := r.Logger("app:db")
	if before.Enabled() {
		t.Fatal("logger created with no rules should start disabled")
	}

	r.Enable("app:*")
	if !before.Enabled() {
		t.Fatal("existing logger should be re-stamped by Enable")
	}

	after := r.Logger("app:cache")
	if !after.Enabled() {
		t.Fatal("logger created after Enable should be stamped enabled")
	}
	if r.Logger("other:x").Enabled() {
		t.Fatal("non-matching namespace should stay disabled")
	}
}

func TestEnableAccumulates(t *testing.T) {
	r := NewRegistry()
	r.Enable("app:*")
	r.Enable("other:*")
	if !r.IsEnabled("app:x") {
		t.Fatal("first Enable's rules must survive the second call")
	}
	if !r.IsEnabled("other:x") {
		t.Fatal("second Enable's rules must be in force")
	}
}

func TestSetFilterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Enable("app:*")
	r.SetFilter("other:*")
	if r.IsEnabled("app:x") {
		t.Fatal("SetFilter must discard prior rules")
	}
	if !r.IsEnabled("other:x") {
		t.Fatal("SetFilter's own rules must be in force")
	}
}

func TestDisableClearsEverything(t *testing.T) {
	r := NewRegistry()
	l := r.Logger("app:db")
	r.Enable("app:*,other:*")
	r.Disable()

	if l.Enabled() {
		t.Fatal("Disable must force existing loggers off")
	}
	for _, ns := range []string{"app:db", "app:x", "other:x"} {
		if r.IsEnabled(ns) {
			t.Errorf("IsEnabled(%q) should be false after Disable", ns)
		}
	}
	if got := r.Filter(); got != "" {
		t.Fatalf("rule lists should be empty after Disable, filter = %q", got)
	}
}

func TestReEnableAfterDisableStartsFresh(t *testing.T) {
	r := NewRegistry()
	r.Enable("app:*")
	r.Disable()
	r.Enable("other:*")
	if r.IsEnabled("app:x") {
		t.Fatal("rules enabled before Disable must not leak through")
	}
}

func TestNamespacesCreationOrder(t *testing.T) {
	r := NewRegistry()
	for _, ns := range []string{"zeta", "app:db", "app:cache"} {
		r.Logger(ns)
	}
	r.Logger("app:db") // repeat lookup must not duplicate
	want := []string{"zeta", "app:db", "app:cache"}
	if got := r.Namespaces(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Namespaces() = %v, want %v", got, want)
	}
}

func TestSuggestPatterns(t *testing.T) {
	r := NewRegistry()
	for _, ns := range []string{"app:db:query", "app:db:tx", "app:http", "worker"} {
		r.Logger(ns)
	}
	want := []string{"app:*", "app:db:*", "app:http:*", "worker:*"}
	if got := r.SuggestPatterns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("SuggestPatterns() = %v, want %v", got, want)
	}
}

func TestRefreshReplacesFromStore(t *testing.T) {
	r := NewRegistry()
	store := &memStore{filter: "app:*", ok: true}
	r.SetStore(store)
	l := r.Logger("other:db")

	r.Refresh()
	if !r.IsEnabled("app:x") || l.Enabled() {
		t.Fatal("Refresh should install exactly the stored filter")
	}

	store.filter = "other:*"
	r.Refresh()
	if r.IsEnabled("app:x") {
		t.Fatal("Refresh must replace, not append")
	}
	if !l.Enabled() {
		t.Fatal("Refresh should re-stamp existing loggers")
	}
}

func TestRefreshWithAbsentValueClearsRules(t *testing.T) {
	r := NewRegistry()
	r.SetStore(&memStore{ok: false})
	r.Enable("app:*")
	r.Refresh()
	if r.IsEnabled("app:x") {
		t.Fatal("absent stored value should fall back to the empty filter")
	}
}

func TestRefreshWithoutStore(t *testing.T) {
	r := NewRegistry()
	r.Enable("app:*")
	r.Refresh() // must not panic, treats missing store as absence
	if r.IsEnabled("app:x") {
		t.Fatal("refresh without a store should clear the rules")
	}
}

func TestEnablePersistsFilter(t *testing.T) {
	r := NewRegistry()
	store := &memStore{}
	r.SetStore(store)

	r.Enable("app:*")
	r.Enable("-app:noise")
	r.Disable()

	want := []string{"app:*", "app:*,-app:noise", ""}
	if !reflect.DeepEqual(store.writes, want) {
		t.Fatalf("store writes = %v, want %v", store.writes, want)
	}
}

func TestDefaultRegistryIsShared(t *testing.T) {
	if Default() != std {
		t.Fatal("Default must expose the package registry")
	}
	l := For("registrytest:pkg")
	if l != For("registrytest:pkg") {
		t.Fatal("package-level For must memoize per namespace")
	}
}
