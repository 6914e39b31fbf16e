package debug

import (
	"sort"
	"strings"
	"sync"
)

// Store is the persistence adapter the registry consults for the filter
// string. Read reports absence with ok=false; Write is best-effort and must
// never block or fail loudly.
type Store interface {
	Read() (filter string, ok bool)
	Write(filter string)
}

// Registry owns every logger instance created through it and the rule set
// they are evaluated against. One instance per namespace, never evicted.
type Registry struct {
	mu           sync.Mutex
	rules        RuleSet
	loggers      map[string]*Logger
	order        []string
	handler      Handler
	store        Store
	colorSupport bool
}

// NewRegistry returns an empty registry with no rules, no handler and no
// store. Loggers created before a handler is attached stay silent.
func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
	}
}

// SetHandler attaches the presentation layer all loggers emit through.
func (r *Registry) SetHandler(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = h
}

// SetStore attaches the persistence adapter consulted by Refresh and written
// back to on every rule change.
func (r *Registry) SetStore(s Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = s
}

// SetColorSupport records whether the output surface can render color. The
// flag is passed through to the presentation layer on every event.
func (r *Registry) SetColorSupport(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colorSupport = ok
}

// Logger returns the instance for the namespace, creating it on first
// request. A new instance is stamped against the rules in force at creation
// time; an existing one is returned untouched, enabled flag included.
func (r *Registry) Logger(namespace string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[namespace]; ok {
		return l
	}
	l := &Logger{
		namespace: namespace,
		color:     colorFor(namespace),
		reg:       r,
		enabled:   r.rules.Enabled(namespace),
		last:      timeNow(),
	}
	r.loggers[namespace] = l
	r.order = append(r.order, namespace)
	return l
}

// Enable compiles the filter and appends its rules to the active set.
// Repeated calls accumulate; use SetFilter or Disable to start over. The
// resulting filter is written back to the store.
func (r *Registry) Enable(filter string) {
	r.mu.Lock()
	r.rules = r.rules.Append(Compile(filter))
	r.restamp()
	r.persist()
	r.mu.Unlock()
}

// SetFilter discards the active rules and installs the compiled filter in
// their place, then re-stamps every registered logger.
func (r *Registry) SetFilter(filter string) {
	r.mu.Lock()
	r.rules = Compile(filter)
	r.restamp()
	r.persist()
	r.mu.Unlock()
}

// Disable clears both rule lists and force-disables every registered logger.
func (r *Registry) Disable() {
	r.mu.Lock()
	r.rules = RuleSet{}
	for _, l := range r.loggers {
		l.enabled = false
	}
	r.persist()
	r.mu.Unlock()
}

// IsEnabled probes the active rules for a namespace without creating or
// touching any logger instance.
func (r *Registry) IsEnabled(namespace string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rules.Enabled(namespace)
}

// Filter returns the active rule set rendered as a filter string.
func (r *Registry) Filter() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rules.String()
}

// Refresh re-reads the persistence adapter and replaces the active rule set
// with whatever it holds now. A missing or unreadable value clears the rules.
func (r *Registry) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filter string
	if r.store != nil {
		if v, ok := r.store.Read(); ok {
			filter = v
		}
	}
	r.rules = Compile(filter)
	r.restamp()
}

// Namespaces returns every registered namespace in creation order.
func (r *Registry) Namespaces() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// SuggestPatterns derives wildcard filter candidates from the registered
// namespaces by truncating each to its first one and two colon-delimited
// segments and appending a wildcard segment. Deduplicated and sorted; purely
// advisory for configuration surfaces.
func (r *Registry) SuggestPatterns() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	for _, ns := range r.order {
		segments := strings.Split(ns, ":")
		seen[segments[0]+":*"] = struct{}{}
		if len(segments) > 1 {
			seen[segments[0]+":"+segments[1]+":*"] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// restamp recomputes every logger's enabled flag against the active rules.
// Callers hold r.mu.
func (r *Registry) restamp() {
	for _, l := range r.loggers {
		l.enabled = r.rules.Enabled(l.namespace)
	}
}

// persist writes the active filter back to the store, if one is attached.
// Callers hold r.mu.
func (r *Registry) persist() {
	if r.store != nil {
		r.store.Write(r.rules.String())
	}
}
