// Package debug implements namespaced debug logging with wildcard filter
// patterns, in the style of the classic DEBUG=app:* environment toggle.
//
// Loggers are identified by hierarchical colon-delimited namespaces
// (app:module:action). A filter string of comma or whitespace separated
// tokens selects which namespaces produce output: `*` matches any run of
// characters, a leading `-` excludes. Excludes always win, and an empty
// filter disables everything.
//
//	l := debug.For("app:db")
//	debug.Enable("app:*,-app:db:verbose")
//	l.Logf("connected in %v", took)
//
// Every namespace maps to exactly one logger for the life of the process.
// Enabling or disabling retroactively re-stamps all existing loggers, so a
// handle can be created long before anyone decides it should speak.
package debug

// std is the process-wide registry behind the package-level functions.
// Collaborators that want isolation construct their own Registry instead.
var std = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return std
}

// For returns the default registry's logger for the namespace, creating it on
// first use.
func For(namespace string) *Logger {
	return std.Logger(namespace)
}

// Enable appends the filter's rules to the default registry's active set.
// Calling Enable twice accumulates rules from both calls.
func Enable(filter string) {
	std.Enable(filter)
}

// Disable clears the default registry's rules and silences every logger.
func Disable() {
	std.Disable()
}

// SetFilter replaces the default registry's rules with the compiled filter.
func SetFilter(filter string) {
	std.SetFilter(filter)
}

// IsEnabled probes the default registry's rules for a namespace.
func IsEnabled(namespace string) bool {
	return std.IsEnabled(namespace)
}

// Refresh re-reads the default registry's store and replaces its rules.
func Refresh() {
	std.Refresh()
}

// Namespaces lists the default registry's namespaces in creation order.
func Namespaces() []string {
	return std.Namespaces()
}

// SuggestPatterns derives wildcard filter candidates from the default
// registry's namespaces.
func SuggestPatterns() []string {
	return std.SuggestPatterns()
}
