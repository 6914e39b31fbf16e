package config

// Store adapts the config file to the core's persistence contract
// (debug.Store). Both directions are best-effort: a missing or unreadable
// file reads as absence and failed writes are dropped, so a restricted
// environment can never break logger creation or output.
type Store struct {
	path string
}

// NewStore returns a store backed by the config file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the stored filter string. ok is false when no usable value
// exists, which callers treat as the empty filter.
func (s *Store) Read() (string, bool) {
	cfg, err := LoadConfig(s.path)
	if err != nil {
		return "", false
	}
	return cfg.Filter, true
}

// Write persists the filter string, preserving the file's other settings.
// Errors are swallowed.
func (s *Store) Write(filter string) {
	cfg, err := LoadConfig(s.path)
	if err != nil {
		cfg = GetDefaultConfig()
	}
	cfg.Filter = filter
	_ = cfg.SaveConfig(s.path)
}
