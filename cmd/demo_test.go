package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dbgkit/dbg/pkg/config"
	"github.com/dbgkit/dbg/pkg/history"
)

func TestDemoRegistryEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvVar, "app:*")

	configPath := filepath.Join(dir, "config.toml")
	reg, err := newDemoRegistry(configPath)
	if err != nil {
		t.Fatalf("newDemoRegistry() error = %v", err)
	}

	if got := reg.Filter(); got != "app:*" {
		t.Errorf("Filter() = %q, want env override %q", got, "app:*")
	}

	// The override is session-scoped and must not leak into the config file.
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Errorf("config file written for env override, stat err = %v", err)
	}

	// Env-applied filters show up in history like every other source.
	histPath, err := config.GetDefaultHistoryPath()
	if err != nil {
		t.Fatalf("GetDefaultHistoryPath() error = %v", err)
	}
	h, err := history.Open(histPath)
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	defer h.Close()

	entries, err := h.Recent(5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Recent() returned %d entries, want 1", len(entries))
	}
	if entries[0].Filter != "app:*" || entries[0].Source != history.SourceEnv {
		t.Errorf("entry = %q/%q, want %q/%q",
			entries[0].Filter, entries[0].Source, "app:*", history.SourceEnv)
	}
}

func TestDemoRegistryLoadsStoredFilter(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvVar, "")
	os.Unsetenv(config.EnvVar)

	configPath := filepath.Join(dir, "config.toml")
	cfg := config.GetDefaultConfig()
	cfg.Filter = "worker:*"
	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	reg, err := newDemoRegistry(configPath)
	if err != nil {
		t.Fatalf("newDemoRegistry() error = %v", err)
	}
	if got := reg.Filter(); got != "worker:*" {
		t.Errorf("Filter() = %q, want stored %q", got, "worker:*")
	}
}
