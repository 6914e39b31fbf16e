// Package cmd implements the dbg CLI commands. The CLI is the interactive
// configuration surface for the debug core: it edits the persisted filter
// that applications pick up through their own registries.
package cmd

import (
	"fmt"
	"log"

	"github.com/dbgkit/dbg/pkg/config"
	"github.com/dbgkit/dbg/pkg/history"
)

// loadConfig reads the config file, falling back to defaults when missing.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// recordHistory appends an applied filter to the history database. Failures
// only warn; history must never block applying a filter.
func recordHistory(filter, source string) {
	path, err := config.GetDefaultHistoryPath()
	if err != nil {
		log.Printf("Warning: history unavailable: %v", err)
		return
	}
	h, err := history.Open(path)
	if err != nil {
		log.Printf("Warning: failed to open history: %v", err)
		return
	}
	defer func() {
		if err := h.Close(); err != nil {
			log.Printf("Warning: failed to close history: %v", err)
		}
	}()
	if err := h.Record(filter, source); err != nil {
		log.Printf("Warning: failed to record history: %v", err)
	}
}
