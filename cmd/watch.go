package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/dbgkit/dbg/pkg/history"
	"github.com/dbgkit/dbg/pkg/hotkey"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// WatchCommand creates the watch command
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Emit sample output and re-apply the filter when the config file changes",
		Description: "Runs the demo loggers and follows the config file, so edits to\n" +
			"the stored filter take effect live. With hotkey enabled in the\n" +
			"config, typing the sequence toggles all output off and back on.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return watch(ctx, c.String("config"))
		},
	}
}

func watch(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	reg, err := newDemoRegistry(configPath)
	if err != nil {
		return err
	}
	fmt.Printf("Filter: %s\n", displayFilter(reg.Filter()))
	fmt.Printf("Watching config file for changes: %s\n", configPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Printf("Warning: failed to close config file watcher: %v", err)
		}
	}()
	if err := watcher.Add(configPath); err != nil {
		return fmt.Errorf("watching config file %s: %w", configPath, err)
	}

	// interrupt stays nil (blocking forever in the select) when the hotkey
	// listener is off or unavailable.
	var interrupt <-chan struct{}
	if cfg.Hotkey {
		stop, intCh, err := startHotkey(cfg.HotkeySequence, reg)
		if err != nil {
			log.Printf("Warning: hotkey listener unavailable: %v", err)
		} else {
			// Raw-mode restore runs here, on the goroutine that is
			// guaranteed to unwind before the process exits.
			defer stop()
			interrupt = intCh
		}
	}

	// Demo loggers so filter changes are visible immediately.
	loggers := make([]*debug.Logger, len(demoNamespaces))
	for i, ns := range demoNamespaces {
		loggers[i] = reg.Logger(ns)
	}
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			fmt.Println("\nShutting down...")
			return nil
		case <-interrupt:
			// Ctrl+C read from the raw-mode terminal; ISIG is off so it
			// never reaches sigCh.
			fmt.Println("\nShutting down...")
			return nil
		case <-ticker.C:
			loggers[i%len(loggers)].Logf("tick %d", i)
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			// Editors often replace the file, so react to rename and remove
			// as well as plain writes.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					time.Sleep(200 * time.Millisecond)
					if _, err := os.Stat(configPath); os.IsNotExist(err) {
						log.Printf("Config file removed and not replaced, keeping current filter")
						continue
					}
					if err := watcher.Add(configPath); err != nil {
						log.Printf("Warning: failed to re-add config file to watcher: %v", err)
					}
				} else {
					time.Sleep(100 * time.Millisecond)
				}
				reg.Refresh()
				recordHistory(reg.Filter(), history.SourceWatch)
				log.Printf("Config file changed, active filter: %s", displayFilter(reg.Filter()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			log.Printf("Config file watcher error: %v", err)
		}
	}
}

// startHotkey wires the keyboard toggle: the sequence flips between the
// active filter and everything-off. The filter in force before a toggle-off
// is remembered so the next toggle brings it back.
//
// The raw-mode state is owned here, not by the listener goroutine: the
// returned stop function restores the terminal and must be deferred on the
// watch loop's goroutine, so the terminal is sane again no matter how watch
// exits. The returned channel receives once when Ctrl+C is read from the
// raw-mode terminal.
func startHotkey(sequence string, reg *debug.Registry) (stop func(), interrupt <-chan struct{}, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil, fmt.Errorf("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("entering raw mode: %w", err)
	}

	var saved string
	detector := hotkey.New(sequence, hotkey.DefaultWindow, func() {
		if active := reg.Filter(); active != "" {
			saved = active
			reg.Disable()
			recordHistory("", history.SourceHotkey)
			log.Printf("Hotkey: all namespaces disabled")
			return
		}
		reg.SetFilter(saved)
		recordHistory(saved, history.SourceHotkey)
		log.Printf("Hotkey: filter restored to %s", displayFilter(saved))
	})

	intCh := make(chan struct{}, 1)
	go func() {
		switch err := detector.Listen(os.Stdin); {
		case errors.Is(err, hotkey.ErrInterrupt):
			intCh <- struct{}{}
		case err != nil:
			log.Printf("Warning: hotkey listener stopped: %v", err)
		}
	}()

	stop = func() {
		detector.Stop()
		_ = term.Restore(fd, state)
	}
	return stop, intCh, nil
}
