package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dbgkit/dbg/pkg/config"
	"github.com/dbgkit/dbg/pkg/console"
	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/dbgkit/dbg/pkg/history"
	"github.com/dbgkit/dbg/pkg/render"
	"github.com/urfave/cli/v3"
)

// DemoCommand creates the demo command
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Emit sample namespaced output to preview colors and filtering",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "duration",
				Usage: "How long to keep emitting",
				Value: 3 * time.Second,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDemo(ctx, c.String("config"), c.Duration("duration"))
		},
	}
}

// demoNamespaces is the fixed set of sample loggers.
var demoNamespaces = []string{
	"app:http",
	"app:db:query",
	"app:db:tx",
	"app:cache",
	"worker:fetch",
	"worker:retry",
}

func runDemo(ctx context.Context, configPath string, duration time.Duration) error {
	reg, err := newDemoRegistry(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("Filter: %s\n", displayFilter(reg.Filter()))

	loggers := make([]*debug.Logger, len(demoNamespaces))
	for i, ns := range demoNamespaces {
		loggers[i] = reg.Logger(ns)
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(duration)
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case <-ticker.C:
			l := loggers[i%len(loggers)]
			l.Logf("sample message %d", i)
		}
	}
}

// newDemoRegistry wires a registry the way an application would: config
// store, console handler on stderr, DBG environment override, stored filter
// loaded once at startup.
func newDemoRegistry(configPath string) (*debug.Registry, error) {
	if _, err := loadConfig(configPath); err != nil {
		return nil, err
	}

	reg := debug.NewRegistry()
	reg.SetColorSupport(render.ColorSupported(os.Stderr))
	reg.SetHandler(render.NewConsoleHandler(console.New(os.Stderr)))

	if filter, ok := config.FilterFromEnv(); ok {
		// Apply the override before attaching the store so the stored
		// filter is not clobbered by the environment.
		reg.SetFilter(filter)
		reg.SetStore(config.NewStore(configPath))
		recordHistory(filter, history.SourceEnv)
	} else {
		reg.SetStore(config.NewStore(configPath))
		reg.Refresh()
	}
	return reg, nil
}
