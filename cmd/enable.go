package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbgkit/dbg/pkg/config"
	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/dbgkit/dbg/pkg/history"
	"github.com/urfave/cli/v3"
)

// EnableCommand creates the enable command
func EnableCommand() *cli.Command {
	return &cli.Command{
		Name:      "enable",
		Usage:     "Append filter patterns to the stored filter",
		ArgsUsage: "<filter>",
		Description: "Appends the given patterns to the persisted filter, e.g.\n" +
			"   dbg enable 'app:*,-app:verbose:*'\n" +
			"Repeated enables accumulate; use `dbg disable` to start over.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "Replace the stored filter instead of appending",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return fmt.Errorf("missing filter argument")
			}
			filter := strings.Join(c.Args().Slice(), ",")
			return enableFilter(c.String("config"), filter, c.Bool("replace"))
		},
	}
}

// enableFilter applies the filter through a registry wired to the config
// store, so append/replace semantics and persistence match the library's.
func enableFilter(configPath, filter string, replace bool) error {
	reg, err := newConfigRegistry(configPath)
	if err != nil {
		return err
	}
	if replace {
		reg.SetFilter(filter)
	} else {
		reg.Refresh() // pick up the stored rules first, then append
		reg.Enable(filter)
	}

	active := reg.Filter()
	recordHistory(active, history.SourceCLI)
	fmt.Printf("Active filter: %s\n", displayFilter(active))
	return nil
}

// displayFilter renders an empty filter recognizably.
func displayFilter(filter string) string {
	if filter == "" {
		return "(empty, all namespaces disabled)"
	}
	return filter
}

// newConfigRegistry builds a registry backed by the config-file store.
func newConfigRegistry(configPath string) (*debug.Registry, error) {
	if _, err := loadConfig(configPath); err != nil {
		return nil, err
	}
	reg := debug.NewRegistry()
	reg.SetStore(config.NewStore(configPath))
	return reg, nil
}
