package cmd

import (
	"context"
	"fmt"

	"github.com/dbgkit/dbg/pkg/history"
	"github.com/urfave/cli/v3"
)

// DisableCommand creates the disable command
func DisableCommand() *cli.Command {
	return &cli.Command{
		Name:  "disable",
		Usage: "Clear the stored filter, disabling all namespaces",
		Action: func(ctx context.Context, c *cli.Command) error {
			return disableFilter(c.String("config"))
		},
	}
}

func disableFilter(configPath string) error {
	reg, err := newConfigRegistry(configPath)
	if err != nil {
		return err
	}
	reg.Disable()

	recordHistory("", history.SourceCLI)
	fmt.Println("All namespaces disabled")
	return nil
}
