package cmd

import (
	"context"
	"fmt"

	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/urfave/cli/v3"
)

// CheckCommand creates the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Test whether a namespace passes the stored filter",
		ArgsUsage: "<namespace>",
		Description: "Exits 0 when the namespace is enabled, 1 otherwise, so it\n" +
			"composes in shell scripts: `dbg check app:db && ...`",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one namespace argument")
			}
			return checkNamespace(c.String("config"), c.Args().First())
		},
	}
}

func checkNamespace(configPath, namespace string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if debug.Compile(cfg.Filter).Enabled(namespace) {
		fmt.Printf("%s is enabled\n", namespace)
		return nil
	}
	fmt.Printf("%s is disabled\n", namespace)
	return cli.Exit("", 1)
}
