package main

import (
	"context"
	"log"
	"os"

	"github.com/dbgkit/dbg/cmd"
	"github.com/dbgkit/dbg/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "dbg",
		Usage: "Manage namespaced debug logging filters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		},
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.EnableCommand(),
			cmd.DisableCommand(),
			cmd.StatusCommand(),
			cmd.CheckCommand(),
			cmd.PatternsCommand(),
			cmd.WatchCommand(),
			cmd.DemoCommand(),
			cmd.HistoryCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
