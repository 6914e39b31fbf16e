package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbgkit/dbg/pkg/config"
	"github.com/dbgkit/dbg/pkg/history"
	"github.com/dbgkit/dbg/pkg/render"
	"github.com/urfave/cli/v3"
)

// HistoryCommand creates the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recently applied filters",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to show",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return showHistory(c.Int("limit"))
		},
	}
}

func showHistory(limit int) error {
	path, err := config.GetDefaultHistoryPath()
	if err != nil {
		return fmt.Errorf("locating history database: %w", err)
	}
	h, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() {
		if err := h.Close(); err != nil {
			fmt.Printf("Warning: failed to close history: %v\n", err)
		}
	}()

	entries, err := h.Recent(limit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println(noDataStyle.Render("No filters applied yet."))
		return nil
	}

	var out strings.Builder
	out.WriteString(headerStyle.Render(render.Title("filter history")) + "\n")
	for _, e := range entries {
		out.WriteString(fmt.Sprintf("  %s  %-6s  %s\n",
			e.AppliedAt.Local().Format("2006-01-02 15:04:05"),
			e.Source,
			displayFilter(e.Filter)))
	}
	fmt.Print(out.String())
	return nil
}
