package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/dbgkit/dbg/pkg/render"
	"github.com/urfave/cli/v3"
)

// PatternsCommand creates the patterns command
func PatternsCommand() *cli.Command {
	return &cli.Command{
		Name:      "patterns",
		Usage:     "Suggest wildcard filters for the given namespaces",
		ArgsUsage: "<namespace...>",
		Description: "Derives candidate filter patterns by truncating each\n" +
			"namespace to its first one and two segments, e.g.\n" +
			"   dbg patterns app:db:query app:http\n" +
			"suggests app:*, app:db:* and app:http:*.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return fmt.Errorf("pass at least one namespace")
			}
			return suggestPatterns(c.String("config"), c.Args().Slice())
		},
	}
}

func suggestPatterns(configPath string, namespaces []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// A scratch registry derives the suggestions exactly the way a running
	// application would from its registered namespaces.
	reg := debug.NewRegistry()
	for _, ns := range namespaces {
		reg.Logger(ns)
	}

	// Mark the namespaces already enabled by the stored filter so users see
	// what a suggestion would add.
	rules := debug.Compile(cfg.Filter)
	var out strings.Builder
	out.WriteString(headerStyle.Render(render.Title("suggested patterns")) + "\n")
	for _, p := range reg.SuggestPatterns() {
		out.WriteString(fmt.Sprintf("  %s\n", p))
	}
	out.WriteString(headerStyle.Render(render.Title("namespaces")) + "\n")
	for _, ns := range reg.Namespaces() {
		mark := disabledStyle.Render("✗")
		if rules.Enabled(ns) {
			mark = enabledStyle.Render("✓")
		}
		out.WriteString(fmt.Sprintf("  %s %s\n", mark, ns))
	}
	fmt.Print(out.String())
	return nil
}
