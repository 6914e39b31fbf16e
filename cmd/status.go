package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dbgkit/dbg/pkg/debug"
	"github.com/dbgkit/dbg/pkg/render"
	"github.com/urfave/cli/v3"
)

// Styles shared by the status and patterns commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	enabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("118"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// StatusCommand creates the status command
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the stored filter and probe namespaces against it",
		ArgsUsage: "[namespace...]",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStatus(c.String("config"), c.Args().Slice())
		},
	}
}

func showStatus(configPath string, namespaces []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render("dbg "+render.Title("status")) + "\n\n")
	out.WriteString(fmt.Sprintf("Config:  %s\n", configPath))
	out.WriteString(fmt.Sprintf("Filter:  %s\n", displayFilter(cfg.Filter)))
	out.WriteString(fmt.Sprintf("Color:   %v\n", cfg.Color))
	out.WriteString(fmt.Sprintf("Hotkey:  %v", cfg.Hotkey))
	if cfg.Hotkey {
		out.WriteString(fmt.Sprintf(" (sequence %q)", cfg.HotkeySequence))
	}
	out.WriteString("\n")

	if len(namespaces) > 0 {
		rules := debug.Compile(cfg.Filter)
		out.WriteString(headerStyle.Render(render.Title("namespace probes")) + "\n")
		for _, ns := range namespaces {
			mark := disabledStyle.Render("✗")
			if rules.Enabled(ns) {
				mark = enabledStyle.Render("✓")
			}
			out.WriteString(fmt.Sprintf("  %s %s\n", mark, ns))
		}
	} else {
		out.WriteString(noDataStyle.Render("Pass namespaces to probe them, e.g. `dbg status app:db app:http`") + "\n")
	}

	fmt.Print(out.String())
	return nil
}
