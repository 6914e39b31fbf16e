// Package render turns debug events into terminal output: deterministic
// per-namespace coloring, humanized elapsed-time annotations, and the styled
// tables used by the CLI.
package render

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dbgkit/dbg/pkg/debug"
)

// palette maps core color tokens to ANSI-256 colors. Indexed modulo its
// length so a stale token can never panic.
var palette = []lipgloss.Color{
	"33",  // blue
	"214", // orange
	"86",  // aqua
	"204", // pink
	"118", // green
	"135", // purple
	"208", // dark orange
	"45",  // cyan
	"190", // yellow-green
	"171", // magenta
	"75",  // sky
	"220", // gold
}

var elapsedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240"))

// StyleFor returns the namespace style for a core color token.
func StyleFor(color int) lipgloss.Style {
	if color < 0 {
		color = -color
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(palette[color%len(palette)])
}

// ColorSupported reports whether the writer's fd is a terminal and coloring
// has not been vetoed via NO_COLOR.
func ColorSupported(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Humanize renders an elapsed duration the compact way debug output wants
// it: +0ms up to a second, then +Ns, +Nm, +Nh.
func Humanize(d time.Duration) string {
	switch {
	case d < 0:
		return "+0ms"
	case d < time.Second:
		return fmt.Sprintf("+%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("+%ds", int(d.Seconds()+0.5))
	case d < time.Hour:
		return fmt.Sprintf("+%dm", int(d.Minutes()+0.5))
	default:
		return fmt.Sprintf("+%dh", int(d.Hours()+0.5))
	}
}

// Title upper-cases the first letter of each word for section headers.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

var _ debug.Handler = (*ConsoleHandler)(nil)
