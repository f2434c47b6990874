// Package terminal echoes rendered cues to a console as they are produced.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/palette"
)

// Echo prints each rendered entry followed by a newline. On a terminal the
// entry is tinted with the speaker's palette color.
type Echo struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	// Styled enables ANSI coloring. New sets it when w is a terminal.
	Styled bool
}

// New creates an Echo writing to w.
func New(w io.Writer) *Echo {
	return &Echo{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		Styled:   isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}

// Entry writes the rendered form of chunk c.
func (e *Echo) Entry(c core.Chunk, entry string) error {
	if e.Styled {
		entry = e.colorize(c, entry)
	}
	_, err := fmt.Fprintln(e.w, entry)
	return err
}

// colorize styles line by line so lipgloss does not pad multi-line cues to a
// common width.
func (e *Echo) colorize(c core.Chunk, entry string) string {
	var fg lipgloss.TerminalColor = colorDim
	if hex, ok := palette.Color(c.Speaker); ok {
		fg = lipgloss.Color(hex)
	}
	text := e.renderer.NewStyle().Foreground(fg)
	bold := e.renderer.NewStyle().Foreground(colorIndex).Bold(true)

	lines := strings.Split(entry, "\n")
	for i, line := range lines {
		switch {
		case line == "":
			continue
		case i == 0 && isDigits(line):
			lines[i] = bold.Render(line)
		default:
			lines[i] = text.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
