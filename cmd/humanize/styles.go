package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles renders terminal output. The renderer detects the color profile of
// its writer, so pipes and files get plain text.
type styles struct {
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		added:   r.NewStyle().Foreground(lipgloss.Color("2")), // green
		removed: r.NewStyle().Foreground(lipgloss.Color("1")), // red
		hunk:    r.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		header:  r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("8")), // gray
	}
}

// diff colors a unified diff line by line.
func (s styles) diff(text string) string {
	lines := strings.SplitAfter(text, "\n")

	var b strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			body = s.header.Render(body)
		case strings.HasPrefix(body, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = s.added.Render(body)
		case strings.HasPrefix(body, "-"):
			body = s.removed.Render(body)
		}

		b.WriteString(body + nl)
	}

	return b.String()
}
