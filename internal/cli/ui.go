package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a writer so that colors are only emitted
// when the writer is a terminal.
type styles struct {
	header    lipgloss.Style
	highlight lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		header:    r.NewStyle().Bold(true),
		highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFAA00")),
	}
}
