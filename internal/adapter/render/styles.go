package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Purple   = lipgloss.Color("#7D56F4")
	DimGray  = lipgloss.Color("#626262")
	Amber    = lipgloss.Color("#FFB86C")
	SoftBlue = lipgloss.Color("#8BE9FD")
)

// Styles holds the table styles for one output stream
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Muted      lipgloss.Style
	Annotation lipgloss.Style
	Warning    lipgloss.Style
}

// NewStyles creates styles bound to w's color profile
// Writers that are not terminals get plain text
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(Purple),

		Header: r.NewStyle().
			Bold(true).
			Foreground(SoftBlue),

		Cell: r.NewStyle(),

		Muted: r.NewStyle().
			Foreground(DimGray),

		Annotation: r.NewStyle().
			Italic(true),

		Warning: r.NewStyle().
			Foreground(Amber),
	}
}
