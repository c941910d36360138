package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status colors
var (
	Success   = lipgloss.Color("#10B981") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	TextMuted = lipgloss.Color("#6B7280")
)

// Styles holds the report styles bound to one output stream.
type Styles struct {
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Muted lipgloss.Style
}

// New returns styles rendered for w. Writers that are not terminals
// (pipes, files, buffers) get plain text.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Pass: r.NewStyle().
			Foreground(Success).
			Bold(true),
		Fail: r.NewStyle().
			Foreground(Error).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(TextMuted),
	}
}
