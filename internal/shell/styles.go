package shell

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

type styles struct {
	title   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	notice  lipgloss.Style
}

// newStyles binds the palette to the renderer of the shell's output, so that
// colour is dropped when the output is not a terminal.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(accent),
		dim:     r.NewStyle().Foreground(dim),
		success: r.NewStyle().Foreground(success),
		failure: r.NewStyle().Foreground(danger),
		notice:  r.NewStyle().Foreground(warning),
	}
}
