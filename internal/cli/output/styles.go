package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the text styles used in text mode.
type Styles struct {
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Bold      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Muted     lipgloss.Style
	Name      lipgloss.Style
}

// NewStyles creates the style set for a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:    r.NewStyle().Bold(true).Underline(true),
		Subheader: r.NewStyle().Bold(true),
		Bold:      r.NewStyle().Bold(true),
		Success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Info:      r.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Name:      r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}
