package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles derived from the active theme.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Hint     lipgloss.Style
	Panel    lipgloss.Style
	Plot     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Marker:   lipgloss.NewStyle().Foreground(t.Primary),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Value:    lipgloss.NewStyle().Foreground(t.Accent),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Plot: lipgloss.NewStyle().Foreground(t.Secondary),
	}
}

// slider renders a parameter as a filled track with the current value
// marked, sized to width characters.
func (s Styles) slider(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width-1))
	return s.Value.Render(strings.Repeat("━", filled)+"█") +
		s.Muted.Render(strings.Repeat("─", width-1-filled))
}

// separator renders a dim horizontal rule.
func (s Styles) separator(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
