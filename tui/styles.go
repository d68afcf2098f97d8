package tui

import (
	"github.com/charmbracelet/lipgloss"

	"slotgrid/config"
	"slotgrid/grid"
)

// Styles are the lipgloss styles derived from the configured colors.
type Styles struct {
	Tags      map[grid.Tag]lipgloss.Color
	Highlight lipgloss.Color
	Legend    lipgloss.Style
	Title     lipgloss.Style
}

func NewStyles(c config.Colors) Styles {
	legend := lipgloss.Color(c.Legend)
	return Styles{
		Tags: map[grid.Tag]lipgloss.Color{
			grid.Empty: lipgloss.Color(c.Empty),
			grid.Black: lipgloss.Color(c.Black),
			grid.White: lipgloss.Color(c.White),
		},
		Highlight: lipgloss.Color(c.Highlight),
		Legend: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(legend).
			Foreground(legend),
		Title: lipgloss.NewStyle().Bold(true).Foreground(legend),
	}
}

func (s Styles) cell(tag grid.Tag, selected bool, width, height int) lipgloss.Style {
	st := lipgloss.NewStyle().Width(width).Height(height)
	if selected {
		return st.Background(s.Highlight).Foreground(s.Tags[tag]).Bold(true)
	}
	return st.Background(s.Tags[tag])
}
