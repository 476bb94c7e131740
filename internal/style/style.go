// Package style colours terminal output by event kind.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/rce/internal/model"
)

var kindColors = map[model.Kind]lipgloss.Color{
	model.Birthday:   lipgloss.Color("1"), // red
	model.SaintDay:   lipgloss.Color("4"), // blue
	model.Wedding:    lipgloss.Color("2"), // green
	model.HolidayDay: lipgloss.Color("3"), // yellow
	model.SpecialDay: lipgloss.Color("6"), // cyan
}

// Styler renders kind names, optionally in colour.
type Styler struct {
	color bool
	dim   lipgloss.Style
}

// New returns a Styler. With color false every method returns plain text.
func New(color bool) Styler {
	return Styler{color: color, dim: lipgloss.NewStyle().Faint(true)}
}

// Kind renders the human-readable kind title.
func (s Styler) Kind(k model.Kind) string {
	if !s.color {
		return k.Title()
	}
	return lipgloss.NewStyle().Foreground(kindColors[k]).Render(k.Title())
}

// Dim renders secondary text such as countdowns.
func (s Styler) Dim(text string) string {
	if !s.color {
		return text
	}
	return s.dim.Render(text)
}
