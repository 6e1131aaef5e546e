package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orrery/internal/orrery"
)

// Styles are the chrome styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Button   lipgloss.Style
	Switch   lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	KeyHint  lipgloss.Style
	Tooltip  lipgloss.Style
	Panel    lipgloss.Style
	Bar      lipgloss.Style
	BarEmpty lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Secondary).
			Padding(0, 1),
		Switch:   lipgloss.NewStyle().Foreground(t.Accent),
		Label:    lipgloss.NewStyle().Foreground(t.Text),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Value:    lipgloss.NewStyle().Foreground(t.Secondary),
		KeyHint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Tooltip: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Bar:      lipgloss.NewStyle().Foreground(t.Secondary),
		BarEmpty: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// GradientText colors each rune along a gradient between two colors.
func GradientText(text string, from, to orrery.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := from.RGB()
	er, eg, eb := to.RGB()

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := orrery.RGB(lerp8(sr, er, t), lerp8(sg, eg, t), lerp8(sb, eb, t))
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
	}
	return result.String()
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

// SliderBar renders a slider track of the given width.
func (s Styles) SliderBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return s.Bar.Render(strings.Repeat("█", filled)) + s.BarEmpty.Render(strings.Repeat("░", width-filled))
}
