package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors around the canvas.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#ffff00"),
		Secondary:  lipgloss.Color("#00ccff"),
		Accent:     lipgloss.Color("#ff9900"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#cc6600"),
		Secondary:  lipgloss.Color("#0055aa"),
		Accent:     lipgloss.Color("#aa00aa"),
		Background: lipgloss.Color("#f0f8ff"),
		Text:       lipgloss.Color("#111111"),
		Muted:      lipgloss.Color("#778899"),
	}

	Themes = []Theme{ThemeDark, ThemeLight}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}
