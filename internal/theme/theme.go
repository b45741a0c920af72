package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the goal form.
type Theme struct {
	Name string

	Text     lipgloss.Color
	Label    lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Border   lipgloss.Color
	Focus    lipgloss.Color
	Selected lipgloss.Color
}

var (
	CatppuccinMocha = Theme{
		Name:     "Catppuccin Mocha",
		Text:     lipgloss.Color("#cdd6f4"),
		Label:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#f5c2e7"),
		Muted:    lipgloss.Color("#6c7086"),
		Error:    lipgloss.Color("#f38ba8"),
		Border:   lipgloss.Color("#45475a"),
		Focus:    lipgloss.Color("#89b4fa"),
		Selected: lipgloss.Color("#a6e3a1"),
	}

	Dracula = Theme{
		Name:     "Dracula",
		Text:     lipgloss.Color("#f8f8f2"),
		Label:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#ff79c6"),
		Muted:    lipgloss.Color("#6272a4"),
		Error:    lipgloss.Color("#ff5555"),
		Border:   lipgloss.Color("#44475a"),
		Focus:    lipgloss.Color("#bd93f9"),
		Selected: lipgloss.Color("#50fa7b"),
	}

	SolarizedLight = Theme{
		Name:     "Solarized Light",
		Text:     lipgloss.Color("#657b83"),
		Label:    lipgloss.Color("#93a1a1"),
		Accent:   lipgloss.Color("#d33682"),
		Muted:    lipgloss.Color("#93a1a1"),
		Error:    lipgloss.Color("#dc322f"),
		Border:   lipgloss.Color("#eee8d5"),
		Focus:    lipgloss.Color("#268bd2"),
		Selected: lipgloss.Color("#859900"),
	}
)

var byKey = map[string]Theme{
	"catppuccin-mocha": CatppuccinMocha,
	"dracula":          Dracula,
	"solarized-light":  SolarizedLight,
}

// GetTheme returns a theme by key, defaulting to Catppuccin Mocha if not found
func GetTheme(key string) Theme {
	if theme, ok := byKey[key]; ok {
		return theme
	}
	return CatppuccinMocha
}

// Styles are the rendered styles of a theme.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Field    lipgloss.Style
	Focused  lipgloss.Style
	Option   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

func (t Theme) Styles() Styles {
	field := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(28)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Label:    lipgloss.NewStyle().Foreground(t.Label),
		Field:    field,
		Focused:  field.BorderForeground(t.Focus),
		Option:   lipgloss.NewStyle().Foreground(t.Text),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(t.Focus),
		Selected: lipgloss.NewStyle().Foreground(t.Selected),
		Help:     lipgloss.NewStyle().Foreground(t.Muted),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}
