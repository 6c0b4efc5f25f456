package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bauhaus/internal/tile"
)

// Theme defines the tile palette and the chrome colors around it.
type Theme struct {
	Name    string
	Palette tile.Palette
	Dot     string
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeBauhaus = Theme{
		Name:    "bauhaus",
		Palette: tile.Bauhaus,
		Dot:     "#1A1A1A",
		Text:    lipgloss.Color("#1A1A1A"),
		Muted:   lipgloss.Color("#8C8377"),
		Accent:  lipgloss.Color("#F20505"),
	}

	ThemeMondrian = Theme{
		Name: "mondrian",
		Palette: tile.Palette{
			Colors: []string{
				"#D40920", "#1356A2", "#F7D842", "#121212",
				tile.Transparent, tile.Transparent, tile.Transparent,
			},
			Background: "#F2F2F2",
		},
		Dot:    "#121212",
		Text:   lipgloss.Color("#121212"),
		Muted:  lipgloss.Color("#777777"),
		Accent: lipgloss.Color("#1356A2"),
	}

	ThemeMono = Theme{
		Name: "mono",
		Palette: tile.Palette{
			Colors: []string{
				"#111111", "#3A3A3A", "#6B6B6B", "#9C9C9C",
				tile.Transparent, tile.Transparent,
			},
			Background: "#E8E8E8",
		},
		Dot:    "#E8E8E8",
		Text:   lipgloss.Color("#111111"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#3A3A3A"),
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Palette: tile.Palette{
			Colors: []string{
				"#0077be", "#00a8cc", "#ffd700", "#4488aa", "#e0f0ff",
				tile.Transparent, tile.Transparent, tile.Transparent,
			},
			Background: "#001a33",
		},
		Dot:    "#ffd700",
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Palette: tile.Palette{
			Colors: []string{
				"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068", "#ffc048",
				tile.Transparent, tile.Transparent, tile.Transparent,
			},
			Background: "#2d1b2e",
		},
		Dot:    "#fff5f5",
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
	}

	// All available themes
	Themes = []Theme{
		ThemeBauhaus,
		ThemeMondrian,
		ThemeMono,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to bauhaus.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeBauhaus, false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
