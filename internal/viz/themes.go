package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shmviz/internal/render"
	"github.com/san-kum/shmviz/internal/surface"
)

// Theme defines color scheme for the TUI and the two views
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Palette render.Palette
}

// Available themes
var (
	// ThemeClassic keeps the original page colors. The dark grays are lifted
	// so axes and supports stay visible on a dark terminal.
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#4ecdc4"),
		Text:    lipgloss.Color("#eeeeee"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#4ecdc4"),
		Warning: lipgloss.Color("#feca57"),
		Palette: withChrome(render.DefaultPalette, "#aaaaaa", "#777777", "#444444"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"), // Magenta
		Accent:  lipgloss.Color("#00ffff"), // Cyan
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ff8800"),
		Palette: withSeries(withChrome(render.DefaultPalette, "#cccccc", "#888888", "#333333"),
			"#ff00ff", "#00ffff", "#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Palette: withSeries(withChrome(render.DefaultPalette, "#00cc00", "#008800", "#003300"),
			"#00ff00", "#88ff88", "#ccffcc"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"), // Ocean blue
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Palette: withSeries(withChrome(render.DefaultPalette, "#88aacc", "#4488aa", "#113355"),
			"#00a8cc", "#ffd700", "#00ff88"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"), // Coral
		Accent:  lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Palette: withSeries(withChrome(render.DefaultPalette, "#c8a2c8", "#8b6b8c", "#4d3b4e"),
			"#ff6b6b", "#feca57", "#ff9ff3"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// withChrome recolors the non-data strokes: structure, secondary lines, grid.
func withChrome(p render.Palette, strong, weak, grid surface.Color) render.Palette {
	p.Support, p.Outline, p.Axis, p.Label = strong, strong, strong, strong
	p.Coil, p.Equilibrium = weak, weak
	p.Grid = grid
	return p
}

// withSeries recolors the three curves; the mass, arrow and cursor follow them.
func withSeries(p render.Palette, x, v, a surface.Color) render.Palette {
	p.Displacement, p.Velocity, p.Acceleration = x, v, a
	p.Mass, p.Cursor, p.Arrow = x, x, v
	return p
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
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
