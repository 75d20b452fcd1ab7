package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shmviz/internal/surface"
)

// styles are the lipgloss styles of one theme.
type styles struct {
	canvas    lipgloss.Style
	stats     lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	active    lipgloss.Style
	graph     lipgloss.Style
	help      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	recording lipgloss.Style
	button    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(46),
		title:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(24),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		active: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		running: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),
		paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),
		recording: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Primary).
			Padding(0, 1),
	}
}

// GradientText colors each rune of text along a Lab blend from start to end.
func GradientText(text string, start, end surface.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := start.Blend(end, t)
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(string(col))).Render(string(r)))
	}
	return result.String()
}

// Separator draws a muted rule with a center mark.
func Separator(width int, st lipgloss.Style) string {
	if width < 8 {
		return st.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return st.Render(left + " ◆ " + right)
}
