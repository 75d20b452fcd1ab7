package viz

import (
	"fmt"
	"image"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/shmviz/internal/anim"
	"github.com/san-kum/shmviz/internal/app"
	"github.com/san-kum/shmviz/internal/config"
	"github.com/san-kum/shmviz/internal/surface"
)

const (
	// cellWidth and cellHeight are the logical pixels covered by one
	// terminal cell: a braille cell is 2x4 dots, so each dot is 5 px square.
	cellWidth  = 10
	cellHeight = 20

	historyCapacity = 200
	DefaultGIFPath  = "shm.gif"
)

// fields are the parameters reachable from the keyboard, controls first.
var fields = append(append([]app.Field{}, app.Controls...), app.Phase)

// frameMsg delivers a scheduled animation frame. A token that was canceled
// or replaced by the time it arrives is ignored by the driver.
type frameMsg struct{ id anim.FrameID }

// Model is the terminal front end: the two views drawn as braille, one text
// input per control and a stats panel.
type Model struct {
	state    *app.State
	spring   *BrailleSurface
	graph    *BrailleSurface
	inputs   []textinput.Model
	focus    int
	selected int
	theme    Theme
	styles   styles
	interval time.Duration
	history  []float64

	// gauge eases toward the normalized displacement on a critically
	// damped spring.
	gauge       float64
	gaugeVel    float64
	gaugeSpring harmonica.Spring

	recording bool
	frames    []*image.Paletted
	gifPath   string
	status    string
	showHelp  bool
}

// NewModel builds the model from cfg and draws the initial frame at t = 0.
func NewModel(cfg *config.Config) Model {
	spring := NewBrailleSurface(cells(cfg.Spring.Width, cellWidth), cells(cfg.Spring.Height, cellHeight),
		float64(cfg.Spring.Width), float64(cfg.Spring.Height))
	graph := NewBrailleSurface(cells(cfg.Graph.Width, cellWidth), cells(cfg.Graph.Height, cellHeight),
		float64(cfg.Graph.Width), float64(cfg.Graph.Height))

	theme := GetTheme(cfg.Theme)
	st := app.New(cfg.Params, cfg.Step, app.Views{Spring: spring, Graph: graph})
	st.Palette = theme.Palette

	m := Model{
		state:    st,
		spring:   spring,
		graph:    graph,
		focus:    -1,
		theme:    theme,
		styles:   newStyles(theme),
		interval: FrameInterval(cfg.FPS),
		history:  make([]float64, 0, historyCapacity),
		gifPath:  DefaultGIFPath,
		gauge:    0.5,

		gaugeSpring: harmonica.NewSpring(harmonica.FPS(max(cfg.FPS, 1)), 12.0, 1.0),
	}
	for _, f := range app.Controls {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		ti.Width = 12
		ti.SetValue(formatValue(st.Get(f)))
		m.inputs = append(m.inputs, ti)
	}
	st.Redraw()
	m.record()
	return m
}

// FrameInterval converts a frame rate into the tick period.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Duration(harmonica.FPS(fps) * float64(time.Second))
}

// SetGIFPath changes where recordings are written.
func (m *Model) SetGIFPath(path string) { m.gifPath = path }

// State exposes the application state, mainly for tests and the CLI.
func (m Model) State() *app.State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) frame(id anim.FrameID) tea.Cmd {
	if id == 0 {
		return nil
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

// Update routes keys to the focused input or the shortcuts, and runs frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		next, ok := m.state.Frame(msg.id)
		if !ok {
			return m, nil
		}
		m.record()
		if m.recording {
			m.frames = append(m.frames, captureFrame(m.spring.Canvas(), m.graph.Canvas()))
		}
		return m, m.frame(next)
	case tea.KeyMsg:
		if m.focus >= 0 {
			return m.inputKey(msg)
		}
		return m.shortcutKey(msg)
	}
	return m, nil
}

func (m Model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.inputs[m.focus].Blur()
		m.focus = -1
		return m, nil
	case "tab":
		return m, m.focusInput(m.focus + 1)
	case "shift+tab":
		return m, m.focusInput(m.focus - 1)
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if v := m.inputs[m.focus].Value(); v != before {
		id, err := m.state.SetField(app.Controls[m.focus], v)
		if err != nil {
			log.Printf("input: %v", err)
			return m, cmd
		}
		return m, tea.Batch(cmd, m.frame(id))
	}
	return m, cmd
}

func (m Model) shortcutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		return m, m.frame(m.state.Toggle())
	case "tab":
		return m, m.focusInput(0)
	case "left", "h":
		m.selected = (m.selected + len(fields) - 1) % len(fields)
	case "right", "l":
		m.selected = (m.selected + 1) % len(fields)
	case "up", "k":
		return m, m.adjust(1.05)
	case "down", "j":
		return m, m.adjust(0.95)
	case "t":
		m.setTheme(NextTheme(m.theme.Name))
	case "g":
		m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// focusInput focuses input i; an index past either end leaves edit mode.
func (m *Model) focusInput(i int) tea.Cmd {
	if m.focus >= 0 {
		m.inputs[m.focus].Blur()
	}
	if i < 0 || i >= len(m.inputs) {
		m.focus = -1
		return nil
	}
	m.focus, m.selected = i, i
	return m.inputs[i].Focus()
}

func (m *Model) adjust(factor float64) tea.Cmd {
	f := fields[m.selected]
	id := m.state.Adjust(f, factor)
	for i, c := range app.Controls {
		if c == f {
			m.inputs[i].SetValue(formatValue(m.state.Get(f)))
		}
	}
	return m.frame(id)
}

func (m *Model) setTheme(t Theme) {
	m.theme, m.styles = t, newStyles(t)
	m.state.Palette = t.Palette
	m.state.Redraw()
	log.Printf("theme %s", t.Name)
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording, m.frames, m.status = true, nil, ""
		return
	}
	m.recording = false
	if err := saveGIF(m.gifPath, m.frames, m.interval); err != nil {
		m.status = err.Error()
		log.Printf("gif: %v", err)
	} else if len(m.frames) > 0 {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.frames = nil
}

// record appends the current displacement to the sparkline history and
// moves the gauge toward it.
func (m *Model) record() {
	x := m.state.Sample().Displacement
	m.history = append(m.history, x)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	target := (x/m.state.Params.MaxDisplacement + 1) / 2
	if !math.IsNaN(target) && !math.IsInf(target, 0) {
		m.gauge, m.gaugeVel = m.gaugeSpring.Update(m.gauge, m.gaugeVel, target)
	}
}

// View renders both views, the stats panel and the help line.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render(GradientText("SIMPLE HARMONIC MOTION", surface.Color(m.theme.Primary), surface.Color(m.theme.Accent))) + "\n")

	status := s.paused.Render("IDLE")
	if m.state.Driver.Running() {
		status = s.running.Render("RUNNING")
	}
	if m.recording {
		status += "  " + s.recording.Render(fmt.Sprintf("● REC %d", len(m.frames)))
	}
	b.WriteString(s.button.Render(m.state.Driver.Label()) + "  " + status + "\n\n")

	for i, f := range fields {
		label := f.Label()
		var val string
		if i < len(m.inputs) {
			val = m.inputs[i].View()
		} else {
			val = formatValue(m.state.Get(f))
		}
		if i == m.selected {
			b.WriteString(s.active.Render("> "+fmt.Sprintf("%-22s", label)) + val + "\n")
		} else {
			b.WriteString("  " + s.label.Render(label) + s.value.Render(val) + "\n")
		}
	}
	b.WriteString("\n")

	sample := m.state.Sample()
	row := func(label, val string) {
		b.WriteString(s.label.Render(label) + s.value.Render(val) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f s", m.state.Time()))
	row("Displacement x", formatValue(sample.Displacement))
	row("Velocity v", formatValue(sample.Velocity))
	row("Acceleration a", formatValue(sample.Acceleration))
	row("Period T", formatValue(m.state.Params.Period()))
	row("Frequency f", formatValue(m.state.Params.Frequency()))
	row("Position", gaugeBar(m.gauge, 20))

	if len(m.history) > 1 && finite(m.history) {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x(t)"))
		b.WriteString(s.graph.Render(chart) + "\n")
	}
	if m.status != "" {
		b.WriteString(s.value.Render(m.status) + "\n")
	}
	b.WriteString(s.help.Render(Separator(40, s.help) + "\nSP:Play/Pause TAB:Edit ←→:Select ↑↓:Tune\nT:Theme(" + m.theme.Name + ") G:Record ?:Help Q:Quit"))

	top := lipgloss.JoinHorizontal(lipgloss.Top, s.canvas.Render(m.spring.Canvas().Render()), s.stats.Render(b.String()))
	main := lipgloss.JoinVertical(lipgloss.Left, top, s.canvas.Render(m.graph.Canvas().Render()))
	if m.showHelp {
		return helpText + "\n\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space/P  - Play/Pause animation     ║
║  Tab      - Edit the next input      ║
║  Esc      - Leave the input          ║
║  Left/H   - Select previous field    ║
║  Right/L  - Select next field        ║
║  Up/K     - Increase field (+5%)     ║
║  Down/J   - Decrease field (-5%)     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// gaugeBar draws v in [0, 1] as a bar with a marker at the equilibrium.
func gaugeBar(v float64, width int) string {
	v = math.Max(0, math.Min(1, v))
	pos := int(math.Round(v * float64(width-1)))
	bar := []rune(strings.Repeat("░", width))
	bar[width/2] = '┃'
	bar[pos] = '█'
	return string(bar)
}

func cells(px, per int) int {
	n := px / per
	if n < 1 {
		return 1
	}
	return n
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
