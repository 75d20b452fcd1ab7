package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/shmviz/internal/app"
	"github.com/san-kum/shmviz/internal/config"
	"github.com/san-kum/shmviz/internal/surface"
)

// Theme colors
var (
	ColBg      = rl.NewColor(245, 245, 245, 255)
	ColPanel   = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(51, 51, 51, 255)
	ColTextDim = rl.NewColor(153, 153, 153, 255)
	ColSelect  = rl.NewColor(255, 107, 107, 255)
	ColButton  = rl.NewColor(78, 205, 196, 255)
)

const (
	pad     = 20
	hudTop  = 60
	hudRows = 200
)

// fields are the parameters reachable from the keyboard, controls first.
var fields = append(append([]app.Field{}, app.Controls...), app.Phase)

// App is the desktop front end. The views are recorded and replayed every
// window frame, so a redraw happens only when state changes.
type App struct {
	State    *app.State
	Spring   *surface.Recorder
	Graph    *surface.Recorder
	Selected int
	Font     rl.Font

	springOut *Surface
	graphOut  *Surface
}

// NewApp builds the state from cfg and draws the initial frame. It makes no
// raylib calls, so it works before a window exists.
func NewApp(cfg *config.Config) *App {
	spring := surface.NewRecorder(float64(cfg.Spring.Width), float64(cfg.Spring.Height))
	graph := surface.NewRecorder(float64(cfg.Graph.Width), float64(cfg.Graph.Height))
	a := &App{
		State:     app.New(cfg.Params, cfg.Step, app.Views{Spring: spring, Graph: graph}),
		Spring:    spring,
		Graph:     graph,
		springOut: NewSurface(pad, hudTop, float64(cfg.Spring.Width), float64(cfg.Spring.Height)),
		graphOut:  NewSurface(float32(2*pad+cfg.Spring.Width), hudTop, float64(cfg.Graph.Width), float64(cfg.Graph.Height)),
	}
	a.State.Redraw()
	return a
}

// WindowSize fits both views side by side above the HUD.
func (a *App) WindowSize() (int32, int32) {
	w := 3*pad + a.springOut.Width + a.graphOut.Width
	h := hudTop + max(a.springOut.Height, a.graphOut.Height) + hudRows
	return int32(w), int32(h)
}

func initWindow(w, h int32, fps int) {
	rl.InitWindow(w, h, "shmviz")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	a := NewApp(cfg)
	w, h := a.WindowSize()
	initWindow(w, h, cfg.FPS)
	defer rl.CloseWindow()
	a.Font = rl.GetFontDefault()
	a.springOut.Font, a.graphOut.Font = a.Font, a.Font
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and fires the pending animation frame, one per window
// frame. It reports false when the user quits.
func (a *App) Update() bool {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if !a.HandleKey(k) {
			return false
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), a.buttonRect()) {
		a.State.Toggle()
	}
	a.Tick()
	return true
}

// Tick runs the pending frame if there is one.
func (a *App) Tick() {
	if id := a.State.Driver.Pending(); id != 0 {
		a.State.Frame(id)
	}
}

// HandleKey applies one key press. It reports false for quit.
func (a *App) HandleKey(k int32) bool {
	switch k {
	case rl.KeyQ, rl.KeyEscape:
		return false
	case rl.KeySpace, rl.KeyP:
		a.State.Toggle()
	case rl.KeyTab, rl.KeyRight, rl.KeyL:
		a.Selected = (a.Selected + 1) % len(fields)
	case rl.KeyLeft, rl.KeyH:
		a.Selected = (a.Selected + len(fields) - 1) % len(fields)
	case rl.KeyUp, rl.KeyK:
		a.State.Adjust(fields[a.Selected], 1.05)
	case rl.KeyDown, rl.KeyJ:
		a.State.Adjust(fields[a.Selected], 0.95)
	case rl.KeyR:
		// reset parameters but keep the clock
		a.State.SetParams(config.DefaultConfig().Params)
		log.Printf("parameters reset")
	}
	return true
}

func (a *App) buttonRect() rl.Rectangle {
	y := a.graphOut.Y + float32(max(a.springOut.Height, a.graphOut.Height)) + pad
	return rl.NewRectangle(pad, y, 180, 36)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Spring.Replay(a.springOut)
	a.Graph.Replay(a.graphOut)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("Simple Harmonic Motion", pad, pad, 24, ColText)
	status, col := "IDLE", ColTextDim
	if a.State.Driver.Running() {
		status, col = "RUNNING", ColSelect
	}
	w, _ := a.WindowSize()
	a.drawText(status, int(w)-120, pad, 16, col)

	btn := a.buttonRect()
	rl.DrawRectangleRec(btn, ColButton)
	a.drawText(a.State.Driver.Label(), int(btn.X)+12, int(btn.Y)+10, 16, ColPanel)

	x, y := int(btn.X)+int(btn.Width)+3*pad, int(btn.Y)
	for i, f := range fields {
		col := ColText
		prefix := "  "
		if i == a.Selected {
			col, prefix = ColSelect, "> "
		}
		a.drawText(fmt.Sprintf("%s%-24s %.4g", prefix, f.Label(), a.State.Get(f)), x, y+i*22, 16, col)
	}

	s := a.State.Sample()
	sx := x + 420
	a.drawText(fmt.Sprintf("t = %.2f s", a.State.Time()), sx, y, 16, ColText)
	a.drawText(fmt.Sprintf("x = %.4g", s.Displacement), sx, y+22, 16, ColText)
	a.drawText(fmt.Sprintf("v = %.4g", s.Velocity), sx, y+44, 16, ColText)
	a.drawText(fmt.Sprintf("a = %.4g", s.Acceleration), sx, y+66, 16, ColText)

	_, h := a.WindowSize()
	a.drawText("[SPACE] PLAY/PAUSE  [TAB/←→] SELECT  [↑↓] TUNE  [R] RESET  [Q] QUIT", pad, int(h)-30, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(w)-80, int(h)-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
