package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/shmviz/internal/render"
	"github.com/san-kum/shmviz/internal/surface"
)

// dots counts the braille dots set in the whole canvas.
func dots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := Bits(r); bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func TestCanvas_Set(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, "#ff0000")
	c.Set(1, 3, "#00ff00")

	if got, want := c.Grid[0][0], rune(brailleBlank|0x1|0x80); got != want {
		t.Errorf("cell = %U, want %U", got, want)
	}
	if c.Colors[0][0] != "#00ff00" {
		t.Errorf("last write should color the cell, got %q", c.Colors[0][0])
	}
	if dots(c) != 2 {
		t.Errorf("dots = %d, want 2", dots(c))
	}

	// out of range is ignored
	c.Set(-1, 0, "#fff")
	c.Set(4, 0, "#fff")
	c.Set(0, 4, "#fff")
	if dots(c) != 2 {
		t.Errorf("dots = %d after out-of-range sets", dots(c))
	}
}

func TestCanvas_PutAndClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Put(1, 1, 'x', "#333333")
	if !strings.Contains(c.String(), "x") {
		t.Errorf("String() missing text cell:\n%s", c.String())
	}
	c.Set(2, 4, "#333333")
	if c.Grid[1][1] == 'x' || dots(c) != 1 {
		t.Error("a dot should replace a text cell")
	}
	c.Clear()
	if dots(c) != 0 || c.Colors[1][1] != "" {
		t.Error("Clear should reset dots and colors")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 0, "#fff")
	if dots(c) != 20 {
		t.Errorf("horizontal line dots = %d, want 20", dots(c))
	}
	c.Clear()
	c.DrawLine(3, 19, 3, 0, "#fff")
	if dots(c) != 20 {
		t.Errorf("vertical line dots = %d, want 20", dots(c))
	}
}

func TestCanvas_RenderKeepsLayout(t *testing.T) {
	c := NewCanvas(4, 3)
	c.DrawLine(0, 0, 7, 11, "#ff6b6b")
	out := c.Render()
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("Render has %d newlines, want 2", n)
	}
}

func newTestSurface() *BrailleSurface {
	return NewBrailleSurface(40, 15, 400, 300)
}

func TestBrailleSurface_Stroke(t *testing.T) {
	b := newTestSurface()
	b.Stroke(surface.Line(0, 150, 400, 150), surface.Stroke{Color: "#fff", Width: 1})
	solid := dots(b.Canvas())
	if solid != 80 {
		t.Errorf("full-width line = %d dots, want 80", solid)
	}

	b.Clear()
	b.Stroke(surface.Line(0, 150, 400, 150), surface.Stroke{Color: "#fff", Width: 1, Dash: []float64{25, 25}})
	dashed := dots(b.Canvas())
	if dashed == 0 || dashed >= solid {
		t.Errorf("dashed line = %d dots, solid = %d", dashed, solid)
	}
}

func TestBrailleSurface_ClipsAndSkipsNonFinite(t *testing.T) {
	b := newTestSurface()
	b.Stroke(surface.Line(-1e9, -1e9, 1e9, 1e9), surface.Stroke{Color: "#fff"})
	if dots(b.Canvas()) == 0 {
		t.Error("diagonal through the surface should leave dots")
	}

	b.Clear()
	b.Stroke(surface.Line(0, math.NaN(), 400, 150), surface.Stroke{Color: "#fff"})
	b.Stroke(surface.Line(0, 0, math.Inf(1), 150), surface.Stroke{Color: "#fff", Dash: []float64{5, 5}})
	b.Circle(surface.Point{X: math.NaN(), Y: 0}, 10, "#fff", surface.Stroke{})
	b.Circle(surface.Point{X: 200, Y: 150}, math.Inf(1), "#fff", surface.Stroke{})
	if dots(b.Canvas()) != 0 {
		t.Errorf("non-finite geometry drew %d dots", dots(b.Canvas()))
	}
}

func TestBrailleSurface_Circle(t *testing.T) {
	b := newTestSurface()
	b.Circle(surface.Point{X: 200, Y: 150}, 25, "#ff6b6b", surface.Stroke{Color: "#333333", Width: 2})
	if dots(b.Canvas()) == 0 {
		t.Fatal("circle drew nothing")
	}
	// center dot (40, 30) lies in cell (20, 7)
	if got := b.Canvas().Colors[7][20]; got != "#ff6b6b" {
		t.Errorf("center cell color = %q, want fill", got)
	}
}

func TestBrailleSurface_RotatedText(t *testing.T) {
	b := newTestSurface()
	b.Save()
	b.Translate(200, 150)
	b.Rotate(-math.Pi / 2)
	b.Text("Value", surface.Point{}, surface.TextStyle{Color: "#333", Align: surface.AlignCenter})
	b.Restore()

	var got []rune
	for row := 5; row <= 9; row++ {
		got = append(got, b.Canvas().Grid[row][20])
	}
	if string(got) != "Value" {
		t.Errorf("vertical text = %q, want %q", string(got), "Value")
	}
}

func TestBrailleSurface_DrawsViews(t *testing.T) {
	b := newTestSurface()
	render.DrawSpring(b, defaultsForTest(), 0.25)
	if dots(b.Canvas()) == 0 {
		t.Fatal("spring view is empty")
	}
	found := false
	for _, row := range b.Canvas().Colors {
		for _, c := range row {
			if c == render.DefaultPalette.Mass {
				found = true
			}
		}
	}
	if !found {
		t.Error("mass color missing from spring view")
	}

	g := NewBrailleSurface(60, 15, 600, 300)
	render.DrawGraph(g, defaultsForTest(), 0)
	if dots(g.Canvas()) == 0 {
		t.Error("graph view is empty")
	}
	if !strings.Contains(g.Canvas().String(), "Time") {
		t.Error("graph view missing the time label")
	}
}
