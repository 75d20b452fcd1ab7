package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/shmviz/internal/surface"
)

// Surface draws onto a rectangle of the raylib window. It must be used
// between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	surface.Stack
	X, Y          float32
	Width, Height float64
	Background    surface.Color
	Font          rl.Font
}

func NewSurface(x, y float32, w, h float64) *Surface {
	return &Surface{X: x, Y: y, Width: w, Height: h, Background: surface.White}
}

func (s *Surface) Size() (float64, float64) { return s.Width, s.Height }

// Bounds is the window rectangle covered by the surface.
func (s *Surface) Bounds() rl.Rectangle {
	return rl.NewRectangle(s.X, s.Y, float32(s.Width), float32(s.Height))
}

func (s *Surface) Clear() {
	rl.DrawRectangleRec(s.Bounds(), toColor(s.Background))
}

func (s *Surface) Stroke(p *surface.Path, st surface.Stroke) {
	col := toColor(st.Color)
	thick := float32(math.Max(st.Width, 1))
	for _, sp := range p.Subpaths() {
		for i := 1; i < len(sp); i++ {
			for _, seg := range dashes(sp[i-1], sp[i], st.Dash) {
				rl.DrawLineEx(s.window(seg[0]), s.window(seg[1]), thick, col)
			}
		}
	}
}

func (s *Surface) Circle(center surface.Point, r float64, fill surface.Color, outline surface.Stroke) {
	c := s.window(center)
	if fill != "" {
		rl.DrawCircleV(c, float32(r), toColor(fill))
	}
	if outline.Width > 0 {
		half := float32(outline.Width / 2)
		rl.DrawRing(c, float32(r)-half, float32(r)+half, 0, 360, 48, toColor(outline.Color))
	}
}

func (s *Surface) Text(text string, at surface.Point, st surface.TextStyle) {
	font := s.Font
	if font.Texture.ID == 0 {
		font = rl.GetFontDefault()
	}
	size := float32(st.Size)
	spacing := size / 10
	dim := rl.MeasureTextEx(font, text, size, spacing)
	origin := rl.NewVector2(0, dim.Y/2)
	switch st.Align {
	case surface.AlignCenter:
		origin.X = dim.X / 2
	case surface.AlignRight:
		origin.X = dim.X
	}
	m := s.Current()
	rl.DrawTextPro(font, text, s.window(at), origin, float32(m.Angle()*180/math.Pi), size, spacing, toColor(st.Color))
}

// window maps a logical point through the transform into window pixels.
func (s *Surface) window(p surface.Point) rl.Vector2 {
	q := s.Current().Apply(p)
	return rl.NewVector2(s.X+float32(q.X), s.Y+float32(q.Y))
}

// dashes splits a-b into the drawn pieces of a dash pattern. An empty
// pattern, a degenerate one or a non-finite segment yields a-b unchanged.
func dashes(a, b surface.Point, pattern []float64) [][2]surface.Point {
	whole := [][2]surface.Point{{a, b}}
	if len(pattern) == 0 {
		return whole
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return whole
	}
	total := 0.0
	for _, d := range pattern {
		if d <= 0 {
			return whole
		}
		total += d
	}
	if length/total > 1e5 {
		return whole
	}

	at := func(d float64) surface.Point {
		return surface.Point{X: a.X + dx*d/length, Y: a.Y + dy*d/length}
	}
	var out [][2]surface.Point
	pos, on := 0.0, true
	for i := 0; pos < length; i++ {
		end := math.Min(pos+pattern[i%len(pattern)], length)
		if on {
			out = append(out, [2]surface.Point{at(pos), at(end)})
		}
		pos, on = end, !on
	}
	return out
}

func toColor(c surface.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}
