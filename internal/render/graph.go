package render

import (
	"math"

	"github.com/san-kum/shmviz/internal/motion"
	"github.com/san-kum/shmviz/internal/surface"
)

// Series identifies one of the plotted curves.
type Series int

const (
	Displacement Series = iota
	Velocity
	Acceleration
)

var AllSeries = []Series{Displacement, Velocity, Acceleration}

func (s Series) String() string {
	switch s {
	case Displacement:
		return "displacement"
	case Velocity:
		return "velocity"
	case Acceleration:
		return "acceleration"
	}
	return "unknown"
}

// Value picks the component of a sample this series plots.
func (s Series) Value(x motion.Sample) float64 {
	switch s {
	case Velocity:
		return x.Velocity
	case Acceleration:
		return x.Acceleration
	}
	return x.Displacement
}

func (s Series) color(pal Palette) surface.Color {
	switch s {
	case Velocity:
		return pal.Velocity
	case Acceleration:
		return pal.Acceleration
	}
	return pal.Displacement
}

// Plot maps time and normalized value onto the graph surface.
type Plot struct {
	Left, Right float64
	Top, Bottom float64
	Mid         float64
	Window      float64
}

func NewPlot(width, height float64, p motion.Parameters) Plot {
	return Plot{
		Left:   Margin,
		Right:  width - Margin,
		Top:    PlotTop,
		Bottom: height - PlotTop,
		Mid:    height / 2,
		Window: p.Window(),
	}
}

// X maps a time in [0, Window] onto the plot width.
func (pl Plot) X(t float64) float64 {
	return pl.Left + (t/pl.Window)*(pl.Right-pl.Left)
}

// Y maps a value normalized to [-1, 1] into the ±VisualAmplitude band.
func (pl Plot) Y(norm float64) float64 {
	return pl.Mid - norm*VisualAmplitude
}

// Cursor returns the horizontal position of the current time, wrapped into the window.
func (pl Plot) Cursor(t float64) float64 {
	return pl.X(math.Mod(t, pl.Window))
}

// Curve samples one series over the window at Subdivisions+1 points.
func Curve(pl Plot, p motion.Parameters, s Series) []surface.Point {
	peak := s.Value(p.Peaks())
	pts := make([]surface.Point, 0, Subdivisions+1)
	for i := 0; i <= Subdivisions; i++ {
		t := pl.Window * float64(i) / Subdivisions
		v := s.Value(motion.At(p, t))
		pts = append(pts, surface.Point{X: pl.X(t), Y: pl.Y(v / peak)})
	}
	return pts
}

// DrawGraph renders axes, grid, the three normalized curves and the time cursor.
func DrawGraph(s surface.Surface, p motion.Parameters, t float64) {
	DrawGraphWith(s, p, t, DefaultPalette)
}

func DrawGraphWith(s surface.Surface, p motion.Parameters, t float64, pal Palette) {
	w, h := s.Size()
	s.Clear()
	pl := NewPlot(w, h, p)

	axes := surface.NewPath().
		MoveTo(Margin, h/2).LineTo(w-Margin, h/2).
		MoveTo(Margin, PlotTop).LineTo(Margin, h-PlotTop)
	s.Stroke(axes, surface.Stroke{Color: pal.Axis, Width: 2})

	label := surface.TextStyle{Color: pal.Label, Size: LabelSize, Align: surface.AlignCenter}
	s.Text("Time", surface.Point{X: w / 2, Y: h - 10}, label)
	s.Save()
	s.Translate(20, h/2)
	s.Rotate(-math.Pi / 2)
	s.Text("Value", surface.Point{}, label)
	s.Restore()

	for i := 1; i < GridDivisions; i++ {
		x := Margin + float64(i)*(w-2*Margin)/GridDivisions
		s.Stroke(surface.Line(x, PlotTop, x, h-PlotTop), surface.Stroke{Color: pal.Grid, Width: 1})
	}

	for _, series := range AllSeries {
		pts := Curve(pl, p, series)
		path := surface.NewPath()
		for i, pt := range pts {
			if i == 0 {
				path.MoveTo(pt.X, pt.Y)
			} else {
				path.LineTo(pt.X, pt.Y)
			}
		}
		s.Stroke(path, surface.Stroke{Color: series.color(pal), Width: 3})
	}

	cx := pl.Cursor(t)
	s.Stroke(surface.Line(cx, PlotTop, cx, h-PlotTop), surface.Stroke{Color: pal.Cursor, Width: 2})
}
