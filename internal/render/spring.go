package render

import (
	"math"

	"github.com/san-kum/shmviz/internal/motion"
	"github.com/san-kum/shmviz/internal/surface"
)

// SpringFrame is the geometry of one spring view frame, exposed so front ends
// can report where the mass is without drawing.
type SpringFrame struct {
	Offset float64 // visual displacement in pixels, +down
	Top    surface.Point
	Bottom surface.Point
	Coils  int
}

// Spring lays out the spring for a surface width at time t.
// Xm = 0 makes Offset NaN; the caller owns that precondition.
func Spring(width float64, p motion.Parameters, t float64) SpringFrame {
	x := motion.Displacement(p, t)
	offset := (x / p.MaxDisplacement) * VisualAmplitude

	cx := width / 2
	bottom := EquilibriumY + offset
	length := bottom - SupportY

	coils := MinCoils
	if n := math.Floor(length / CoilPitch); n > float64(coils) && !math.IsInf(n, 0) {
		coils = int(n)
	}

	return SpringFrame{
		Offset: offset,
		Top:    surface.Point{X: cx, Y: SupportY},
		Bottom: surface.Point{X: cx, Y: bottom},
		Coils:  coils,
	}
}

// DrawSpring renders the spring-mass view at time t.
func DrawSpring(s surface.Surface, p motion.Parameters, t float64) {
	DrawSpringWith(s, p, t, DefaultPalette)
}

func DrawSpringWith(s surface.Surface, p motion.Parameters, t float64, pal Palette) {
	w, _ := s.Size()
	s.Clear()

	f := Spring(w, p, t)

	s.Stroke(surface.Line(Margin, SupportY, w-Margin, SupportY), surface.Stroke{Color: pal.Support, Width: 4})

	coil := surface.NewPath().MoveTo(f.Top.X, f.Top.Y)
	pitch := (f.Bottom.Y - f.Top.Y) / float64(f.Coils)
	for i := 0; i < f.Coils; i++ {
		y := f.Top.Y + float64(i)*pitch
		coil.LineTo(f.Top.X-CoilWidth, y+pitch/2)
		coil.LineTo(f.Top.X+CoilWidth, y+pitch)
	}
	coil.LineTo(f.Bottom.X, f.Bottom.Y)
	s.Stroke(coil, surface.Stroke{Color: pal.Coil, Width: 3})

	s.Circle(f.Bottom, MassRadius, pal.Mass, surface.Stroke{Color: pal.Outline, Width: 2})

	if math.Abs(f.Offset) > ArrowThreshold {
		s.Stroke(arrow(f.Bottom, f.Offset > 0), surface.Stroke{Color: pal.Arrow, Width: 3})
	}

	s.Stroke(surface.Line(Margin, EquilibriumY, w-Margin, EquilibriumY), surface.Stroke{Color: pal.Equilibrium, Width: 1, Dash: []float64{5, 5}})
}

// arrow points away from the support when down is true. It marks the side of
// equilibrium the mass is on, not its velocity.
func arrow(mass surface.Point, down bool) *surface.Path {
	dir := -1.0
	if down {
		dir = 1.0
	}
	x := mass.X + ArrowOffset
	tip := mass.Y + dir*ArrowLength
	neck := mass.Y + dir*(ArrowLength-ArrowHead)
	return surface.NewPath().
		MoveTo(x, mass.Y).LineTo(x, tip).
		MoveTo(x-ArrowHead, neck).LineTo(x, tip).LineTo(x+ArrowHead, neck)
}
