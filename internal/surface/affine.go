package surface

import "math"

// Affine maps (x, y) to (A·x + C·y + E, B·x + D·y + F), the same layout as a
// canvas transform matrix.
type Affine struct {
	A, B, C, D, E, F float64
}

var Identity = Affine{A: 1, D: 1}

func Translation(dx, dy float64) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

func Rotation(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Mul returns m·n: n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Angle is the rotation component in radians.
func (m Affine) Angle() float64 {
	return math.Atan2(m.B, m.A)
}

// Stack is the save/restore transform state shared by Surface implementations.
// Embed it to get Save, Restore, Translate and Rotate.
type Stack struct {
	cur   Affine
	saved []Affine
	init  bool
}

func (s *Stack) Current() Affine {
	if !s.init {
		return Identity
	}
	return s.cur
}

func (s *Stack) set(m Affine) {
	s.cur = m
	s.init = true
}

func (s *Stack) Save() {
	s.saved = append(s.saved, s.Current())
}

// Restore pops the last saved transform. An unbalanced Restore is ignored.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	last := len(s.saved) - 1
	s.set(s.saved[last])
	s.saved = s.saved[:last]
}

func (s *Stack) Translate(dx, dy float64) {
	s.set(s.Current().Mul(Translation(dx, dy)))
}

func (s *Stack) Rotate(theta float64) {
	s.set(s.Current().Mul(Rotation(theta)))
}

// Finite reports whether both coordinates are finite numbers.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
