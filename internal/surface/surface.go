package surface

// Color is a CSS-style hex color, "#rrggbb" or "#rgb".
type Color string

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Point struct {
	X, Y float64
}

// Stroke describes how a path or outline is drawn. A zero Width means no stroke.
// Dash alternates on/off lengths in pixels; nil draws a solid line.
type Stroke struct {
	Color Color
	Width float64
	Dash  []float64
}

type TextStyle struct {
	Color Color
	Size  float64
	Align Align
}

// Surface is a 2D drawing target in logical pixels, origin top-left, y down.
//
// Implementations must accept NaN and infinite coordinates without panicking;
// such geometry is dropped or drawn degenerate.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Stroke(p *Path, st Stroke)
	Circle(center Point, r float64, fill Color, outline Stroke)
	Text(s string, at Point, st TextStyle)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)
}

// Path is a sequence of polyline subpaths built with MoveTo and LineTo.
type Path struct {
	subpaths [][]Point
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.subpaths = append(p.subpaths, []Point{{x, y}})
	return p
}

// LineTo extends the current subpath. Without a preceding MoveTo it starts one.
func (p *Path) LineTo(x, y float64) *Path {
	if len(p.subpaths) == 0 {
		return p.MoveTo(x, y)
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], Point{x, y})
	return p
}

func (p *Path) Subpaths() [][]Point {
	return p.subpaths
}

// Line is a single-segment path.
func Line(x0, y0, x1, y1 float64) *Path {
	return NewPath().MoveTo(x0, y0).LineTo(x1, y1)
}
