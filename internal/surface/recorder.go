package surface

type OpKind int

const (
	OpClear OpKind = iota
	OpStroke
	OpCircle
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpStroke:
		return "stroke"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded drawing command in device coordinates: the transform in
// effect when it was issued has already been applied.
type Op struct {
	Kind     OpKind
	Subpaths [][]Point
	Stroke   Stroke

	Center Point
	Radius float64
	Fill   Color

	Text      string
	TextStyle TextStyle
	Angle     float64
}

// Recorder is a Surface that keeps a display list. It backs SVG export and
// lets tests inspect exact geometry.
type Recorder struct {
	Stack
	width, height float64
	ops           []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{width: w, height: h}
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

// Clear drops everything recorded so far, like clearing a raster.
func (r *Recorder) Clear() {
	r.ops = []Op{{Kind: OpClear}}
}

func (r *Recorder) Stroke(p *Path, st Stroke) {
	m := r.Current()
	subs := make([][]Point, 0, len(p.Subpaths()))
	for _, sp := range p.Subpaths() {
		out := make([]Point, len(sp))
		for i, pt := range sp {
			out[i] = m.Apply(pt)
		}
		subs = append(subs, out)
	}
	r.ops = append(r.ops, Op{Kind: OpStroke, Subpaths: subs, Stroke: cloneStroke(st)})
}

func (r *Recorder) Circle(center Point, radius float64, fill Color, outline Stroke) {
	r.ops = append(r.ops, Op{
		Kind:   OpCircle,
		Center: r.Current().Apply(center),
		Radius: radius,
		Fill:   fill,
		Stroke: cloneStroke(outline),
	})
}

func (r *Recorder) Text(s string, at Point, st TextStyle) {
	m := r.Current()
	r.ops = append(r.ops, Op{
		Kind:      OpText,
		Center:    m.Apply(at),
		Text:      s,
		TextStyle: st,
		Angle:     m.Angle(),
	})
}

func (r *Recorder) Ops() []Op {
	return r.ops
}

// Replay draws the recorded ops onto another surface.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpStroke:
			p := NewPath()
			for _, sp := range op.Subpaths {
				for i, pt := range sp {
					if i == 0 {
						p.MoveTo(pt.X, pt.Y)
					} else {
						p.LineTo(pt.X, pt.Y)
					}
				}
			}
			dst.Stroke(p, op.Stroke)
		case OpCircle:
			dst.Circle(op.Center, op.Radius, op.Fill, op.Stroke)
		case OpText:
			dst.Save()
			dst.Translate(op.Center.X, op.Center.Y)
			dst.Rotate(op.Angle)
			dst.Text(op.Text, Point{}, op.TextStyle)
			dst.Restore()
		}
	}
}

func cloneStroke(st Stroke) Stroke {
	if st.Dash != nil {
		st.Dash = append([]float64(nil), st.Dash...)
	}
	return st
}
