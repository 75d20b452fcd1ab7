package viz

import (
	"math"

	"github.com/san-kum/shmviz/internal/surface"
)

// maxDashedLength bounds the dash walk; longer segments are drawn solid.
const maxDashedLength = 1e5

// BrailleSurface draws a logical-pixel surface onto a braille Canvas. Line
// width is not representable and is ignored; every stroke is one dot wide.
type BrailleSurface struct {
	surface.Stack
	canvas        *Canvas
	width, height float64
	sx, sy        float64
}

// NewBrailleSurface maps a w x h logical surface onto cols x rows cells.
func NewBrailleSurface(cols, rows int, w, h float64) *BrailleSurface {
	return &BrailleSurface{
		canvas: NewCanvas(cols, rows),
		width:  w,
		height: h,
		sx:     float64(cols*2) / w,
		sy:     float64(rows*4) / h,
	}
}

func (b *BrailleSurface) Canvas() *Canvas { return b.canvas }

func (b *BrailleSurface) Size() (float64, float64) { return b.width, b.height }

func (b *BrailleSurface) Clear() { b.canvas.Clear() }

func (b *BrailleSurface) Stroke(p *surface.Path, st surface.Stroke) {
	for _, sp := range p.Subpaths() {
		if len(sp) == 1 {
			if x, y, ok := b.device(sp[0]); ok {
				b.canvas.Set(int(math.Round(x)), int(math.Round(y)), st.Color)
			}
			continue
		}
		for i := 1; i < len(sp); i++ {
			b.segment(sp[i-1], sp[i], st)
		}
	}
}

// segment draws a-c, splitting it into dashes measured in logical pixels.
func (b *BrailleSurface) segment(a, c surface.Point, st surface.Stroke) {
	if len(st.Dash) == 0 {
		b.line(a, c, st.Color)
		return
	}
	dx, dy := c.X-a.X, c.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	if length > maxDashedLength {
		b.line(a, c, st.Color)
		return
	}
	at := func(d float64) surface.Point {
		return surface.Point{X: a.X + dx*d/length, Y: a.Y + dy*d/length}
	}
	pos, on := 0.0, true
	for i := 0; pos < length; i++ {
		seg := st.Dash[i%len(st.Dash)]
		if seg <= 0 {
			b.line(at(pos), c, st.Color)
			return
		}
		end := math.Min(pos+seg, length)
		if on {
			b.line(at(pos), at(end), st.Color)
		}
		pos, on = end, !on
	}
}

func (b *BrailleSurface) line(a, c surface.Point, col surface.Color) {
	x0, y0, ok0 := b.device(a)
	x1, y1, ok1 := b.device(c)
	if !ok0 || !ok1 {
		return
	}
	maxX, maxY := float64(b.canvas.Width*2-1), float64(b.canvas.Height*4-1)
	x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, 0, 0, maxX, maxY)
	if !ok {
		return
	}
	b.canvas.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), col)
}

func (b *BrailleSurface) Circle(center surface.Point, r float64, fill surface.Color, outline surface.Stroke) {
	cx, cy, ok := b.device(center)
	if !ok || math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return
	}
	rx, ry := r*b.sx, r*b.sy
	if cx+rx < 0 || cy+ry < 0 || cx-rx > float64(b.canvas.Width*2) || cy-ry > float64(b.canvas.Height*4) {
		return
	}
	if fill != "" {
		top := int(math.Max(math.Ceil(cy-ry), 0))
		bottom := int(math.Min(math.Floor(cy+ry), float64(b.canvas.Height*4-1)))
		for y := top; y <= bottom; y++ {
			dy := (float64(y) - cy) / ry
			half := rx * math.Sqrt(math.Max(0, 1-dy*dy))
			left := int(math.Max(math.Ceil(cx-half), 0))
			right := int(math.Min(math.Floor(cx+half), float64(b.canvas.Width*2-1)))
			for x := left; x <= right; x++ {
				b.canvas.Set(x, y, fill)
			}
		}
	}
	if outline.Width > 0 {
		const steps = 48
		prevX, prevY := cx+rx, cy
		for i := 1; i <= steps; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / steps)
			x, y := cx+rx*cos, cy+ry*sin
			if x0, y0, x1, y1, ok := clip(prevX, prevY, x, y, 0, 0, float64(b.canvas.Width*2-1), float64(b.canvas.Height*4-1)); ok {
				b.canvas.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), outline.Color)
			}
			prevX, prevY = x, y
		}
	}
}

// Text writes characters into cells. Text rotated by roughly a quarter turn
// is stacked vertically.
func (b *BrailleSurface) Text(s string, at surface.Point, st surface.TextStyle) {
	x, y, ok := b.device(at)
	if !ok {
		return
	}
	runes := []rune(s)
	col, row := int(math.Floor(x/2)), int(math.Floor(y/4))
	shift := 0
	switch st.Align {
	case surface.AlignCenter:
		shift = len(runes) / 2
	case surface.AlignRight:
		shift = len(runes)
	}

	angle := b.Current().Angle()
	if math.Abs(math.Abs(angle)-math.Pi/2) < math.Pi/4 {
		for i, r := range runes {
			b.canvas.Put(col, row-shift+i, r, st.Color)
		}
		return
	}
	for i, r := range runes {
		b.canvas.Put(col-shift+i, row, r, st.Color)
	}
}

func (b *BrailleSurface) device(p surface.Point) (float64, float64, bool) {
	q := b.Current().Apply(p)
	if !surface.Finite(q) {
		return 0, 0, false
	}
	return q.X * b.sx, q.Y * b.sy, true
}

// clip is Liang-Barsky against [minX,maxX]x[minY,maxY]. It keeps Bresenham
// from walking toward far-off or huge coordinates.
func clip(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	ax, ay, bx, by := x0+t0*dx, y0+t0*dy, x0+t1*dx, y0+t1*dy
	for _, v := range [4]float64{ax, ay, bx, by} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	return ax, ay, bx, by, true
}
