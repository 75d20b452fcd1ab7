package export

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/san-kum/shmviz/internal/surface"
	"github.com/san-kum/shmviz/internal/viz"
)

// SVG writes a recorded display list as a standalone SVG document. Only ops
// after the last clear are drawn, matching what a raster would show.
func SVG(w io.Writer, rec *surface.Recorder) error {
	width, height := rec.Size()
	ops := rec.Ops()
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind == surface.OpClear {
			ops = ops[i+1:]
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, num(width), num(height), num(width), num(height))

	for _, op := range ops {
		switch op.Kind {
		case surface.OpStroke:
			fmt.Fprintf(&sb, `<path fill="none"%s d="%s"/>`+"\n", strokeAttrs(op.Stroke), pathData(op.Subpaths))
		case surface.OpCircle:
			fill := "none"
			if op.Fill != "" {
				fill = string(op.Fill)
			}
			fmt.Fprintf(&sb, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
				num(op.Center.X), num(op.Center.Y), num(op.Radius), fill, strokeAttrs(op.Stroke))
		case surface.OpText:
			anchor := "start"
			switch op.TextStyle.Align {
			case surface.AlignCenter:
				anchor = "middle"
			case surface.AlignRight:
				anchor = "end"
			}
			rotate := ""
			if op.Angle != 0 {
				rotate = fmt.Sprintf(` transform="rotate(%s %s %s)"`, num(op.Angle*180/math.Pi), num(op.Center.X), num(op.Center.Y))
			}
			fmt.Fprintf(&sb, `<text x="%s" y="%s" font-family="Arial" font-size="%s" fill="%s" text-anchor="%s"%s>%s</text>`+"\n",
				num(op.Center.X), num(op.Center.Y), num(op.TextStyle.Size), op.TextStyle.Color, anchor, rotate, html.EscapeString(op.Text))
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func strokeAttrs(st surface.Stroke) string {
	if st.Width <= 0 || st.Color == "" {
		return ""
	}
	s := fmt.Sprintf(` stroke="%s" stroke-width="%s"`, st.Color, num(st.Width))
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = num(d)
		}
		s += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return s
}

func pathData(subpaths [][]surface.Point) string {
	var sb strings.Builder
	for _, sp := range subpaths {
		for i, p := range sp {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s%s,%s", cmd, num(p.X), num(p.Y))
		}
	}
	return sb.String()
}

// num formats a coordinate with at most two decimals. Non-finite values are
// written as-is and make the element invalid, which viewers skip.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// CanvasToSVG converts a braille canvas to SVG, one dot per set bit in the
// color of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			bits := viz.Bits(canvas.Grid[row][col])
			if bits == 0 {
				continue
			}
			fill := canvas.Colors[row][col]
			if fill == "" {
				fill = surface.White
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if bits&viz.DotBit(dx, dy) == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", cx, cy, dotRadius, fill)
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
