package analysis

import (
	"strings"

	"github.com/san-kum/shmviz/internal/motion"
)

// PhasePoint is one (x, v) state.
type PhasePoint struct{ X, V float64 }

// PhasePortrait samples n+1 states over the plotting window. For harmonic
// motion they trace the ellipse (x/Xm)² + (v/Xmω)² = 1.
func PhasePortrait(p motion.Parameters, n int) []PhasePoint {
	_, samples := motion.Series(p, n)
	pts := make([]PhasePoint, len(samples))
	for i, s := range samples {
		pts[i] = PhasePoint{X: s.Displacement, V: s.Velocity}
	}
	return pts
}

// PhasePortraitToASCII plots the portrait on a width x height character
// grid with axes through the origin.
func PhasePortraitToASCII(points []PhasePoint, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].V, points[0].V
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.V), max(maxY, p.V)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}
	col := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	row := func(v float64) int { return height - 1 - int((v-minY)/rangeY*float64(height-1)) }

	if minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := range canvas {
			canvas[r][c] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		r := row(0)
		for c := range canvas[r] {
			if canvas[r][c] == '│' {
				canvas[r][c] = '┼'
			} else {
				canvas[r][c] = '─'
			}
		}
	}

	for _, p := range points {
		r, c := row(p.V), col(p.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			canvas[r][c] = '•'
		}
	}

	var sb strings.Builder
	for _, line := range canvas {
		sb.WriteString(string(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}
