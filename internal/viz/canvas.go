package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shmviz/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBlank = 0x2800
	brailleLast  = 0x28ff
)

// Canvas is a grid of braille cells. Each cell holds 2x4 dots and one color;
// the last dot drawn into a cell decides it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]surface.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]surface.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]surface.Color, w)
	}
	c.Clear()
	return c
}

// Set sets a dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, col surface.Color) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	if !isBraille(c.Grid[row][cx]) {
		c.Grid[row][cx] = brailleBlank
	}
	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = col
}

// Put writes a plain character into a cell, replacing its dots.
func (c *Canvas) Put(col, row int, r rune, clr surface.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
	c.Colors[row][col] = clr
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col surface.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with each run of same-colored cells styled.
func (c *Canvas) Render() string {
	styles := make(map[surface.Color]lipgloss.Style)
	paint := func(b *strings.Builder, run []rune, col surface.Color) {
		if len(run) == 0 {
			return
		}
		if col == "" {
			b.WriteString(string(run))
			return
		}
		st, ok := styles[col]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(string(col)))
			styles[col] = st
		}
		b.WriteString(st.Render(string(run)))
	}

	var b strings.Builder
	for i, row := range c.Grid {
		var run []rune
		var cur surface.Color
		for j, r := range row {
			col := c.Colors[i][j]
			if r == brailleBlank {
				col = ""
			}
			if col != cur {
				paint(&b, run, cur)
				run, cur = run[:0], col
			}
			run = append(run, r)
		}
		paint(&b, run, cur)
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Bits returns the dot pattern of a cell, zero for text or blank cells.
func Bits(r rune) int {
	if !isBraille(r) {
		return 0
	}
	return int(r - brailleBlank)
}

// DotBit is the pattern bit of dot (dx, dy) inside a cell.
func DotBit(dx, dy int) int { return pixelMap[dy][dx] }

func isBraille(r rune) bool {
	return r >= brailleBlank && r <= brailleLast
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
