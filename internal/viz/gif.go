package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"github.com/san-kum/shmviz/internal/surface"
)

const (
	gifCharW = 8
	gifCharH = 16
)

var ErrNoFrames = errors.New("viz: no frames recorded")

// captureFrame rasterizes canvases stacked top to bottom into one paletted
// image. Dots keep their cell color; plain text cells are skipped.
func captureFrame(canvases ...*Canvas) *image.Paletted {
	w, h := 0, 0
	for _, c := range canvases {
		w = max(w, c.Width*gifCharW)
		h += c.Height * gifCharH
	}

	pal := color.Palette{color.Black}
	index := map[surface.Color]uint8{}
	lookup := func(c surface.Color) uint8 {
		if c == "" {
			c = surface.White
		}
		if i, ok := index[c]; ok {
			return i
		}
		if len(pal) == 256 {
			return uint8(len(pal) - 1)
		}
		r, g, b := c.RGB()
		pal = append(pal, color.RGBA{R: r, G: g, B: b, A: 0xff})
		index[c] = uint8(len(pal) - 1)
		return index[c]
	}

	type dot struct {
		x, y int
		idx  uint8
	}
	var dots []dot
	dotW, dotH := gifCharW/2, gifCharH/4
	top := 0
	for _, c := range canvases {
		for row := 0; row < c.Height; row++ {
			for col := 0; col < c.Width; col++ {
				r := c.Grid[row][col]
				if !isBraille(r) || r == brailleBlank {
					continue
				}
				idx := lookup(c.Colors[row][col])
				bits := int(r - brailleBlank)
				for dy := 0; dy < 4; dy++ {
					for dx := 0; dx < 2; dx++ {
						if bits&pixelMap[dy][dx] != 0 {
							dots = append(dots, dot{col*gifCharW + dx*dotW, top + row*gifCharH + dy*dotH, idx})
						}
					}
				}
			}
		}
		top += c.Height * gifCharH
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for _, d := range dots {
		for py := 0; py < dotH; py++ {
			for px := 0; px < dotW; px++ {
				img.SetColorIndex(d.x+px, d.y+py, d.idx)
			}
		}
	}
	return img
}

// saveGIF writes frames as a looping animation, each shown for interval.
func saveGIF(path string, frames []*image.Paletted, interval time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	delay := int(interval / (10 * time.Millisecond))
	if delay < 2 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}
