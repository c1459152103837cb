// Package term runs the particle field and the runner in a terminal.
//
// Every cell shows two vertically stacked pixels with the upper half block
// rune: the foreground colour paints the top pixel and the background the
// bottom one.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"voxelfolio/surface"
)

const halfBlock = '▀'

// Framebuffer is an RGBA pixel grid implementing surface.Surface.
type Framebuffer struct {
	w, h int
	pix  []color.NRGBA
}

// NewFramebuffer returns a transparent w x h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the grid. Contents are lost.
func (fb *Framebuffer) Resize(w, h int) {
	fb.w, fb.h = max(w, 0), max(h, 0)
	fb.pix = make([]color.NRGBA, fb.w*fb.h)
}

func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// At returns the pixel at (x, y), or transparent outside the grid.
func (fb *Framebuffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return color.NRGBA{}
	}
	return fb.pix[y*fb.w+x]
}

func (fb *Framebuffer) Clear() {
	clear(fb.pix)
}

func (fb *Framebuffer) blend(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	i := y*fb.w + x
	fb.pix[i] = surface.Blend(fb.pix[i], c)
}

// FillRect covers every pixel whose centre lies inside the rectangle.
func (fb *Framebuffer) FillRect(x, y, w, h float64, c color.NRGBA) {
	x0, x1 := span(x, x+w, fb.w)
	y0, y1 := span(y, y+h, fb.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fb.blend(px, py, c)
		}
	}
}

// span returns the pixel index range whose centres fall in [a, b).
func span(a, b float64, limit int) (int, int) {
	lo := int(math.Ceil(a - 0.5))
	hi := int(math.Ceil(b - 0.5))
	return max(lo, 0), min(hi, limit)
}

// FillCircle covers pixels whose centre is within r. A disc smaller than a
// pixel still lights the pixel under its centre.
func (fb *Framebuffer) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	if !fb.disc(cx, cy, r, func(x, y int, _ float64) { fb.blend(x, y, c) }) {
		fb.blend(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

// Glow colours each covered pixel by its distance from the centre.
func (fb *Framebuffer) Glow(cx, cy, r float64, stops []surface.Stop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	if !fb.disc(cx, cy, r, func(x, y int, t float64) { fb.blend(x, y, surface.Sample(stops, t)) }) {
		fb.blend(int(math.Floor(cx)), int(math.Floor(cy)), stops[0].Color)
	}
}

// disc calls fn for each pixel centre within r with its normalised distance
// and reports whether any pixel was visited.
func (fb *Framebuffer) disc(cx, cy, r float64, fn func(x, y int, t float64)) bool {
	x0, x1 := span(cx-r, cx+r, fb.w)
	y0, y1 := span(cy-r, cy+r, fb.h)
	hit := false
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			fn(px, py, d/r)
			hit = true
		}
	}
	return hit
}

// Present composites layers bottom to top over black and writes the result
// to screen as half-block cells starting at row 0. It does not call Show.
func Present(screen tcell.Screen, layers ...*Framebuffer) {
	if len(layers) == 0 {
		return
	}
	cols, rows := screen.Size()
	w, h := layers[0].Size()
	for row := 0; row < rows && row*2 < h; row++ {
		for x := 0; x < cols && x < w; x++ {
			top := composite(layers, x, row*2)
			bottom := composite(layers, x, row*2+1)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

func composite(layers []*Framebuffer, x, y int) color.NRGBA {
	c := color.NRGBA{A: 255}
	for _, l := range layers {
		c = surface.Blend(c, l.At(x, y))
	}
	return c
}

func toColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
