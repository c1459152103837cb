package game

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"voxelfolio/surface"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whiteTexture returns a 1x1 white source for DrawTriangles. The inner
// pixel of a 3x3 image avoids sampling the border.
func whiteTexture() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas draws surface calls onto an ebiten image.
type Canvas struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas wraps img.
func NewCanvas(img *ebiten.Image) *Canvas {
	return &Canvas{img: img}
}

// Size returns the image size in pixels
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear() {
	c.img.Clear()
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

// Glow draws the gradient as a mesh of concentric rings whose vertex
// colours are sampled from the stops; the GPU interpolates between rings.
func (c *Canvas) Glow(cx, cy, r float64, stops []surface.Stop) {
	if r <= 0 || len(stops) == 0 {
		return
	}

	rings := 4
	if r > 30 {
		rings = 12
	}
	segments := int(math.Min(math.Max(r, 12), 48))

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]

	// centre vertex, then rings*segments rim vertices
	c.vertices = append(c.vertices, vertex(cx, cy, surface.Sample(stops, 0)))
	for ring := 1; ring <= rings; ring++ {
		t := float64(ring) / float64(rings)
		clr := surface.Sample(stops, t)
		for s := 0; s < segments; s++ {
			a := 2 * math.Pi * float64(s) / float64(segments)
			c.vertices = append(c.vertices, vertex(cx+math.Cos(a)*r*t, cy+math.Sin(a)*r*t, clr))
		}
	}

	rim := func(ring, s int) uint16 {
		return uint16(1 + (ring-1)*segments + s%segments)
	}
	for s := 0; s < segments; s++ {
		c.indices = append(c.indices, 0, rim(1, s), rim(1, s+1))
	}
	for ring := 2; ring <= rings; ring++ {
		for s := 0; s < segments; s++ {
			a, b := rim(ring-1, s), rim(ring-1, s+1)
			d, e := rim(ring, s), rim(ring, s+1)
			c.indices = append(c.indices, a, d, e, a, e, b)
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.img.DrawTriangles(c.vertices, c.indices, whiteTexture(), op)
}

func vertex(x, y float64, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// Viewport maps the strip's internal resolution onto the window.
type Viewport struct {
	Scale  float64
	Top    float64
	Width  float64
	Height float64
}

// NewViewport fits the strip to a window of the given size.
func NewViewport(width, height int) Viewport {
	return Viewport{
		Scale:  stripScale(width),
		Top:    stripTop(width, height),
		Width:  float64(width),
		Height: float64(height),
	}
}

// Contains reports whether a screen point lies on the strip.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && x < v.Width && y >= v.Top && y < v.Height
}

// GeoM returns the transform from strip pixels to screen pixels.
func (v Viewport) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(v.Scale, v.Scale)
	m.Translate(0, v.Top)
	return m
}
