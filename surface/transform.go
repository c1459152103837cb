package surface

import (
	"image/color"
	"math"
)

// Transform maps logical coordinates onto another surface:
// dst = logical*Scale + Offset.
type Transform struct {
	Dst              Surface
	Scale            float64
	OffsetX, OffsetY float64
}

// Fit returns a Transform that scales a logical w x h area to the full width
// of dst, anchored at the bottom edge.
func Fit(dst Surface, w, h int) *Transform {
	dw, dh := dst.Size()
	scale := float64(dw) / float64(w)
	return &Transform{
		Dst:     dst,
		Scale:   scale,
		OffsetY: float64(dh) - float64(h)*scale,
	}
}

// Size reports the logical size covered by the destination.
func (t *Transform) Size() (int, int) {
	w, h := t.Dst.Size()
	if t.Scale <= 0 {
		return 0, 0
	}
	return int(math.Floor(float64(w) / t.Scale)), int(math.Floor((float64(h) - t.OffsetY) / t.Scale))
}

// Clear clears the whole destination.
func (t *Transform) Clear() { t.Dst.Clear() }

func (t *Transform) FillRect(x, y, w, h float64, c color.NRGBA) {
	t.Dst.FillRect(x*t.Scale+t.OffsetX, y*t.Scale+t.OffsetY, w*t.Scale, h*t.Scale, c)
}

func (t *Transform) FillCircle(cx, cy, r float64, c color.NRGBA) {
	t.Dst.FillCircle(cx*t.Scale+t.OffsetX, cy*t.Scale+t.OffsetY, r*t.Scale, c)
}

func (t *Transform) Glow(cx, cy, r float64, stops []Stop) {
	t.Dst.Glow(cx*t.Scale+t.OffsetX, cy*t.Scale+t.OffsetY, r*t.Scale, stops)
}
