// Package surface defines the 2D drawing target the simulations render onto.
//
// Hosts provide implementations (an ebiten image, a terminal framebuffer, a
// recorder in tests); simulations never see the windowing system.
package surface

import (
	"image/color"
	"math"
)

// Surface is a minimal immediate-mode 2D canvas.
type Surface interface {
	// Size returns the drawable size in surface units.
	Size() (int, int)

	// Clear resets every pixel to transparent.
	Clear()

	// FillRect fills an axis-aligned rectangle, blending with what is below.
	FillRect(x, y, w, h float64, c color.NRGBA)

	// FillCircle fills a disc centred on (cx, cy).
	FillCircle(cx, cy, r float64, c color.NRGBA)

	// Glow fills a disc whose colour follows a radial gradient from the
	// centre (offset 0) to the rim (offset 1).
	Glow(cx, cy, r float64, stops []Stop)
}

// Stop is a colour stop of a radial gradient.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// RGBA builds a non-premultiplied colour from CSS-style components
// (0-255 channels, alpha in [0, 1]).
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// Hex parses "#rrggbb". Malformed input yields opaque black.
func Hex(s string) color.NRGBA {
	c := color.NRGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	c.R = hexByte(s[1], s[2])
	c.G = hexByte(s[3], s[4])
	c.B = hexByte(s[5], s[6])
	return c
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func alpha8(a float64) uint8 {
	a = math.Max(0, math.Min(1, a))
	return uint8(math.Round(a * 255))
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alpha8(a)
	return c
}

// Sample returns the gradient colour at t in [0, 1]. Stops must be sorted by
// offset. Outside the stop range the nearest stop colour is used.
func Sample(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerp(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Blend composites src over dst (both non-premultiplied) and returns the result.
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(math.Round(v))
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: alpha8(oa),
	}
}
