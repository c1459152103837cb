package starfield

import (
	"image/color"
	"math/rand"
)

// Vec is a 2D vector in screen space.
type Vec struct {
	X, Y float64
}

// Star is a background point light. Z is the depth factor, always > 0.
type Star struct {
	X, Y  float64
	Z     float64
	Size  float64
	Color color.NRGBA
}

// newStars fills a fresh population over a w x h area.
func newStars(cfg Config, rng *rand.Rand, w, h int) []Star {
	if w <= 0 || h <= 0 || cfg.StarCount <= 0 {
		return nil
	}
	stars := make([]Star, cfg.StarCount)
	for i := range stars {
		s := &stars[i]
		s.X = rng.Float64() * float64(w)
		s.Y = rng.Float64() * float64(h)
		s.Z = rng.Float64()*cfg.DepthRange + cfg.MinDepth
		s.Size = rng.Float64() * cfg.MaxStarSize
		if len(cfg.Palette) > 0 {
			s.Color = cfg.Palette[rng.Intn(len(cfg.Palette))]
		}
	}
	return stars
}

// advance drifts the star right by speed/z and wraps it to the left edge.
func (s *Star) advance(speed, width float64) {
	s.X += speed / s.Z
	if s.X >= width {
		s.X = 0
	}
}

// Project returns the star's screen position for a parallax offset. Both the
// star's distance from centre and the offset are scaled by 1/z, so closer
// stars (smaller z) shift further.
func Project(s Star, centre, offset Vec) Vec {
	inv := 1 / s.Z
	return Vec{
		X: centre.X + (s.X-centre.X)*inv - offset.X*inv,
		Y: centre.Y + (s.Y-centre.Y)*inv - offset.Y*inv,
	}
}
