// Package starfield implements the depth-parallaxed starfield background with
// a cursor glow and a decaying pointer trail.
//
// A Field is driven by its host: input adapters call PointerMove and Orient,
// the scheduler calls Tick, and Render paints onto any surface.Surface. The
// field keeps no reference to the host's event system.
package starfield

import (
	"math"
	"math/rand"

	"voxelfolio/surface"
)

// Field is one starfield instance. It is not safe for concurrent use; hosts
// call it from their single update goroutine.
type Field struct {
	cfg Config
	rng *rand.Rand

	width, height int

	stars     []Star
	particles []TrailParticle

	// input state, written by adapters and read once per tick
	cursor  Vec
	lastPos Vec
	tilt    Vec
}

// New creates a field covering width x height with a fresh star population.
func New(cfg Config, width, height int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &Field{
		cfg:       cfg,
		rng:       rng,
		particles: make([]TrailParticle, 0, 256),
	}
	f.Resize(width, height)
	return f
}

// Resize changes the field area and regenerates every star.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
	f.stars = newStars(f.cfg, f.rng, width, height)
}

// Size returns the current field area.
func (f *Field) Size() (int, int) {
	return f.width, f.height
}

// PointerMove records a pointer position and spawns trail particles along the
// path from the previous one. It returns the number of particles spawned.
func (f *Field) PointerMove(x, y float64) int {
	f.cursor = Vec{x, y}
	var n int
	f.particles, n = spawnTrail(f.particles, f.cfg, f.rng, f.lastPos.X, f.lastPos.Y, x, y)
	f.lastPos = Vec{x, y}
	return n
}

// Orient feeds a device orientation reading in degrees: beta is front/back
// tilt, gamma is left/right. NaN marks a missing axis and leaves the tilt as is.
func (f *Field) Orient(beta, gamma float64) {
	if math.IsNaN(beta) || math.IsNaN(gamma) {
		return
	}
	f.tilt = Vec{
		X: gamma * f.cfg.TiltSensitivity,
		Y: beta * f.cfg.TiltSensitivity,
	}
}

// Cursor returns the last pointer position.
func (f *Field) Cursor() Vec { return f.cursor }

// Tilt returns the scaled tilt vector.
func (f *Field) Tilt() Vec { return f.tilt }

// Stars returns the live star slice. Callers must not retain it across Resize.
func (f *Field) Stars() []Star { return f.stars }

// Particles returns the live trail particles.
func (f *Field) Particles() []TrailParticle { return f.particles }

// Centre returns the middle of the field.
func (f *Field) Centre() Vec {
	return Vec{float64(f.width) / 2, float64(f.height) / 2}
}

// ParallaxOffset combines the cursor's distance from centre with the tilt.
func (f *Field) ParallaxOffset() Vec {
	c := f.Centre()
	return Vec{
		X: ((f.cursor.X - c.X) + f.tilt.X*f.cfg.TiltParallaxGain) * f.cfg.ParallaxDamping,
		Y: ((f.cursor.Y - c.Y) + f.tilt.Y*f.cfg.TiltParallaxGain) * f.cfg.ParallaxDamping,
	}
}

// Tick advances the field by dt seconds. The per-frame constants are scaled
// by dt/FrameDuration, so a tick of FrameDuration is exactly one frame.
func (f *Field) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > maxDelta {
		dt = maxDelta
	}
	k := dt / FrameDuration

	w := float64(f.width)
	for i := range f.stars {
		f.stars[i].advance(f.cfg.StarSpeed*k, w)
	}

	f.particles = updateTrail(f.particles, f.tilt, f.cfg.TiltForce, f.cfg.LifeDecay, k)
}

// Render paints one frame. Previous frames are faded rather than cleared,
// which leaves motion trails on surfaces that keep their contents.
func (f *Field) Render(s surface.Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), f.cfg.FadeColor)

	centre := f.Centre()
	offset := f.ParallaxOffset()
	for _, star := range f.stars {
		p := Project(star, centre, offset)
		s.FillCircle(p.X, p.Y, star.Size/star.Z, star.Color)
	}

	for _, p := range f.particles {
		if p.Glow {
			s.Glow(p.X, p.Y, p.Size*2, []surface.Stop{
				{Offset: 0, Color: surface.WithAlpha(trailGreen, p.Life)},
				{Offset: 1, Color: surface.RGBA(0, 0, 0, 0)},
			})
			continue
		}
		c := p.Color
		c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, p.Life)))
		s.FillCircle(p.X, p.Y, p.Size, c)
	}

	s.Glow(f.cursor.X, f.cursor.Y, f.cfg.CoreRadius, coreStops)
	s.Glow(f.cursor.X, f.cursor.Y, f.cfg.AuraRadius, auraStops)
}
