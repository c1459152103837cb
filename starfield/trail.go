package starfield

import (
	"image/color"
	"math"
	"math/rand"
)

// TrailParticle is a short-lived glow left behind by the pointer.
type TrailParticle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 at spawn, removed once <= 0
	Size   float64
	Color  color.NRGBA
	Glow   bool
}

// trailSamples is the number of samples taken along a segment of length dist.
func trailSamples(dist float64, maxSteps int) int {
	steps := math.Min(dist, float64(maxSteps))
	if steps <= 0 {
		return 0
	}
	return int(math.Ceil(steps))
}

// spawnTrail appends particles along the segment from (fromX, fromY) to
// (toX, toY) and returns how many were added.
func spawnTrail(dst []TrailParticle, cfg Config, rng *rand.Rand, fromX, fromY, toX, toY float64) ([]TrailParticle, int) {
	dx := toX - fromX
	dy := toY - fromY
	steps := trailSamples(math.Hypot(dx, dy), cfg.TrailSteps)

	added := 0
	for i := 0; i < steps; i++ {
		if rng.Float64() >= cfg.TrailSpawnChance {
			continue
		}
		t := float64(i) / float64(steps)
		px := fromX + dx*t
		py := fromY + dy*t
		dst = append(dst, TrailParticle{
			X:     px + (rng.Float64()-0.5)*cfg.TrailJitter,
			Y:     py + (rng.Float64()-0.5)*cfg.TrailJitter,
			Life:  1.0,
			Size:  rng.Float64()*cfg.TrailSizeRange + cfg.TrailMinSize,
			Color: cfg.TrailColor,
			Glow:  rng.Float64() < cfg.TrailGlowChance,
		})
		added++
	}
	return dst, added
}

// updateTrail integrates every particle by k frames and drops the expired
// ones in place, keeping the survivors in spawn order.
func updateTrail(ps []TrailParticle, tilt Vec, force, decay, k float64) []TrailParticle {
	alive := 0
	for i := range ps {
		p := &ps[i]
		p.VX += tilt.X * force * k
		p.VY += tilt.Y * force * k
		p.X += p.VX * k
		p.Y += p.VY * k
		p.Life -= decay * k
		if p.Life <= 0 {
			continue
		}
		ps[alive] = *p
		alive++
	}
	for i := alive; i < len(ps); i++ {
		ps[i] = TrailParticle{}
	}
	return ps[:alive]
}
