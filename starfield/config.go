package starfield

import (
	"image/color"

	"voxelfolio/surface"
)

// FrameDuration is the nominal frame the per-frame constants are tuned for.
const FrameDuration = 1.0 / 60

// maxDelta clamps a single tick to avoid large jumps after a stall.
const maxDelta = 0.1

// Config holds the field tuning constants. All rates are per nominal frame.
type Config struct {
	// StarCount is the fixed star population.
	StarCount int

	// StarSpeed is the horizontal drift of a star at depth 1.
	StarSpeed float64

	// MinDepth and DepthRange bound star depth: z in [MinDepth, MinDepth+DepthRange).
	MinDepth   float64
	DepthRange float64

	// MaxStarSize bounds the base radius: size in [0, MaxStarSize).
	MaxStarSize float64

	// Palette is the star colour set.
	Palette []color.NRGBA

	// ParallaxDamping scales (cursor - centre + tilt*TiltParallaxGain).
	ParallaxDamping  float64
	TiltParallaxGain float64

	// TiltSensitivity scales raw orientation degrees into the tilt vector.
	TiltSensitivity float64

	// TiltForce is the per-frame acceleration a unit of tilt applies to particles.
	TiltForce float64

	// LifeDecay is subtracted from particle life every frame.
	LifeDecay float64

	// TrailSteps caps the number of samples along one pointer segment.
	TrailSteps int

	// TrailSpawnChance is the probability a sample spawns a particle.
	TrailSpawnChance float64

	// TrailJitter is the full width of the random offset around a sample.
	TrailJitter float64

	// TrailMinSize and TrailSizeRange bound particle size.
	TrailMinSize   float64
	TrailSizeRange float64

	// TrailGlowChance is the probability a particle is drawn as a glow blob.
	TrailGlowChance float64

	// TrailColor is used for plain (non-glow) particles.
	TrailColor color.NRGBA

	// FadeColor is painted over the previous frame instead of clearing it.
	FadeColor color.NRGBA

	// CoreRadius and AuraRadius size the two cursor glows.
	CoreRadius float64
	AuraRadius float64
}

// DefaultConfig returns the tuning of the portfolio background.
func DefaultConfig() Config {
	return Config{
		StarCount:        400,
		StarSpeed:        0.2,
		MinDepth:         0.5,
		DepthRange:       2,
		MaxStarSize:      2,
		Palette:          []color.NRGBA{surface.Hex("#4ade80"), surface.Hex("#ffffff"), surface.Hex("#22d3ee"), surface.Hex("#a78bfa")},
		ParallaxDamping:  0.05,
		TiltParallaxGain: 10,
		TiltSensitivity:  0.5,
		TiltForce:        0.001,
		LifeDecay:        0.02,
		TrailSteps:       10,
		TrailSpawnChance: 0.5,
		TrailJitter:      4,
		TrailMinSize:     1,
		TrailSizeRange:   2,
		TrailGlowChance:  1,
		TrailColor:       surface.RGBA(74, 222, 128, 0.5),
		FadeColor:        surface.RGBA(5, 5, 5, 0.3),
		CoreRadius:       20,
		AuraRadius:       150,
	}
}

var trailGreen = surface.RGBA(74, 222, 128, 1)

var coreStops = []surface.Stop{
	{Offset: 0, Color: surface.RGBA(255, 255, 255, 1)},
	{Offset: 0.5, Color: surface.RGBA(180, 255, 200, 1)},
	{Offset: 1, Color: surface.RGBA(74, 222, 128, 0)},
}

var auraStops = []surface.Stop{
	{Offset: 0, Color: surface.RGBA(74, 222, 128, 0.4)},
	{Offset: 0.5, Color: surface.RGBA(74, 222, 128, 0.1)},
	{Offset: 1, Color: surface.RGBA(0, 0, 0, 0)},
}
