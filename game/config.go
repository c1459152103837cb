package game

import (
	"voxelfolio/runner"
	"voxelfolio/starfield"
)

// Config holds the desktop host configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	Starfield starfield.Config
	Runner    runner.Config

	// Spawner overrides the runner's random obstacle spawner
	Spawner runner.Spawner

	// Seed feeds the field's random source
	Seed int64

	// Debug shows the overlay at startup (F1 toggles it)
	Debug bool

	// ProfileDir enables frame-drop profiling when non-empty
	ProfileDir string

	// FrameDropFPS is the measured rate below which a profile is captured
	FrameDropFPS float64

	// OnEvent receives runner events after the host has logged them
	OnEvent func(runner.Event)
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Starfield:    starfield.DefaultConfig(),
		Runner:       runner.DefaultConfig(),
		Seed:         1,
		FrameDropFPS: 30,
	}
}

// stripScale returns the scale that fits the runner strip to width.
func stripScale(width int) float64 {
	return float64(width) / runner.Width
}

// stripTop returns the screen Y of the strip's top edge. The strip is
// anchored to the bottom of the window.
func stripTop(width, height int) float64 {
	return float64(height) - runner.Height*stripScale(width)
}
