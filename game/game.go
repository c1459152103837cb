// Package game is the desktop host: an ebiten.Game that owns the particle
// field and the runner, polls input, and composites both every frame.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"voxelfolio/runner"
	"voxelfolio/starfield"
)

// Game represents the host state
type Game struct {
	config Config
	input  InputProvider

	field  *starfield.Field
	runner *runner.Game

	debug DebugState

	// Window size from the last Layout
	width, height int
	viewport      Viewport

	// fieldImage keeps its contents between frames so the field's fade
	// leaves trails. stripImage is the runner at its internal resolution.
	fieldImage  *ebiten.Image
	stripImage  *ebiten.Image
	fieldCanvas *Canvas
	stripCanvas *Canvas

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling
	profiler *Profiler

	// FPS drop detection
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
	now            func() time.Time
}

// NewGame creates the host. input defaults to the ebiten devices.
func NewGame(config Config, input InputProvider) (*Game, error) {
	if input == nil {
		input = NewEbitenInput()
	}

	var profiler *Profiler
	if config.ProfileDir != "" {
		p, err := NewProfiler(config.ProfileDir)
		if err != nil {
			return nil, err
		}
		profiler = p
	}

	spawner := config.Spawner
	if spawner == nil {
		spawner = runner.NewRandomSpawner(config.Runner, rand.New(rand.NewSource(config.Seed+1)))
	}

	g := &Game{
		config:          config,
		input:           input,
		field:           starfield.New(config.Starfield, config.ScreenWidth, config.ScreenHeight, rand.New(rand.NewSource(config.Seed))),
		runner:          runner.New(config.Runner, spawner),
		debug:           DebugState{ShowOverlay: config.Debug},
		width:           config.ScreenWidth,
		height:          config.ScreenHeight,
		viewport:        NewViewport(config.ScreenWidth, config.ScreenHeight),
		fps:             60.0,
		profiler:        profiler,
		fpsDropCooldown: 10 * time.Second, // Don't trigger profiling more than once every 10 seconds
		now:             time.Now,
	}
	g.runner.OnEvent = g.onRunnerEvent

	g.gameStartTime = g.now()
	g.lastUpdateTime = g.gameStartTime
	return g, nil
}

// Field returns the particle field
func (g *Game) Field() *starfield.Field { return g.field }

// Runner returns the minigame
func (g *Game) Runner() *runner.Game { return g.runner }

// Update advances the simulations by the wall time since the last call
func (g *Game) Update() error {
	now := g.now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	g.applyInput(g.input.Poll())
	g.trackFPS(deltaTime, now)

	g.field.Tick(deltaTime)
	g.runner.Tick(deltaTime)
	return nil
}

func (g *Game) applyInput(in InputState) {
	if in.ToggleDebug {
		g.debug.Toggle()
	}

	if in.PointerMoved || in.PointerDown {
		g.field.PointerMove(in.PointerX, in.PointerY)
	}
	if in.PointerDown && g.viewport.Contains(in.PointerX, in.PointerY) {
		if in.Tap {
			g.runner.Press()
		} else {
			g.runner.Click()
		}
	}
	if in.Jump {
		g.runner.Press()
	}

	if in.HasTilt {
		g.field.Orient(in.Beta, in.Gamma)
	}
}

// trackFPS updates the measured rate every half second and captures a
// profile when it drops below the configured threshold.
func (g *Game) trackFPS(deltaTime float64, now time.Time) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	// Skip detection in the first 3 seconds after launch
	if g.profiler == nil || g.fps >= g.config.FrameDropFPS || now.Sub(g.gameStartTime) < 3*time.Second {
		return
	}
	if !g.lastFPSDropTime.IsZero() && now.Sub(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = now

	reason := fmt.Sprintf("fps%.0f-stars%d-particles%d", g.fps, len(g.field.Stars()), len(g.field.Particles()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("FPS drop detected (%.0f FPS, NumGC=%d, HeapAlloc=%d KB). Saving performance profile...",
		g.fps, m.NumGC, m.HeapAlloc/1024)

	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the field, the strip and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureImages()

	g.field.Render(g.fieldCanvas)
	screen.DrawImage(g.fieldImage, nil)

	if g.runner.NeedsRedraw() {
		g.runner.Render(g.stripCanvas)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = g.viewport.GeoM()
	screen.DrawImage(g.stripImage, op)

	g.drawHUD(screen)
	if g.debug.ShowOverlay {
		g.drawDebug(screen)
	}
}

// Layout follows the window size; the field is regenerated on resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(g.width, 1), max(g.height, 1)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	g.viewport = NewViewport(width, height)
	g.field.Resize(width, height)

	if g.fieldImage != nil {
		g.fieldImage.Deallocate()
		g.fieldImage = nil
		g.fieldCanvas = nil
	}
}

func (g *Game) ensureImages() {
	if g.fieldImage == nil {
		g.fieldImage = ebiten.NewImage(max(g.width, 1), max(g.height, 1))
		g.fieldCanvas = NewCanvas(g.fieldImage)
	}
	if g.stripImage == nil {
		g.stripImage = ebiten.NewImage(runner.Width, runner.Height)
		g.stripCanvas = NewCanvas(g.stripImage)
		g.runner.Render(g.stripCanvas)
	}
}

func (g *Game) onRunnerEvent(e runner.Event) {
	if e.Type != runner.EventJump {
		log.Printf("runner: %s", e)
	}
	if g.config.OnEvent != nil {
		g.config.OnEvent(e)
	}
}

// Close releases the GPU images
func (g *Game) Close() error {
	if g.fieldImage != nil {
		g.fieldImage.Deallocate()
		g.fieldImage = nil
	}
	if g.stripImage != nil {
		g.stripImage.Deallocate()
		g.stripImage = nil
	}
	return nil
}
