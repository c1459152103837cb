package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var boundsColor = color.RGBA{255, 0, 255, 255}

// DebugState holds the overlay flags
type DebugState struct {
	ShowOverlay bool // FPS and population counters
	ShowBounds  bool // runner hitboxes
}

// Toggle cycles off -> overlay -> overlay with bounds -> off.
func (d *DebugState) Toggle() {
	switch {
	case !d.ShowOverlay:
		d.ShowOverlay = true
	case !d.ShowBounds:
		d.ShowBounds = true
	default:
		d.ShowOverlay, d.ShowBounds = false, false
	}
}

// debugLines returns the overlay text.
func (g *Game) debugLines() []string {
	return []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", g.fps, ebiten.ActualTPS()),
		fmt.Sprintf("Stars: %d  Particles: %d", len(g.field.Stars()), len(g.field.Particles())),
		fmt.Sprintf("Tilt: %.2f, %.2f", g.field.Tilt().X, g.field.Tilt().Y),
		fmt.Sprintf("Runner: %s  frame %d  obstacles %d", g.runner.Mode(), g.runner.Frame(), len(g.runner.Obstacles())),
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	for i, line := range g.debugLines() {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}

	if !g.debug.ShowBounds {
		return
	}
	vp := g.viewport
	stroke := func(x, y, w, h float64) {
		vector.StrokeRect(screen,
			float32(x*vp.Scale), float32(vp.Top+y*vp.Scale),
			float32(w*vp.Scale), float32(h*vp.Scale),
			1, boundsColor, false)
	}
	p := g.runner.Player()
	b := p.Bounds()
	stroke(b.X, b.Y, b.W, b.H)
	for _, o := range g.runner.Obstacles() {
		b := o.Bounds()
		stroke(b.X, b.Y, b.W, b.H)
	}
}
