package runner

import (
	"voxelfolio/surface"
)

var (
	colorSkin    = surface.Hex("#F5C19F")
	colorShirt   = surface.Hex("#00AAAA")
	colorPants   = surface.Hex("#2d2d2d")
	colorCactus  = surface.Hex("#166534")
	colorCreeper = surface.Hex("#4ade80")
	colorMark    = surface.Hex("#000000")
)

// Render clears the surface and draws the player and every obstacle in
// internal (800x200) coordinates. A nil surface renders nothing.
func (g *Game) Render(s surface.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	drawPlayer(s, g.player.X, g.player.Y)
	for i := range g.obstacles {
		drawObstacle(s, &g.obstacles[i])
	}
	g.dirty = false
}

// drawPlayer stacks head (20), body (20) and legs (10) into the 50px figure.
func drawPlayer(s surface.Surface, x, y float64) {
	s.FillRect(x+4, y, 22, 20, colorSkin)
	s.FillRect(x, y+20, 30, 20, colorShirt)
	s.FillRect(x, y+40, 30, 10, colorPants)
}

func drawObstacle(s surface.Surface, o *Obstacle) {
	switch o.Kind {
	case Creeper:
		s.FillRect(o.X, o.Y, o.Width, o.Height, colorCreeper)
		s.FillRect(o.X+5, o.Y+10, 5, 5, colorMark)
		s.FillRect(o.X+20, o.Y+10, 5, 5, colorMark)
		s.FillRect(o.X+10, o.Y+20, 10, 10, colorMark)
	default:
		s.FillRect(o.X, o.Y, o.Width, o.Height, colorCactus)
		s.FillRect(o.X+5, o.Y+10, 5, 2, colorMark)
		s.FillRect(o.X+20, o.Y+20, 5, 2, colorMark)
	}
}
