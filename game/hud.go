package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	colorHighScore = color.NRGBA{16, 185, 129, 153}
	colorScore     = color.RGBA{52, 211, 153, 255}
	colorHeadline  = color.RGBA{239, 68, 68, 255}
	colorDetail    = color.RGBA{255, 255, 255, 255}
	colorPrompt    = color.RGBA{52, 211, 153, 255}
	colorButtonBg  = color.NRGBA{0, 0, 0, 128}
	colorButtonRim = color.NRGBA{16, 185, 129, 128}
)

// hudScale enlarges the 7x13 bitmap font on wide windows.
func hudScale(vp Viewport) float64 {
	if vp.Width >= 1200 {
		return 2
	}
	return 1.5
}

// drawHUD draws the score in the strip's top-right corner and the mode
// overlay in its centre.
func (g *Game) drawHUD(screen *ebiten.Image) {
	o := g.runner.Overlay()
	vp := g.viewport
	scale := hudScale(vp)
	lineH := 16 * scale

	if o.Score != "" {
		right := vp.Width - 16*vp.Scale
		drawText(screen, o.HighScore, right, vp.Top+16*vp.Scale, scale, text.AlignEnd, colorHighScore)
		drawText(screen, o.Score, right, vp.Top+16*vp.Scale+lineH, scale, text.AlignEnd, colorScore)
	}

	cx := vp.Width / 2
	cy := vp.Top + (vp.Height-vp.Top)/2 - 10*vp.Scale
	if o.Headline != "" {
		drawText(screen, o.Headline, cx, cy-2.5*lineH, scale, text.AlignCenter, colorHeadline)
		drawText(screen, o.Detail, cx, cy-1.5*lineH, scale, text.AlignCenter, colorDetail)
	}
	if o.Prompt != "" {
		w, _ := text.Measure(o.Prompt, hudFace, 0)
		bw, bh := w*scale+24, lineH+12
		bx, by := cx-bw/2, cy-6
		vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), colorButtonBg, false)
		vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 1, colorButtonRim, false)
		drawText(screen, o.Prompt, cx, cy, scale, text.AlignCenter, colorPrompt)
	}
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, hudFace, op)
}
