package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"voxelfolio/clock"
	"voxelfolio/runner"
	"voxelfolio/starfield"
	"voxelfolio/surface"
)

// PixelScale is the number of field units per terminal pixel. A half-block
// pixel is roughly square, so the field sees a screen about as large as the
// same terminal drawn with an 8x16 font.
const PixelScale = 8

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(74, 222, 128)).Background(tcell.ColorBlack)
	styleDim    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(34, 120, 70)).Background(tcell.ColorBlack)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(239, 68, 68)).Background(tcell.ColorBlack).Bold(true)
	stylePrompt = tcell.StyleDefault.Foreground(tcell.NewRGBColor(52, 211, 153)).Background(tcell.ColorBlack)
)

// Options configures a Host.
type Options struct {
	TPS       int
	Starfield starfield.Config
	Runner    runner.Config
	Spawner   runner.Spawner
	Rng       *rand.Rand
	Debug     bool

	// OnEvent receives runner events after the host has logged them.
	OnEvent func(runner.Event)
}

// Host owns both simulations and draws them on a tcell screen. All
// simulation access happens on the goroutine running Run.
type Host struct {
	screen tcell.Screen
	opts   Options

	field *starfield.Field
	game  *runner.Game

	fieldFB  *Framebuffer
	runnerFB *Framebuffer
	strip    *surface.Transform

	cols, rows int
	debug      bool
	fps        float64

	events chan tcell.Event
	done   chan struct{}
	cancel context.CancelFunc
}

// NewHost creates a host for an initialised screen. The caller keeps
// ownership of the screen and must Fini it.
func NewHost(screen tcell.Screen, opts Options) *Host {
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(1))
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	h := &Host{
		screen:   screen,
		opts:     opts,
		fieldFB:  NewFramebuffer(0, 0),
		runnerFB: NewFramebuffer(0, 0),
		debug:    opts.Debug,
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
	}

	h.game = runner.New(opts.Runner, opts.Spawner)
	h.game.OnEvent = h.onGameEvent

	cols, rows := screen.Size()
	h.field = starfield.New(opts.Starfield, cols*PixelScale, rows*2*PixelScale, opts.Rng)
	h.resize(cols, rows)
	return h
}

// Field returns the particle field.
func (h *Host) Field() *starfield.Field { return h.field }

// Game returns the runner.
func (h *Host) Game() *runner.Game { return h.game }

// Run reads screen events on a separate goroutine and drives both
// simulations until ctx is cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	ctx, h.cancel = context.WithCancel(ctx)
	defer h.cancel()

	go h.pollEvents()
	defer func() {
		close(h.done)
		// unblock PollEvent
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.Draw()

	loop := &clock.Loop{
		Rate:   h.opts.TPS,
		Update: h.update,
		Draw:   h.Draw,
	}
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-h.done:
			return
		default:
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

func (h *Host) update(dt float64) {
drain:
	for {
		select {
		case ev := <-h.events:
			h.HandleEvent(ev)
		default:
			break drain
		}
	}
	h.Step(dt)
}

// Step advances both simulations by dt seconds.
func (h *Host) Step(dt float64) {
	h.field.Tick(dt)
	h.game.Tick(dt)
	if dt > 0 {
		h.fps = h.fps*0.9 + (1/dt)*0.1
	}
}

// HandleEvent applies one screen event. It returns false when the event asks
// the host to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.resize(cols, rows)
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.quit()
		return false
	case tcell.KeyUp:
		h.game.Press()
	case tcell.KeyEnter:
		h.game.Click()
	case tcell.KeyF1:
		h.debug = !h.debug
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			h.game.Press()
		case 'q':
			h.quit()
			return false
		}
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x := (float64(col) + 0.5) * PixelScale
	y := (float64(row)*2 + 1) * PixelScale
	h.field.PointerMove(x, y)

	if ev.Buttons()&tcell.Button1 != 0 && h.inStrip(row) {
		h.game.Click()
	}
}

// inStrip reports whether a screen row shows part of the runner strip.
func (h *Host) inStrip(row int) bool {
	top := int(h.strip.OffsetY) / 2
	return row >= top
}

func (h *Host) quit() {
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Host) resize(cols, rows int) {
	h.cols, h.rows = cols, rows
	h.fieldFB.Resize(cols, rows*2)
	h.runnerFB.Resize(cols, rows*2)
	h.strip = surface.Fit(h.runnerFB, runner.Width, runner.Height)
	h.field.Resize(cols*PixelScale, rows*2*PixelScale)
	// repaint the strip into the new buffer
	h.game.Render(h.strip)
}

// Draw renders both layers and the HUD, then shows the screen.
func (h *Host) Draw() {
	h.field.Render(&surface.Transform{Dst: h.fieldFB, Scale: 1.0 / PixelScale})
	if h.game.NeedsRedraw() {
		h.game.Render(h.strip)
	}

	Present(h.screen, h.fieldFB, h.runnerFB)
	h.drawOverlay()
	if h.debug {
		h.drawDebug()
	}
	h.screen.Show()
}

func (h *Host) drawOverlay() {
	o := h.game.Overlay()
	top := int(h.strip.OffsetY) / 2

	if o.Score != "" {
		drawText(h.screen, h.cols-len(o.HighScore)-2, top, o.HighScore, styleDim)
		drawText(h.screen, h.cols-len(o.Score)-2, top+1, o.Score, styleHUD)
	}

	mid := top + (h.rows-top)/2
	if o.Headline != "" {
		drawCentered(h.screen, h.cols, mid-2, o.Headline, styleAlert)
		drawCentered(h.screen, h.cols, mid-1, o.Detail, styleHUD)
	}
	if o.Prompt != "" {
		drawCentered(h.screen, h.cols, mid, o.Prompt, stylePrompt)
	}
}

func (h *Host) drawDebug() {
	lines := []string{
		fmt.Sprintf("FPS: %.1f", h.fps),
		fmt.Sprintf("Stars: %d", len(h.field.Stars())),
		fmt.Sprintf("Particles: %d", len(h.field.Particles())),
		fmt.Sprintf("Mode: %s  Frame: %d", h.game.Mode(), h.game.Frame()),
	}
	for i, l := range lines {
		drawText(h.screen, 1, i, l, styleHUD)
	}
}

func (h *Host) onGameEvent(e runner.Event) {
	if e.Type != runner.EventJump {
		log.Printf("runner: %s", e)
	}
	if h.opts.OnEvent != nil {
		h.opts.OnEvent(e)
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(screen tcell.Screen, cols, y int, s string, style tcell.Style) {
	drawText(screen, (cols-len([]rune(s)))/2, y, s, style)
}
