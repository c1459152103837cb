// Package runner implements the footer endless-runner: a START/PLAYING/
// GAME_OVER state machine with jump physics, drifting obstacles and AABB
// collisions.
//
// The game advances in whole frames. Input is recorded by Press and Click and
// consumed by the next Step, so hosts may call them from any event adapter that
// runs on the update goroutine.
package runner

import (
	"fmt"

	"github.com/google/uuid"
)

// Mode is the session state.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModeGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// EventType identifies a game event.
type EventType int

const (
	EventStart EventType = iota
	EventJump
	EventGameOver
)

// Event is delivered to Game.OnEvent.
type Event struct {
	Type      EventType
	Session   uuid.UUID
	Frame     int
	Score     int
	HighScore int
}

func (e Event) String() string {
	switch e.Type {
	case EventStart:
		return fmt.Sprintf("session %s started", e.Session)
	case EventJump:
		return fmt.Sprintf("session %s jump at frame %d", e.Session, e.Frame)
	case EventGameOver:
		return fmt.Sprintf("session %s over at frame %d: score %d, high score %d", e.Session, e.Frame, e.Score, e.HighScore)
	default:
		return fmt.Sprintf("session %s event %d", e.Session, e.Type)
	}
}

// Game is one runner instance. It is not safe for concurrent use.
type Game struct {
	cfg     Config
	spawner Spawner

	mode      Mode
	player    Player
	obstacles []Obstacle

	frame     int
	score     int
	highScore int
	session   uuid.UUID

	// pending input, consumed by the next Step
	pendingPress bool
	pendingClick bool

	acc   float64
	dirty bool

	// OnEvent, when set, is called synchronously from Step.
	OnEvent func(Event)
}

// New creates a game in ModeStart showing the idle pose.
func New(cfg Config, spawner Spawner) *Game {
	if spawner == nil {
		spawner = NewRandomSpawner(cfg, nil)
	}
	return &Game{
		cfg:       cfg,
		spawner:   spawner,
		mode:      ModeStart,
		player:    newPlayer(cfg),
		obstacles: make([]Obstacle, 0, 8),
		dirty:     true,
	}
}

// Press records the jump/start input (space, arrow up, tap). While playing it
// jumps; otherwise it starts a new session.
func (g *Game) Press() { g.pendingPress = true }

// Click records an explicit start request. It has no effect while playing.
func (g *Game) Click() { g.pendingClick = true }

// Start resets the session and enters ModePlaying.
func (g *Game) Start() {
	g.mode = ModePlaying
	g.frame = 0
	g.score = 0
	g.player = newPlayer(g.cfg)
	g.obstacles = g.obstacles[:0]
	g.session = uuid.New()
	g.dirty = true
	g.emit(EventStart)
}

// Tick runs as many whole frames as dt seconds cover.
func (g *Game) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	g.acc += dt
	steps := 0
	for g.acc >= StepDuration && steps < maxCatchUp {
		g.Step()
		g.acc -= StepDuration
		steps++
	}
	if steps == maxCatchUp {
		g.acc = 0
	}
}

// Step advances exactly one frame.
func (g *Game) Step() {
	if g.consumeInput() {
		return
	}
	if g.mode != ModePlaying {
		return
	}

	g.frame++
	if g.cfg.FramesPerPoint > 0 {
		g.score = g.frame / g.cfg.FramesPerPoint
	}
	g.dirty = true

	if kind, ok := g.spawner.Spawn(g.frame); ok {
		g.obstacles = append(g.obstacles, Obstacle{
			X:      Width,
			Y:      g.cfg.GroundY - g.cfg.ObstacleHeight,
			Width:  g.cfg.ObstacleWidth,
			Height: g.cfg.ObstacleHeight,
			Kind:   kind,
		})
	}

	g.player.Fall(g.cfg.Gravity, g.cfg.groundLine())

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= g.cfg.Speed
		if o.offscreen() {
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	pb := g.player.Bounds()
	for i := range g.obstacles {
		if Overlaps(pb, g.obstacles[i].Bounds()) {
			g.gameOver()
			return
		}
	}
}

// consumeInput applies pending input and reports whether a session started.
func (g *Game) consumeInput() bool {
	press, click := g.pendingPress, g.pendingClick
	g.pendingPress, g.pendingClick = false, false

	if g.mode != ModePlaying {
		if press || click {
			g.Start()
			return true
		}
		return false
	}
	if press && g.player.Jump(g.cfg.JumpPower) {
		g.emit(EventJump)
	}
	return false
}

func (g *Game) gameOver() {
	g.mode = ModeGameOver
	g.highScore = max(g.highScore, g.score)
	g.dirty = true
	g.emit(EventGameOver)
}

func (g *Game) emit(t EventType) {
	if g.OnEvent == nil {
		return
	}
	g.OnEvent(Event{
		Type:      t,
		Session:   g.session,
		Frame:     g.frame,
		Score:     g.score,
		HighScore: g.highScore,
	})
}

// Mode returns the session state.
func (g *Game) Mode() Mode { return g.mode }

// Score returns floor(frame / FramesPerPoint) of the current session.
func (g *Game) Score() int { return g.score }

// HighScore is the best score seen since the process started.
func (g *Game) HighScore() int { return g.highScore }

// Frame returns the number of playing frames in the current session.
func (g *Game) Frame() int { return g.frame }

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// Obstacles returns the live obstacle slice.
func (g *Game) Obstacles() []Obstacle { return g.obstacles }

// Session returns the id of the current session, or uuid.Nil before the first.
func (g *Game) Session() uuid.UUID { return g.session }

// NeedsRedraw reports whether the picture changed since the last Render.
func (g *Game) NeedsRedraw() bool { return g.dirty }
