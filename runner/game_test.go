package runner

import (
	"testing"

	"github.com/google/uuid"

	"voxelfolio/surface"
)

func onceAt(frame int, kind ObstacleKind) Spawner {
	return SpawnerFunc(func(f int) (ObstacleKind, bool) {
		return kind, f == frame
	})
}

func never() Spawner {
	return SpawnerFunc(func(int) (ObstacleKind, bool) { return 0, false })
}

func startedGame(t *testing.T, sp Spawner) *Game {
	t.Helper()
	g := New(DefaultConfig(), sp)
	g.Press()
	g.Step()
	if g.Mode() != ModePlaying {
		t.Fatalf("mode after start = %v, want PLAYING", g.Mode())
	}
	return g
}

func TestNewGameIdle(t *testing.T) {
	g := New(DefaultConfig(), never())
	if g.Mode() != ModeStart {
		t.Fatalf("got %v, want START", g.Mode())
	}
	p := g.Player()
	if p.Y != 110 || !p.Grounded {
		t.Fatalf("idle player = %+v, want grounded at 110", p)
	}
	if g.Session() != uuid.Nil {
		t.Fatalf("session before first start = %v, want nil", g.Session())
	}

	// no input, no progress
	for i := 0; i < 10; i++ {
		g.Step()
	}
	if g.Mode() != ModeStart || g.Frame() != 0 {
		t.Fatalf("idle game advanced: mode %v frame %d", g.Mode(), g.Frame())
	}
}

func TestStartResetsSession(t *testing.T) {
	g := startedGame(t, never())
	first := g.Session()
	if first == uuid.Nil {
		t.Fatal("expected a session id after start")
	}
	if g.Frame() != 0 || g.Score() != 0 || len(g.Obstacles()) != 0 {
		t.Fatalf("fresh session not reset: frame %d score %d obstacles %d", g.Frame(), g.Score(), len(g.Obstacles()))
	}

	g.Start()
	if g.Session() == first {
		t.Fatal("restart should allocate a new session id")
	}
}

func TestPlayerStaysOnGround(t *testing.T) {
	g := startedGame(t, never())
	line := DefaultConfig().groundLine()
	for i := 0; i < 500; i++ {
		g.Step()
		p := g.Player()
		if p.Y > line {
			t.Fatalf("frame %d: y = %v below ground line %v", g.Frame(), p.Y, line)
		}
		if p.Grounded != (p.Y == line) {
			t.Fatalf("frame %d: grounded = %v at y = %v", g.Frame(), p.Grounded, p.Y)
		}
	}
}

func TestScoreFromFrames(t *testing.T) {
	g := startedGame(t, never())
	for i := 0; i < 95; i++ {
		g.Step()
	}
	if g.Frame() != 95 || g.Score() != 9 {
		t.Fatalf("frame %d score %d, want 95 and 9", g.Frame(), g.Score())
	}
}

func TestCollisionIsDeterministic(t *testing.T) {
	g := startedGame(t, onceAt(100, Cactus))

	var events []Event
	g.OnEvent = func(e Event) { events = append(events, e) }

	for i := 0; i < 1000 && g.Mode() == ModePlaying; i++ {
		g.Step()
	}
	if g.Mode() != ModeGameOver {
		t.Fatal("expected the obstacle to end the session")
	}
	if g.Frame() != 244 {
		t.Fatalf("game over at frame %d, want 244", g.Frame())
	}
	if g.Score() != 24 || g.HighScore() != 24 {
		t.Fatalf("score %d high %d, want 24 and 24", g.Score(), g.HighScore())
	}
	if len(events) != 1 || events[0].Type != EventGameOver || events[0].Score != 24 {
		t.Fatalf("events = %+v, want a single game over at 24", events)
	}

	// frozen after game over
	g.Step()
	if g.Frame() != 244 {
		t.Fatalf("frame advanced after game over: %d", g.Frame())
	}
}

func TestHighScoreKeepsMaximum(t *testing.T) {
	early := 0
	g := New(DefaultConfig(), SpawnerFunc(func(f int) (ObstacleKind, bool) {
		return Creeper, f == early
	}))

	play := func(spawnAt int) {
		early = spawnAt
		g.Press()
		g.Step()
		for i := 0; i < 2000 && g.Mode() == ModePlaying; i++ {
			g.Step()
		}
		if g.Mode() != ModeGameOver {
			t.Fatalf("session spawning at %d never ended", spawnAt)
		}
	}

	play(100) // ends at 24
	if g.HighScore() != 24 {
		t.Fatalf("high score %d, want 24", g.HighScore())
	}

	play(10) // ends at 15
	if g.Score() != 15 {
		t.Fatalf("second score %d, want 15", g.Score())
	}
	if g.HighScore() != 24 {
		t.Fatalf("lower score replaced high score: %d", g.HighScore())
	}

	play(200) // ends at 34
	if g.HighScore() != 34 {
		t.Fatalf("high score %d, want 34", g.HighScore())
	}
}

func TestJumpArc(t *testing.T) {
	cfg := DefaultConfig()
	g := startedGame(t, never())

	var jumps int
	g.OnEvent = func(e Event) {
		if e.Type == EventJump {
			jumps++
		}
	}

	g.Press()
	g.Step()
	p := g.Player()
	if p.Grounded {
		t.Fatal("player should be airborne after a jump")
	}
	if want := cfg.groundLine() + cfg.JumpPower + cfg.Gravity; p.Y != want {
		t.Fatalf("first airborne y = %v, want %v", p.Y, want)
	}

	// a press in the air is ignored
	g.Press()
	g.Step()
	if jumps != 1 {
		t.Fatalf("got %d jump events, want 1", jumps)
	}

	peak := p.Y
	frames := 2
	for !g.Player().Grounded {
		g.Step()
		frames++
		peak = min(peak, g.Player().Y)
		if frames > 100 {
			t.Fatal("player never landed")
		}
	}
	if frames < 39 || frames > 41 {
		t.Fatalf("landed after %d frames, want about 40", frames)
	}
	if peak > -3 || peak < -5 {
		t.Fatalf("peak y = %v, want about -4", peak)
	}
	p = g.Player()
	if p.Y != cfg.groundLine() || p.DY != 0 {
		t.Fatalf("landed player = %+v", p)
	}

	g.Step()
	if !g.Player().Grounded {
		t.Fatal("player left the ground without input")
	}
}

func TestJumpClearsObstacle(t *testing.T) {
	g := startedGame(t, onceAt(20, Cactus))
	// obstacle x = 800 - 5*(f-19); it reaches the player's column around frame 164
	for g.Frame() < 150 {
		g.Step()
	}
	g.Press()
	for i := 0; i < 100; i++ {
		g.Step()
	}
	if g.Mode() != ModePlaying {
		t.Fatalf("jump should clear the obstacle, mode %v at frame %d", g.Mode(), g.Frame())
	}
}

func TestClickOnlyStarts(t *testing.T) {
	g := startedGame(t, never())
	g.Click()
	g.Step()
	if !g.Player().Grounded {
		t.Fatal("click must not jump")
	}
	if g.Frame() != 1 {
		t.Fatalf("click while playing restarted the session: frame %d", g.Frame())
	}

	g2 := New(DefaultConfig(), never())
	g2.Click()
	g2.Step()
	if g2.Mode() != ModePlaying {
		t.Fatalf("click in START mode: got %v, want PLAYING", g2.Mode())
	}
}

func TestOffscreenObstaclesRemoved(t *testing.T) {
	g := startedGame(t, SpawnerFunc(func(f int) (ObstacleKind, bool) {
		return Cactus, f == 1
	}))
	// keep the player out of the way
	g.player.X = -1000
	for i := 0; i < 200; i++ {
		g.Step()
	}
	if n := len(g.Obstacles()); n != 0 {
		t.Fatalf("got %d obstacles, want 0", n)
	}
}

func TestTickAccumulates(t *testing.T) {
	g := startedGame(t, never())

	g.Tick(StepDuration / 2)
	if g.Frame() != 0 {
		t.Fatalf("half a step advanced to frame %d", g.Frame())
	}
	g.Tick(StepDuration / 2)
	if g.Frame() != 1 {
		t.Fatalf("two halves: frame %d, want 1", g.Frame())
	}

	g.Tick(10)
	if g.Frame() != 1+maxCatchUp {
		t.Fatalf("stall: frame %d, want %d", g.Frame(), 1+maxCatchUp)
	}

	g.Tick(0)
	g.Tick(-1)
	if g.Frame() != 1+maxCatchUp {
		t.Fatalf("non-positive dt advanced to %d", g.Frame())
	}
}

func TestRandomSpawner(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnSkipChance = 0
	cfg.CreeperChance = 0
	s := NewRandomSpawner(cfg, nil)

	if _, ok := s.Spawn(99); ok {
		t.Fatal("spawned off the interval")
	}
	kind, ok := s.Spawn(100)
	if !ok || kind != Cactus {
		t.Fatalf("got %v %v, want cactus", kind, ok)
	}

	s.SkipChance = 1
	if _, ok := s.Spawn(200); ok {
		t.Fatal("skip chance 1 still spawned")
	}

	s.SkipChance = 0
	s.CreeperChance = 1
	if kind, _ := s.Spawn(300); kind != Creeper {
		t.Fatalf("got %v, want creeper", kind)
	}
}

func TestRender(t *testing.T) {
	g := startedGame(t, onceAt(1, Creeper))
	g.Step()
	if !g.NeedsRedraw() {
		t.Fatal("expected a redraw after a step")
	}

	rec := surface.NewRecorder(Width, Height)
	g.Render(rec)

	if rec.Count(surface.OpClear) != 1 {
		t.Fatalf("got %d clears, want 1", rec.Count(surface.OpClear))
	}
	// player 3 + creeper 4
	if n := rec.Count(surface.OpRect); n != 7 {
		t.Fatalf("got %d rects, want 7", n)
	}
	if g.NeedsRedraw() {
		t.Fatal("render should clear the redraw flag")
	}

	g.Render(nil)
}

func TestOverlapsTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if Overlaps(a, Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatal("touching edges should not overlap")
	}
	if !Overlaps(a, Rect{X: 9, Y: 9, W: 10, H: 10}) {
		t.Fatal("expected overlap")
	}
}

func TestOverlay(t *testing.T) {
	g := New(DefaultConfig(), onceAt(100, Cactus))
	o := g.Overlay()
	if o.Prompt != "> PRESS START <" || o.Score != "" || o.Headline != "" {
		t.Fatalf("start overlay = %+v", o)
	}

	g.Press()
	g.Step()
	for i := 0; i < 57; i++ {
		g.Step()
	}
	o = g.Overlay()
	if o.Prompt != "" || o.Score != "00005" || o.HighScore != "HI: 0" {
		t.Fatalf("playing overlay = %+v", o)
	}

	for g.Mode() == ModePlaying {
		g.Step()
	}
	o = g.Overlay()
	want := Overlay{HighScore: "HI: 24", Score: "00024", Headline: "GAME OVER!", Detail: "Score: 24", Prompt: "> TRY AGAIN <"}
	if o != want {
		t.Fatalf("got %+v, want %+v", o, want)
	}
}

func TestEventString(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	tests := []struct {
		e    Event
		want string
	}{
		{Event{Type: EventStart, Session: id}, "session 00000000-0000-0000-0000-000000000001 started"},
		{Event{Type: EventJump, Session: id, Frame: 7}, "session 00000000-0000-0000-0000-000000000001 jump at frame 7"},
		{Event{Type: EventGameOver, Session: id, Frame: 244, Score: 24, HighScore: 30}, "session 00000000-0000-0000-0000-000000000001 over at frame 244: score 24, high score 30"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}
