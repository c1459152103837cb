package starfield

import (
	"math"
	"math/rand"
	"testing"

	"voxelfolio/surface"
)

func newTestField(t *testing.T, w, h int) *Field {
	t.Helper()
	return New(DefaultConfig(), w, h, rand.New(rand.NewSource(42)))
}

func TestNewPopulatesStars(t *testing.T) {
	f := newTestField(t, 640, 480)
	if got := len(f.Stars()); got != 400 {
		t.Fatalf("star count = %d, want 400", got)
	}
	for i, s := range f.Stars() {
		if s.Z < 0.5 || s.Z >= 2.5 {
			t.Fatalf("star %d depth %v outside [0.5, 2.5)", i, s.Z)
		}
		if s.X < 0 || s.X >= 640 || s.Y < 0 || s.Y >= 480 {
			t.Fatalf("star %d at (%v, %v) outside field", i, s.X, s.Y)
		}
	}
}

func TestResizeRegeneratesStars(t *testing.T) {
	f := newTestField(t, 640, 480)
	before := append([]Star(nil), f.Stars()...)

	f.Resize(320, 200)
	after := f.Stars()
	if len(after) != len(before) {
		t.Fatalf("star count changed on resize: %d -> %d", len(before), len(after))
	}
	same := 0
	for i := range after {
		if after[i] == before[i] {
			same++
		}
		if after[i].X >= 320 || after[i].Y >= 200 {
			t.Fatalf("star %d at (%v, %v) outside resized field", i, after[i].X, after[i].Y)
		}
	}
	if same == len(after) {
		t.Fatalf("resize kept the old population")
	}
}

func TestZeroSizeFieldHasNoStars(t *testing.T) {
	f := newTestField(t, 0, 0)
	if len(f.Stars()) != 0 {
		t.Fatalf("expected no stars for an empty field")
	}
	f.Tick(FrameDuration)
}

func TestStarsStayInsideWidth(t *testing.T) {
	const width = 100
	f := newTestField(t, width, 50)
	for tick := 0; tick < 5000; tick++ {
		f.Tick(FrameDuration)
		for i, s := range f.Stars() {
			if s.X < 0 || s.X >= width {
				t.Fatalf("tick %d: star %d x = %v outside [0, %d)", tick, i, s.X, width)
			}
		}
	}
}

func TestStarWrapKeepsDepthAndRow(t *testing.T) {
	s := Star{X: 99.95, Y: 12, Z: 0.5}
	s.advance(0.2, 100)
	if s.X != 0 {
		t.Fatalf("x after wrap = %v, want 0", s.X)
	}
	if s.Y != 12 || s.Z != 0.5 {
		t.Fatalf("wrap changed y/z: %+v", s)
	}
}

func TestTickDeltaClamped(t *testing.T) {
	a := newTestField(t, 200, 100)
	b := newTestField(t, 200, 100)
	a.Tick(5)
	b.Tick(maxDelta)
	for i := range a.Stars() {
		if a.Stars()[i] != b.Stars()[i] {
			t.Fatalf("large dt not clamped: star %d %+v vs %+v", i, a.Stars()[i], b.Stars()[i])
		}
	}
}

func TestParticleLifeDecreasesUntilRemoved(t *testing.T) {
	f := newTestField(t, 200, 200)
	f.particles = append(f.particles, TrailParticle{X: 10, Y: 10, Life: 1.0, Size: 2, Glow: true})

	want := 1.0
	decay := DefaultConfig().LifeDecay
	for tick := 1; tick < 100; tick++ {
		f.Tick(FrameDuration)
		want -= decay
		ps := f.Particles()
		if want <= 0 {
			if len(ps) != 0 {
				t.Fatalf("tick %d: particle still present with life %v", tick, ps[0].Life)
			}
			return
		}
		if len(ps) != 1 {
			t.Fatalf("tick %d: particle removed early (expected life %v)", tick, want)
		}
		if ps[0].Life != want {
			t.Fatalf("tick %d: life = %v, want %v", tick, ps[0].Life, want)
		}
	}
	t.Fatalf("particle never expired")
}

func TestTiltAcceleratesParticles(t *testing.T) {
	f := newTestField(t, 200, 200)
	f.Orient(20, 10) // tilt = (5, 10)
	f.particles = append(f.particles, TrailParticle{X: 50, Y: 50, Life: 1})

	f.Tick(FrameDuration)
	p := f.Particles()[0]
	if math.Abs(p.VX-0.005) > 1e-12 || math.Abs(p.VY-0.01) > 1e-12 {
		t.Fatalf("velocity = (%v, %v), want (0.005, 0.01)", p.VX, p.VY)
	}
	if math.Abs(p.X-50.005) > 1e-12 || math.Abs(p.Y-50.01) > 1e-12 {
		t.Fatalf("position = (%v, %v), want (50.005, 50.01)", p.X, p.Y)
	}
}

func TestOrientIgnoresMissingAxis(t *testing.T) {
	f := newTestField(t, 200, 200)
	f.Orient(40, -30)
	want := Vec{X: -15, Y: 20}
	if f.Tilt() != want {
		t.Fatalf("tilt = %+v, want %+v", f.Tilt(), want)
	}
	f.Orient(math.NaN(), 10)
	if f.Tilt() != want {
		t.Fatalf("NaN reading changed tilt to %+v", f.Tilt())
	}
}

func TestPointerMoveSpawnsFreshParticles(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		f := New(DefaultConfig(), 800, 600, rand.New(rand.NewSource(seed)))
		n := f.PointerMove(100, 0)
		if n < 0 || n > 10 {
			t.Fatalf("seed %d: spawned %d particles, want 0..10", seed, n)
		}
		if len(f.Particles()) != n {
			t.Fatalf("seed %d: %d particles stored, %d reported", seed, len(f.Particles()), n)
		}
		for i, p := range f.Particles() {
			if p.Life != 1.0 {
				t.Fatalf("seed %d: particle %d life = %v, want 1.0", seed, i, p.Life)
			}
			if p.VX != 0 || p.VY != 0 {
				t.Fatalf("seed %d: particle %d has initial velocity", seed, i)
			}
		}
		if f.Cursor() != (Vec{100, 0}) {
			t.Fatalf("cursor = %+v, want (100, 0)", f.Cursor())
		}
	}
}

func TestPointerMoveWithoutDistanceSpawnsNothing(t *testing.T) {
	f := newTestField(t, 800, 600)
	f.PointerMove(30, 40)
	before := len(f.Particles())
	if n := f.PointerMove(30, 40); n != 0 {
		t.Fatalf("zero-length move spawned %d", n)
	}
	if len(f.Particles()) != before {
		t.Fatalf("particle list changed on zero-length move")
	}
}

func TestTrailSamples(t *testing.T) {
	tests := []struct {
		dist float64
		want int
	}{
		{0, 0},
		{0.2, 1},
		{3.5, 4},
		{10, 10},
		{250, 10},
	}
	for _, tt := range tests {
		if got := trailSamples(tt.dist, 10); got != tt.want {
			t.Fatalf("trailSamples(%v) = %d, want %d", tt.dist, got, tt.want)
		}
	}
}

func TestCloserStarsShiftFurther(t *testing.T) {
	centre := Vec{400, 300}
	offset := Vec{12, -7}
	near := Star{X: 250, Y: 180, Z: 0.6}
	far := near
	far.Z = 2.1

	shift := func(s Star) float64 {
		still := Project(s, centre, Vec{})
		moved := Project(s, centre, offset)
		return math.Hypot(moved.X-still.X, moved.Y-still.Y)
	}
	if dn, df := shift(near), shift(far); dn <= df {
		t.Fatalf("near shift %v not greater than far shift %v", dn, df)
	}
}

func TestParallaxOffsetCombinesCursorAndTilt(t *testing.T) {
	f := newTestField(t, 800, 600)
	f.cursor = Vec{500, 300}
	f.Orient(0, 4) // tilt x = 2
	got := f.ParallaxOffset()
	want := Vec{X: (100 + 20) * 0.05, Y: 0}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("offset = %+v, want %+v", got, want)
	}
}

func TestRenderDrawsLayersInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StarCount = 3
	f := New(cfg, 300, 200, rand.New(rand.NewSource(7)))
	f.particles = append(f.particles,
		TrailParticle{X: 1, Y: 1, Life: 0.5, Size: 2, Glow: true},
		TrailParticle{X: 2, Y: 2, Life: 0.5, Size: 2, Color: cfg.TrailColor},
	)

	rec := surface.NewRecorder(300, 200)
	f.Render(rec)

	if len(rec.Ops) != 1+3+2+2 {
		t.Fatalf("recorded %d ops, want 8", len(rec.Ops))
	}
	fade := rec.Ops[0]
	if fade.Kind != surface.OpRect || fade.W != 300 || fade.H != 200 || fade.Color != cfg.FadeColor {
		t.Fatalf("first op is not the full-surface fade: %+v", fade)
	}
	for i := 1; i <= 3; i++ {
		if rec.Ops[i].Kind != surface.OpCircle {
			t.Fatalf("op %d = %v, want star circle", i, rec.Ops[i].Kind)
		}
	}
	glow := rec.Ops[4]
	if glow.Kind != surface.OpGlow || glow.R != 4 || glow.Stops[0].Color.A != 128 {
		t.Fatalf("glow particle drawn as %+v", glow)
	}
	plain := rec.Ops[5]
	if plain.Kind != surface.OpCircle || plain.Color.A != cfg.TrailColor.A/2 {
		t.Fatalf("plain particle drawn as %+v", plain)
	}
	if rec.Ops[6].R != cfg.CoreRadius || rec.Ops[7].R != cfg.AuraRadius {
		t.Fatalf("cursor glows radii = %v, %v", rec.Ops[6].R, rec.Ops[7].R)
	}
}

func TestRenderWithoutSurfaceIsNoop(t *testing.T) {
	f := newTestField(t, 10, 10)
	f.Render(nil)
}
