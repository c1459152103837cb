package runner

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect on both axes. Touching edges
// do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Player is the controllable character.
type Player struct {
	X, Y          float64
	Width, Height float64
	DY            float64
	Grounded      bool
}

func newPlayer(cfg Config) Player {
	return Player{
		X:        cfg.PlayerX,
		Y:        cfg.groundLine(),
		Width:    cfg.PlayerWidth,
		Height:   cfg.PlayerHeight,
		Grounded: true,
	}
}

// Bounds returns the player's box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Jump launches the player if it is standing on the ground.
func (p *Player) Jump(power float64) bool {
	if !p.Grounded {
		return false
	}
	p.DY = power
	p.Grounded = false
	return true
}

// Fall applies one frame of gravity and clamps to the ground line.
func (p *Player) Fall(gravity, groundLine float64) {
	p.DY += gravity
	p.Y += p.DY
	if p.Y >= groundLine {
		p.Y = groundLine
		p.DY = 0
		p.Grounded = true
	}
}

// ObstacleKind selects one of the two obstacle looks.
type ObstacleKind int

const (
	Cactus ObstacleKind = iota
	Creeper
)

func (k ObstacleKind) String() string {
	switch k {
	case Cactus:
		return "cactus"
	case Creeper:
		return "creeper"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard drifting left along the ground.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Kind          ObstacleKind
}

// Bounds returns the obstacle's box.
func (o *Obstacle) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// offscreen reports whether the obstacle has fully left the left edge.
func (o *Obstacle) offscreen() bool {
	return o.X+o.Width < 0
}
