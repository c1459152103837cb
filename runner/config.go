package runner

// Internal resolution of the runner strip. Hosts scale it to their width.
const (
	Width  = 800
	Height = 200
)

// StepDuration is the wall time of one simulation frame.
const StepDuration = 1.0 / 60

// maxCatchUp bounds how many frames Tick runs after a stall.
const maxCatchUp = 6

// Config holds the game tuning. Values are per frame.
type Config struct {
	GroundY      float64
	PlayerX      float64
	PlayerWidth  float64
	PlayerHeight float64
	Gravity      float64
	JumpPower    float64 // negative is up

	Speed          float64 // obstacle drift per frame
	ObstacleWidth  float64
	ObstacleHeight float64

	// SpawnInterval is the frame cadence of spawn attempts.
	SpawnInterval int

	// SpawnSkipChance is the probability a spawn attempt yields nothing.
	SpawnSkipChance float64

	// CreeperChance is the probability a spawned obstacle is a creeper.
	CreeperChance float64

	// FramesPerPoint converts elapsed frames into score.
	FramesPerPoint int
}

// DefaultConfig returns the tuning of the footer minigame.
func DefaultConfig() Config {
	return Config{
		GroundY:         160,
		PlayerX:         50,
		PlayerWidth:     30,
		PlayerHeight:    50,
		Gravity:         0.6,
		JumpPower:       -12,
		Speed:           5,
		ObstacleWidth:   30,
		ObstacleHeight:  40,
		SpawnInterval:   100,
		SpawnSkipChance: 0.3,
		CreeperChance:   0.3,
		FramesPerPoint:  10,
	}
}

// groundLine is the resting Y of the player's top edge.
func (c Config) groundLine() float64 {
	return c.GroundY - c.PlayerHeight
}
