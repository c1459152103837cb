package runner

import "math/rand"

// Spawner decides, for a playing frame, whether an obstacle appears and which.
type Spawner interface {
	Spawn(frame int) (ObstacleKind, bool)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(frame int) (ObstacleKind, bool)

func (f SpawnerFunc) Spawn(frame int) (ObstacleKind, bool) { return f(frame) }

// RandomSpawner tries every Interval frames, skips with SkipChance and picks a
// creeper with CreeperChance.
type RandomSpawner struct {
	Interval      int
	SkipChance    float64
	CreeperChance float64
	rng           *rand.Rand
}

// NewRandomSpawner builds a spawner from the game config.
func NewRandomSpawner(cfg Config, rng *rand.Rand) *RandomSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &RandomSpawner{
		Interval:      cfg.SpawnInterval,
		SkipChance:    cfg.SpawnSkipChance,
		CreeperChance: cfg.CreeperChance,
		rng:           rng,
	}
}

func (s *RandomSpawner) Spawn(frame int) (ObstacleKind, bool) {
	if s.Interval <= 0 || frame%s.Interval != 0 {
		return 0, false
	}
	if s.rng.Float64() < s.SkipChance {
		return 0, false
	}
	if s.rng.Float64() < s.CreeperChance {
		return Creeper, true
	}
	return Cactus, true
}
