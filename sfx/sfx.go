// Package sfx plays the runner's sound cues.
package sfx

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"voxelfolio/runner"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short cues onto the speaker. A Player whose speaker could not
// be initialised accepts every call and plays nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New returns a silent Player.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure is not fatal; callers log it and carry on.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Jump plays a short rising blip.
func (p *Player) Jump() {
	p.play(NewSweep(sampleRate, 440, 880, 80*time.Millisecond))
}

// GameOver plays a falling tone followed by a low beep.
func (p *Player) GameOver() {
	low, err := generators.SineTone(sampleRate, 110)
	if err != nil {
		log.Printf("sfx: %v", err)
		return
	}
	p.play(beep.Seq(
		NewSweep(sampleRate, 660, 220, 250*time.Millisecond),
		beep.Take(sampleRate.N(150*time.Millisecond), gain(low, 0.2)),
	))
}

// OnEvent maps runner events to cues.
func (p *Player) OnEvent(e runner.Event) {
	switch e.Type {
	case runner.EventJump:
		p.Jump()
	case runner.EventGameOver:
		p.GameOver()
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func gain(s beep.Streamer, g float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= g
			samples[i][1] *= g
		}
		return n, ok
	})
}

// Sweep is a sine whose frequency glides linearly from one pitch to another
// under a short attack and release envelope. It ends after its duration.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)

		// 5ms attack, linear release
		attack := math.Min(float64(s.pos)/float64(s.sr)/0.005, 1)
		v := 0.25 * attack * (1 - progress) * math.Sin(s.phase)

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *Sweep) Err() error { return nil }

// Len returns the sweep length in samples.
func (s *Sweep) Len() int { return s.total }
