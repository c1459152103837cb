// Package clock drives fixed-timestep simulations from wall time.
package clock

import (
	"context"
	"time"
)

// MaxCatchUp bounds the steps run for one tick after a stall.
const MaxCatchUp = 6

// Accumulator turns elapsed wall time into whole steps of a fixed duration.
type Accumulator struct {
	step time.Duration
	acc  time.Duration
}

// NewAccumulator returns an accumulator for rate steps per second.
func NewAccumulator(rate int) *Accumulator {
	if rate <= 0 {
		rate = 60
	}
	return &Accumulator{step: time.Second / time.Duration(rate)}
}

// Step returns the fixed step duration.
func (a *Accumulator) Step() time.Duration { return a.step }

// Advance adds elapsed and returns how many whole steps are due. Past
// MaxCatchUp the backlog is dropped.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	a.acc += elapsed
	n := int(a.acc / a.step)
	a.acc -= time.Duration(n) * a.step
	if n > MaxCatchUp {
		n = MaxCatchUp
		a.acc = 0
	}
	return n
}

// Loop calls Update once per fixed step and Draw once per tick that ran at
// least one step.
type Loop struct {
	Rate   int
	Update func(dt float64)
	Draw   func()

	// Now defaults to time.Now.
	Now func() time.Time
}

// Run blocks until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	acc := NewAccumulator(l.Rate)
	now := l.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(acc.Step())
	defer ticker.Stop()

	dt := acc.Step().Seconds()
	last := now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		t := now()
		n := acc.Advance(t.Sub(last))
		last = t
		for i := 0; i < n; i++ {
			if l.Update != nil {
				l.Update(dt)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
		if n > 0 && l.Draw != nil {
			l.Draw()
		}
	}
}
