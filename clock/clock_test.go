package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAccumulatorAdvance(t *testing.T) {
	a := NewAccumulator(50) // 20ms steps

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{10 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{45 * time.Millisecond, 2},
		{15 * time.Millisecond, 1}, // 5ms carried over
		{0, 0},
		{-time.Second, 0},
		{time.Second, MaxCatchUp},
		{20 * time.Millisecond, 1}, // backlog dropped
	}
	for i, tt := range tests {
		if got := a.Advance(tt.elapsed); got != tt.want {
			t.Fatalf("step %d: Advance(%v) = %d, want %d", i, tt.elapsed, got, tt.want)
		}
	}
}

func TestAccumulatorDefaultRate(t *testing.T) {
	if got := NewAccumulator(0).Step(); got != time.Second/60 {
		t.Fatalf("got %v, want %v", got, time.Second/60)
	}
}

func TestLoopStepsAndCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// fake clock moving exactly one step per tick
	base := time.Unix(0, 0)
	calls := 0
	now := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * (time.Second / 1000))
	}

	updates, draws := 0, 0
	l := &Loop{
		Rate: 1000,
		Now:  now,
		Update: func(dt float64) {
			if dt != 0.001 {
				t.Errorf("dt = %v, want 0.001", dt)
			}
			updates++
			if updates == 10 {
				cancel()
			}
		},
		Draw: func() { draws++ },
	}

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if updates != 10 {
		t.Fatalf("got %d updates, want 10", updates)
	}
	if draws != 9 {
		t.Fatalf("got %d draws, want 9", draws)
	}
}

func TestLoopStopsWhenDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	l := &Loop{Rate: 60}
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("got %v, want deadline exceeded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}
