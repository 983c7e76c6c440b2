package core

import (
	"testing"
	"time"
)

func TestFixedStepCountsDueTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if n := fs.Steps(); n != 0 {
		t.Fatalf("first poll should only arm the timer, got %d", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := fs.Steps(); n != 2 {
		t.Fatalf("expected 2 ticks after 250ms at 10 tps, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := fs.Steps(); n != 1 {
		t.Fatalf("leftover 50ms plus 50ms should make one tick, got %d", n)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100)
	fs.now = func() time.Time { return clock }
	fs.Steps()
	clock = clock.Add(time.Minute)
	if n := fs.Steps(); n != maxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", maxCatchUp, n)
	}
	clock = clock.Add(5 * time.Millisecond)
	if n := fs.Steps(); n != 0 {
		t.Fatalf("accumulator should be dropped after a stall, got %d", n)
	}
}

func TestFixedStepClampsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 1 {
		t.Fatalf("expected tps clamped to 1, got %d", fs.TPS())
	}
	fs.SetTPS(30)
	if fs.TPS() != 30 {
		t.Fatalf("expected tps 30, got %d", fs.TPS())
	}
}
