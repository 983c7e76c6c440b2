package core

import "time"

// maxCatchUp bounds how many ticks Steps reports after a stall, so a paused
// debugger or a dragged window does not cause a burst of simulation.
const maxCatchUp = 8

// FixedStep runs simulation updates at a steady ticks-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Values below one are clamped to one.
func (f *FixedStep) SetTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Steps returns how many ticks are due since the previous call.
func (f *FixedStep) Steps() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}
