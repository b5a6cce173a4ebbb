package app

import "time"

// StepTimer paces generation advances at a steady rate, independent of how
// often the render loop polls it.
type StepTimer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepTimer constructs a StepTimer targeting gps generations per second.
func NewStepTimer(gps int) *StepTimer {
	if gps <= 0 {
		gps = 30
	}
	t := &StepTimer{step: time.Second / time.Duration(gps)}
	t.accumulator = t.step
	return t
}

// ShouldStep reports whether another generation is due.
func (t *StepTimer) ShouldStep() bool {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.step {
		t.accumulator -= t.step
		return true
	}
	return false
}
