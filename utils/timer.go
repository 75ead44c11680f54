package utils

import "time"

// FixedTimer fires at most once per Tick call once the accumulated time
// reaches the interval. Missed intervals are not caught up: the remainder is
// kept modulo the interval.
type FixedTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewFixedTimer constructs a FixedTimer. Non-positive intervals fall back to 100ms.
func NewFixedTimer(interval time.Duration) *FixedTimer {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &FixedTimer{interval: interval}
}

// Interval returns the tick interval.
func (t *FixedTimer) Interval() time.Duration { return t.interval }

// Tick adds delta and reports whether an interval elapsed.
func (t *FixedTimer) Tick(delta time.Duration) bool {
	if delta > 0 {
		t.elapsed += delta
	}
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

// Reset discards accumulated time.
func (t *FixedTimer) Reset() { t.elapsed = 0 }
