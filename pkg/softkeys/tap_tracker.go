package softkeys

import "time"

const DefaultDoubleTapWindow = 400 * time.Millisecond

// TapTracker detects double taps for hosts whose pointer events do not carry
// a click count. A tap that completes a double tap starts a new sequence.
type TapTracker struct {
	Window time.Duration

	last    KeyPos
	lastAt  time.Time
	pending bool
}

// Observe records a tap on pos and reports whether it completes a double tap.
func (t *TapTracker) Observe(pos KeyPos, at time.Time) bool {
	window := t.Window
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}

	if t.pending && pos == t.last && at.Sub(t.lastAt) <= window {
		t.pending = false
		return true
	}

	t.last = pos
	t.lastAt = at
	t.pending = true
	return false
}

func (t *TapTracker) Reset() {
	t.pending = false
}
