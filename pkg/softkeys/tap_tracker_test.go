package softkeys

import (
	"testing"
	"time"
)

func TestTapTracker(t *testing.T) {
	var tr TapTracker
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pos := KeyPos{Row: 3, Col: 0}

	if tr.Observe(pos, start) {
		t.Fatal("first tap is never a double tap")
	}
	if !tr.Observe(pos, start.Add(100*time.Millisecond)) {
		t.Fatal("second quick tap should be a double tap")
	}
	if tr.Observe(pos, start.Add(200*time.Millisecond)) {
		t.Error("third tap should start a new sequence")
	}
}

func TestTapTrackerRequiresSameKeyAndWindow(t *testing.T) {
	tr := TapTracker{Window: 50 * time.Millisecond}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tr.Observe(KeyPos{Row: 0, Col: 1}, start)
	if tr.Observe(KeyPos{Row: 0, Col: 2}, start.Add(10*time.Millisecond)) {
		t.Error("taps on different keys are not a double tap")
	}
	if tr.Observe(KeyPos{Row: 0, Col: 2}, start.Add(100*time.Millisecond)) {
		t.Error("taps outside the window are not a double tap")
	}

	tr.Reset()
	if tr.Observe(KeyPos{Row: 0, Col: 2}, start.Add(110*time.Millisecond)) {
		t.Error("reset should forget the previous tap")
	}
}
