package termview

import (
	"testing"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{29, 10, true},
		{10, 19, true},
		{29, 19, true},
		{9, 10, false},
		{30, 10, false},
		{10, 9, false},
		{10, 20, false},
	}

	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapTest(t *testing.T) {
	hm := NewHitMap()
	q := softkeys.KeyPos{Row: 1, Col: 1}
	w := softkeys.KeyPos{Row: 1, Col: 2}
	hm.AddRect(q, 0, 4, 3, 1)
	hm.AddRect(w, 4, 4, 3, 1)

	if r := hm.Test(1, 4); r == nil || r.Pos != q {
		t.Errorf("expected hit on %v, got %v", q, r)
	}
	if r := hm.Test(5, 4); r == nil || r.Pos != w {
		t.Errorf("expected hit on %v, got %v", w, r)
	}
	if r := hm.Test(3, 4); r != nil {
		t.Errorf("expected gap to miss, got %v", r)
	}
	if r := hm.Find(w); r == nil || r.Rect.X != 4 {
		t.Errorf("Find(%v) = %v", w, r)
	}

	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected no regions after Clear, got %d", len(hm.Regions()))
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()
	under := softkeys.KeyPos{Row: 0, Col: 0}
	over := softkeys.KeyPos{Row: 0, Col: 1}
	hm.AddRect(under, 0, 0, 10, 1)
	hm.AddRect(over, 5, 0, 10, 1)

	if r := hm.Test(7, 0); r == nil || r.Pos != over {
		t.Errorf("expected later region to win, got %v", r)
	}
}
