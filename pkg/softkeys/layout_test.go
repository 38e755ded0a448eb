package softkeys

import (
	"errors"
	"testing"
)

// findKey returns the position of the first key whose plain face shows display.
func findKey(t *testing.T, l *Layout, display string) KeyPos {
	t.Helper()
	found := KeyPos{Row: -1}
	l.Each(func(pos KeyPos, key Key) {
		if found.Row < 0 && key.Plain.Display == display {
			found = pos
		}
	})
	if found.Row < 0 {
		t.Fatalf("no key with plain display %q", display)
	}
	return found
}

func TestDefaultLayoutRowWidths(t *testing.T) {
	l := DefaultLayout()

	if l.RowCount() != 5 {
		t.Fatalf("expected 5 rows, got %d", l.RowCount())
	}

	want := l.Width()
	for r := 0; r < l.RowCount(); r++ {
		if got := l.RowWidth(r); got != want {
			t.Errorf("row %d: width %g, want %g", r, got, want)
		}
	}
	if m := l.Check(); len(m) != 0 {
		t.Errorf("expected no mismatches, got %v", m)
	}
}

func TestDefaultLayoutHasSpecialKeys(t *testing.T) {
	counts := map[Command]int{}
	DefaultLayout().Each(func(_ KeyPos, key Key) {
		if cmd, ok := key.Plain.Action.(Command); ok {
			counts[cmd]++
		}
	})

	want := map[Command]int{
		CommandBackspace: 1,
		CommandCapsLock:  1,
		CommandShift:     2,
		CommandAlt:       2,
		CommandClose:     1,
		CommandBottom:    1,
	}
	for cmd, n := range want {
		if counts[cmd] != n {
			t.Errorf("%s: expected %d keys, got %d", cmd, n, counts[cmd])
		}
	}
}

func TestCheckReportsMismatchedRows(t *testing.T) {
	l := MustBuildLayout([][]KeySpec{
		{{Width: 1, Plain: Glyph("a")}, {Width: 1, Plain: Glyph("b")}},
		{{Width: 2, Plain: Glyph(" ")}},
		{{Width: 1.5, Plain: Glyph("c")}},
	})

	m := l.Check()
	if len(m) != 1 {
		t.Fatalf("expected 1 mismatch, got %d: %v", len(m), m)
	}
	if m[0].Row != 2 || m[0].Expected != 2 || m[0].Found != 1.5 {
		t.Errorf("unexpected mismatch %+v", m[0])
	}
	if m[0].String() != "row 2: expected width of 2, found width of 1.5" {
		t.Errorf("unexpected message %q", m[0].String())
	}
}

func TestBuildLayoutFallbacks(t *testing.T) {
	l := MustBuildLayout([][]KeySpec{{
		{Width: 1, Plain: Glyph("x")},
		{Width: 1, Plain: Glyph("y"), Shift: Glyph("Y")},
		{Width: 1, Plain: Glyph("4"), Alt: Glyph("€")},
		{Width: 1, Plain: Glyph("e"), Shift: Glyph("E"), Alt: Glyph("é")},
	}})

	plainOnly := l.Row(0)[0]
	states := []ModifierState{
		{},
		{Shift: ShiftOnce},
		{Alt: true},
		{Shift: ShiftCapsLock, Alt: true},
	}
	for _, st := range states {
		if got := Resolve(plainOnly, st); got.Display != "x" || got.Action != Text("x") {
			t.Errorf("plain-only key under %+v resolved to %+v", st, got)
		}
	}

	withShift := l.Row(0)[1]
	if got := Resolve(withShift, ModifierState{Alt: true}); got.Display != "y" {
		t.Errorf("alt should fall back to plain, got %q", got.Display)
	}
	if got := Resolve(withShift, ModifierState{Shift: ShiftOnce, Alt: true}); got.Display != "Y" {
		t.Errorf("shift+alt should fall back to shift, got %q", got.Display)
	}

	withAlt := l.Row(0)[2]
	if got := Resolve(withAlt, ModifierState{Shift: ShiftOnce}); got.Display != "4" {
		t.Errorf("shift should fall back to plain, got %q", got.Display)
	}
	if got := Resolve(withAlt, ModifierState{Shift: ShiftOnce, Alt: true}); got.Display != "€" {
		t.Errorf("shift+alt should fall back to alt, got %q", got.Display)
	}

	both := l.Row(0)[3]
	if got := Resolve(both, ModifierState{Shift: ShiftOnce, Alt: true}); got.Display != "é" {
		t.Errorf("shift+alt should prefer alt over shift, got %q", got.Display)
	}
}

func TestBuildLayoutRejectsMalformedKeys(t *testing.T) {
	if _, err := BuildLayout(nil); !errors.Is(err, ErrEmptyLayout) {
		t.Errorf("expected ErrEmptyLayout, got %v", err)
	}

	_, err := BuildLayout([][]KeySpec{{{Width: 1}}})
	if !errors.Is(err, ErrNoPlainState) {
		t.Errorf("expected ErrNoPlainState, got %v", err)
	}

	_, err = BuildLayout([][]KeySpec{{{Width: 1, Plain: Glyph("a")}, {Width: 0, Plain: Glyph("b")}}})
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestLayoutKeyBounds(t *testing.T) {
	l := DefaultLayout()

	for _, pos := range []KeyPos{{-1, 0}, {0, -1}, {5, 0}, {0, 14}} {
		if _, ok := l.Key(pos); ok {
			t.Errorf("expected %+v to be outside the layout", pos)
		}
	}
	if key, ok := l.Key(findKey(t, l, "a")); !ok || key.Shift.Display != "A" {
		t.Errorf("expected to find the a key, got %+v", key)
	}
}

func TestParseCommand(t *testing.T) {
	for c := CommandBackspace; c <= CommandBottom; c++ {
		got, err := ParseCommand(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCommand(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCommand("hyper"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}
