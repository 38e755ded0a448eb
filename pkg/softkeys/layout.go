package softkeys

import (
	"fmt"
	"math"
)

// KeyState is one of the four faces of a key.
type KeyState struct {
	Display string
	Action  Action
}

// Glyph returns a state that shows and emits the same text.
func Glyph(text string) *KeyState {
	return &KeyState{Display: text, Action: Text(text)}
}

// Emit returns a state that shows display but emits text.
func Emit(display, text string) *KeyState {
	return &KeyState{Display: display, Action: Text(text)}
}

// Special returns a state bound to a command.
func Special(display string, cmd Command) *KeyState {
	return &KeyState{Display: display, Action: cmd}
}

// KeySpec is the partial description of a key. Only Plain is required;
// missing states fall back as described on Key.
type KeySpec struct {
	Width    float64
	Plain    *KeyState
	Shift    *KeyState
	Alt      *KeyState
	ShiftAlt *KeyState
}

// Key has one resolved state per (shift, alt) combination.
// Shift and Alt default to Plain; ShiftAlt defaults to Alt, then Shift,
// then Plain.
type Key struct {
	Width    float64
	Plain    KeyState
	Shift    KeyState
	Alt      KeyState
	ShiftAlt KeyState
}

// KeyPos addresses a key by row and column.
type KeyPos struct {
	Row int
	Col int
}

// Layout is an immutable grid of keys.
type Layout struct {
	rows [][]Key
}

// RowMismatch describes a row whose total width differs from the first row.
type RowMismatch struct {
	Row      int
	Expected float64
	Found    float64
}

func (m RowMismatch) String() string {
	return fmt.Sprintf("row %d: expected width of %g, found width of %g", m.Row, m.Expected, m.Found)
}

const widthEpsilon = 1e-9

func buildKey(spec KeySpec) (Key, error) {
	if spec.Plain == nil {
		return Key{}, ErrNoPlainState
	}
	if !(spec.Width > 0) || math.IsInf(spec.Width, 0) {
		return Key{}, fmt.Errorf("%w: %g", ErrInvalidWidth, spec.Width)
	}

	pick := func(states ...*KeyState) KeyState {
		for _, s := range states {
			if s != nil {
				return *s
			}
		}
		return *spec.Plain
	}

	return Key{
		Width:    spec.Width,
		Plain:    *spec.Plain,
		Shift:    pick(spec.Shift),
		Alt:      pick(spec.Alt),
		ShiftAlt: pick(spec.ShiftAlt, spec.Alt, spec.Shift),
	}, nil
}

// BuildLayout resolves row-major key specs into a Layout. Unequal row
// widths are not an error here; see Layout.Check.
func BuildLayout(rows [][]KeySpec) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	built := make([][]Key, len(rows))
	for r, row := range rows {
		built[r] = make([]Key, len(row))
		for c, spec := range row {
			key, err := buildKey(spec)
			if err != nil {
				return nil, fmt.Errorf("key at row %d, column %d: %w", r, c, err)
			}
			built[r][c] = key
		}
	}

	return &Layout{rows: built}, nil
}

// MustBuildLayout is BuildLayout for static data.
func MustBuildLayout(rows [][]KeySpec) *Layout {
	l, err := BuildLayout(rows)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) RowCount() int {
	return len(l.rows)
}

func (l *Layout) Row(i int) []Key {
	return l.rows[i]
}

// Key returns the key at pos, or false if pos is outside the layout.
func (l *Layout) Key(pos KeyPos) (Key, bool) {
	if pos.Row < 0 || pos.Row >= len(l.rows) {
		return Key{}, false
	}
	row := l.rows[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row) {
		return Key{}, false
	}
	return row[pos.Col], true
}

// RowWidth is the sum of key widths in row i.
func (l *Layout) RowWidth(i int) float64 {
	var w float64
	for _, key := range l.rows[i] {
		w += key.Width
	}
	return w
}

// Width is the width of the first row, the reference for every other row.
func (l *Layout) Width() float64 {
	return l.RowWidth(0)
}

// Check verifies that every row is as wide as the first one.
func (l *Layout) Check() []RowMismatch {
	var mismatches []RowMismatch

	expected := l.Width()
	for i := range l.rows {
		found := l.RowWidth(i)
		if math.Abs(found-expected) > widthEpsilon {
			mismatches = append(mismatches, RowMismatch{Row: i, Expected: expected, Found: found})
		}
	}
	return mismatches
}

// Each calls fn for every key in row-major order.
func (l *Layout) Each(fn func(pos KeyPos, key Key)) {
	for r, row := range l.rows {
		for c, key := range row {
			fn(KeyPos{Row: r, Col: c}, key)
		}
	}
}
