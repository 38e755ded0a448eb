package termview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

func newTestModel(t *testing.T) (Model, *softkeys.Keyboard, *softkeys.SecretField) {
	t.Helper()

	kb := softkeys.NewKeyboard(softkeys.KeyboardOptions{})
	field := softkeys.NewSecretField(kb)
	m := NewModel(kb, field)
	at := time.Unix(0, 0)
	m.now = func() time.Time { return at }

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, m.Init()())
	if !kb.Visible() {
		t.Fatal("expected keyboard visible after init")
	}
	m.View()
	return m, kb, field
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// click presses the left button on the key showing display and runs the
// turn the model asks for.
func click(t *testing.T, m Model, display string, shift bool) Model {
	t.Helper()

	var found *Region
	for _, r := range m.HitMap().Regions() {
		face, _ := m.kb.Face(r.Pos)
		if face.Display == display {
			found = &r
			break
		}
	}
	if found == nil {
		t.Fatalf("no key showing %q", display)
	}

	next, cmd := m.Update(tea.MouseMsg{
		X:      found.Rect.X,
		Y:      found.Rect.Y,
		Shift:  shift,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	if cmd != nil {
		m = update(t, m, cmd())
	}
	m.View()
	return m
}

func TestModelTypesThroughClicks(t *testing.T) {
	m, _, field := newTestModel(t)

	m = click(t, m, "h", false)
	m = click(t, m, "i", false)

	if field.Value() != "hi" {
		t.Errorf("expected value %q, got %q", "hi", field.Value())
	}
	if !strings.Contains(m.View(), "••") {
		t.Errorf("expected masked value in view")
	}
}

func TestModelShiftClick(t *testing.T) {
	m, kb, field := newTestModel(t)

	// A shift-click types the plain glyph and latches shift for the next key.
	m = click(t, m, "a", true)
	if kb.State().Shift != softkeys.ShiftOnce {
		t.Fatalf("expected shift latched, got %v", kb.State().Shift)
	}
	click(t, m, "S", false)

	if field.Value() != "aS" {
		t.Errorf("expected %q, got %q", "aS", field.Value())
	}
	if kb.State().Shift != softkeys.ShiftOff {
		t.Errorf("expected shift off after typing, got %v", kb.State().Shift)
	}
}

func TestModelDoubleClickShiftLatchesCapsLock(t *testing.T) {
	m, kb, field := newTestModel(t)

	m = click(t, m, "⇧", false)
	if kb.State().Shift != softkeys.ShiftOnce {
		t.Fatalf("expected shift after one click, got %v", kb.State().Shift)
	}
	m = click(t, m, "⇧", false)
	if kb.State().Shift != softkeys.ShiftCapsLock {
		t.Fatalf("expected caps lock after double click, got %v", kb.State().Shift)
	}

	m = click(t, m, "A", false)
	click(t, m, "B", false)
	if field.Value() != "AB" {
		t.Errorf("expected %q, got %q", "AB", field.Value())
	}
}

func TestModelCloseKeyHides(t *testing.T) {
	m, kb, _ := newTestModel(t)

	m = click(t, m, "↧", false)
	if kb.Visible() {
		t.Fatal("expected keyboard hidden after close")
	}
	if len(m.HitMap().Regions()) != 0 {
		t.Errorf("expected no key regions while hidden")
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: fieldLine, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !kb.Visible() {
		t.Error("expected clicking the field to show the keyboard")
	}
}

func TestModelIgnoresReleaseAndRightClick(t *testing.T) {
	m, _, field := newTestModel(t)

	region := m.HitMap().Regions()[0]
	m = update(t, m, tea.MouseMsg{X: region.Rect.X, Y: region.Rect.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	update(t, m, tea.MouseMsg{X: region.Rect.X, Y: region.Rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if field.Value() != "" {
		t.Errorf("expected no input, got %q", field.Value())
	}
}

func TestModelLayoutFillsWidth(t *testing.T) {
	m, kb, _ := newTestModel(t)

	last := kb.Layout().Row(0)
	end := m.HitMap().Find(softkeys.KeyPos{Row: 0, Col: len(last) - 1})
	if end == nil {
		t.Fatal("missing last key of first row")
	}
	if right := end.Rect.X + end.Rect.W + 1; right != 120 {
		t.Errorf("expected first row to span 120 cells, got %d", right)
	}
}

func TestModelPollingRunsDeferredWork(t *testing.T) {
	m, kb, _ := newTestModel(t)
	m = m.WithPolling(10 * time.Millisecond)

	ran := false
	kb.Defer(func() { ran = true })

	next, cmd := m.Update(pollMsg{})
	if !ran {
		t.Error("expected poll to run deferred work")
	}
	if cmd == nil {
		t.Error("expected poll to reschedule itself")
	}
	_ = next.(Model)
}

func TestModelWheelAndSideButtonsDoNotType(t *testing.T) {
	m, kb, field := newTestModel(t)

	var target *Region
	for _, r := range m.HitMap().Regions() {
		if face, _ := kb.Face(r.Pos); face.Display == "a" {
			target = &r
			break
		}
	}
	if target == nil {
		t.Fatal("no key showing \"a\"")
	}

	buttons := []tea.MouseButton{
		tea.MouseButtonWheelUp,
		tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft,
		tea.MouseButtonWheelRight,
		tea.MouseButtonBackward,
		tea.MouseButtonForward,
	}
	for _, b := range buttons {
		next, cmd := m.Update(tea.MouseMsg{
			X:      target.Rect.X,
			Y:      target.Rect.Y,
			Action: tea.MouseActionPress,
			Button: b,
		})
		m = next.(Model)
		if cmd != nil {
			m = update(t, m, cmd())
		}
	}

	// A scroll below the keyboard must not blur the field either.
	next, cmd := m.Update(tea.MouseMsg{X: 0, Y: 200, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = next.(Model)
	if cmd != nil {
		update(t, m, cmd())
	}

	if field.Value() != "" {
		t.Errorf("expected no input from wheel or side buttons, got %q", field.Value())
	}
	if !kb.Visible() || !field.Focused() {
		t.Error("expected field to stay focused")
	}
}

func TestModelTurnFollowsEveryMessage(t *testing.T) {
	msgs := []tea.Msg{
		tea.WindowSizeMsg{Width: 100, Height: 30},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
	}

	for _, msg := range msgs {
		m, kb, field := newTestModel(t)
		field.Blur()

		next, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%T: expected a turn command", msg)
		}
		update(t, next.(Model), cmd())

		if kb.Visible() {
			t.Errorf("%T: expected pending hide to run on the following turn", msg)
		}
	}
}
