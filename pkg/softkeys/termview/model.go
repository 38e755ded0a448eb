// Package termview renders a softkeys keyboard in a terminal with bubbletea
// and drives it with mouse clicks.
package termview

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

const (
	defaultWidth = 80
	minUnitCells = 3
	fieldLine    = 0
	keyboardTop  = 2
	fieldLabel   = "Password: "
)

// Field is the consumer shown above the keyboard.
type Field interface {
	Focus()
	Blur()
	Focused() bool
	Masked() string
}

// turnMsg asks the model to run one keyboard loop turn.
type turnMsg struct{}

type focusMsg struct{}

// pollMsg runs a turn on a timer, for work posted from other goroutines.
type pollMsg struct{}

func nextTurn() tea.Msg {
	return turnMsg{}
}

// Model is a bubbletea model hosting one keyboard and one field.
type Model struct {
	kb    *softkeys.Keyboard
	field Field

	hits  *HitMap
	taps  softkeys.TapTracker
	now   func() time.Time
	width int
	poll  time.Duration
}

func NewModel(kb *softkeys.Keyboard, field Field) Model {
	return Model{
		kb:    kb,
		field: field,
		hits:  NewHitMap(),
		now:   time.Now,
		width: defaultWidth,
	}
}

// WithPolling makes the model run a keyboard turn every interval. Without it
// a turn only follows a program message, so hosts need polling when work
// arrives through Keyboard.Defer from other goroutines.
func (m Model) WithPolling(interval time.Duration) Model {
	m.poll = interval
	return m
}

// Init focuses the field on the first update so the keyboard is only ever
// touched from the program's event loop.
func (m Model) Init() tea.Cmd {
	focus := func() tea.Msg {
		return focusMsg{}
	}
	if m.poll <= 0 {
		return focus
	}
	return tea.Batch(focus, m.schedulePoll())
}

func (m Model) schedulePoll() tea.Cmd {
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// HitMap exposes where keys were drawn by the last View call.
func (m Model) HitMap() *HitMap {
	return m.hits
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case turnMsg:
		m.kb.Tick()
		return m, nil

	case pollMsg:
		m.kb.Tick()
		return m, m.schedulePoll()

	case focusMsg:
		m.field.Focus()
		return m, nextTurn

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nextTurn

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nextTurn

	case tea.MouseMsg:
		// Wheel and back/forward buttons also arrive as presses.
		if msg.Action != tea.MouseActionPress || !isClickButton(msg.Button) {
			return m, nil
		}
		m.handleClick(msg)
		return m, nextTurn
	}

	return m, nil
}

func isClickButton(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonLeft, tea.MouseButtonRight, tea.MouseButtonMiddle:
		return true
	}
	return false
}

func (m *Model) handleClick(msg tea.MouseMsg) {
	ev := softkeys.PointerEvent{
		Button: pointerButton(msg.Button),
		Shift:  msg.Shift,
		Alt:    msg.Alt,
	}

	if msg.Y == fieldLine {
		m.field.Focus()
		return
	}

	if m.kb.Visible() && msg.Y >= keyboardTop {
		region := m.hits.Test(msg.X, msg.Y)
		if region == nil {
			return
		}
		m.kb.Tap(region.Pos, ev)
		if ev.Button == softkeys.ButtonPrimary && m.taps.Observe(region.Pos, m.now()) {
			m.kb.DoubleTap(region.Pos, ev)
		}
		return
	}

	m.field.Blur()
}

func pointerButton(b tea.MouseButton) softkeys.PointerButton {
	switch b {
	case tea.MouseButtonLeft:
		return softkeys.ButtonPrimary
	case tea.MouseButtonMiddle:
		return softkeys.ButtonMiddle
	default:
		return softkeys.ButtonSecondary
	}
}

func (m Model) View() string {
	var b strings.Builder

	style := fieldStyle
	if m.field.Focused() {
		style = focusedFieldStyle
	}
	b.WriteString(labelStyle.Render(fieldLabel))
	b.WriteString(style.Render(m.field.Masked() + " "))
	b.WriteString("\n\n")

	m.hits.Clear()
	if !m.kb.Visible() {
		b.WriteString(hintStyle.Render("click the field to type, esc to quit"))
		return b.String()
	}

	layout := m.kb.Layout()
	unit := m.unitCells(layout)
	state := m.kb.State()

	for r := 0; r < layout.RowCount(); r++ {
		y := keyboardTop + 2*r
		offset := 0.0
		for c, key := range layout.Row(r) {
			start := int(math.Round(offset * unit))
			offset += key.Width
			end := int(math.Round(offset * unit))
			cells := end - start - 1
			if cells < 1 {
				cells = 1
			}

			pos := softkeys.KeyPos{Row: r, Col: c}
			m.hits.AddRect(pos, start, y, cells, 1)
			b.WriteString(renderKey(softkeys.Resolve(key, state).Display, cells, softkeys.Held(key, state)))
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m Model) unitCells(layout *softkeys.Layout) float64 {
	width := layout.Width()
	if width <= 0 {
		return minUnitCells
	}
	return max(float64(m.width)/width, minUnitCells)
}

// renderKey draws a glyph centred in a cell span of the given width.
func renderKey(display string, cells int, held bool) string {
	label := keyLabel(display)
	if runewidth.StringWidth(label) > cells {
		label = runewidth.Truncate(label, cells, "")
	}

	style := keyStyle
	if held {
		style = heldKeyStyle
	}
	return style.Width(cells).MaxWidth(cells).Render(label)
}

func keyLabel(display string) string {
	if display == " " {
		return "space"
	}
	return display
}

var _ tea.Model = Model{}
