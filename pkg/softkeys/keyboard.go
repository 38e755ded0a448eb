package softkeys

import (
	"log/slog"
	"math/rand"
	"reflect"

	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

const (
	DefaultKeySize = 50
	DefaultRowGap  = 6
)

var expressions = []string{
	"👉👈",
	"💖",
	"🥺",
	"✨",
	",,",
	"🫂",
}

// Expressions returns the strings the expressive key draws from.
func Expressions() []string {
	out := make([]string, len(expressions))
	copy(out, expressions)
	return out
}

// KeyboardHandler is the text-entry target bound to a shown keyboard.
// Handlers are compared by identity, so pointer receivers are the usual
// choice. A handler whose dynamic type is not comparable never matches, so
// Hide leaves it bound; Close still releases it.
type KeyboardHandler interface {
	OnInput(text string)
	OnBackspace()
}

type KeyboardOptions struct {
	// Layout defaults to DefaultLayout.
	Layout  *Layout
	KeySize int
	RowGap  int

	// OnChange is called after anything that affects rendering: modifier
	// state, the bound handler or visibility.
	OnChange func()

	// Intn overrides the source used by the expressive key.
	Intn func(n int) int
}

// Keyboard is a mounted on-screen keyboard. It is not safe for concurrent
// use; every method must run on the UI goroutine. Work from other
// goroutines goes through Defer.
type Keyboard struct {
	layout  *Layout
	keySize int
	rowGap  int

	state   ModifierState
	handler KeyboardHandler

	loop     *internal.Loop
	removers []func()
	onChange func()
	intn     func(n int) int
	logger   *slog.Logger
}

func NewKeyboard(opts KeyboardOptions) *Keyboard {
	kb := &Keyboard{
		layout:   opts.Layout,
		keySize:  opts.KeySize,
		rowGap:   opts.RowGap,
		loop:     internal.NewLoop(),
		onChange: opts.OnChange,
		intn:     opts.Intn,
		logger:   internal.GetInternalLogger(),
	}

	if kb.layout == nil {
		kb.layout = DefaultLayout()
	}
	if kb.keySize <= 0 {
		kb.keySize = DefaultKeySize
	}
	if kb.rowGap <= 0 {
		kb.rowGap = DefaultRowGap
	}
	if kb.intn == nil {
		kb.intn = rand.Intn
	}

	for _, m := range kb.layout.Check() {
		kb.logger.Warn("Keyboard row width mismatch",
			"row", m.Row,
			"expected", m.Expected,
			"found", m.Found,
		)
	}

	return kb
}

func (kb *Keyboard) Layout() *Layout {
	return kb.layout
}

func (kb *Keyboard) KeySize() int {
	return kb.keySize
}

func (kb *Keyboard) RowGap() int {
	return kb.rowGap
}

func (kb *Keyboard) State() ModifierState {
	return kb.state
}

func (kb *Keyboard) Handler() KeyboardHandler {
	return kb.handler
}

func (kb *Keyboard) Visible() bool {
	return kb.handler != nil
}

// Bound reports whether h is the handler the keyboard is bound to.
func (kb *Keyboard) Bound(h KeyboardHandler) bool {
	return h != nil && sameHandler(kb.handler, h)
}

func sameHandler(a, b KeyboardHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

func (kb *Keyboard) setState(state ModifierState) {
	if state == kb.state {
		return
	}
	kb.logger.Debug("Modifier state changed",
		"shift", state.Shift.String(),
		"alt", state.Alt,
	)
	kb.state = state
	kb.changed()
}

func (kb *Keyboard) setHandler(h KeyboardHandler) {
	kb.handler = h
	kb.changed()
}

func (kb *Keyboard) changed() {
	if kb.onChange != nil {
		kb.onChange()
	}
}

// Show binds h and makes the keyboard visible, replacing any previous
// handler immediately.
func (kb *Keyboard) Show(h KeyboardHandler) {
	kb.setHandler(h)
}

// Hide releases h on the next turn, and only if h is still the bound
// handler then. A blur immediately followed by a focus elsewhere therefore
// never takes the keyboard down.
func (kb *Keyboard) Hide(h KeyboardHandler) {
	kb.loop.Defer(func() {
		if kb.Bound(h) {
			kb.setHandler(nil)
		}
	})
}

// Height is the vertical space the keyboard occupies, zero when hidden.
func (kb *Keyboard) Height() int {
	if kb.handler == nil {
		return 0
	}
	return kb.layout.RowCount() * (kb.keySize + kb.rowGap)
}

// Defer queues fn for the next turn. It is safe from any goroutine.
func (kb *Keyboard) Defer(fn func()) {
	kb.loop.Defer(fn)
}

// Tick runs one turn of deferred work and reports how many tasks ran.
// Hosts call it once per frame.
func (kb *Keyboard) Tick() int {
	return kb.loop.RunPending()
}

// Face returns the active state of the key at pos.
func (kb *Keyboard) Face(pos KeyPos) (KeyState, bool) {
	key, ok := kb.layout.Key(pos)
	if !ok {
		return KeyState{}, false
	}
	return Resolve(key, kb.state), true
}

// IsHeld reports whether the key at pos is a latched modifier.
func (kb *Keyboard) IsHeld(pos KeyPos) bool {
	key, ok := kb.layout.Key(pos)
	return ok && Held(key, kb.state)
}

// Tap resolves the key at pos and dispatches its action. Taps with a
// non-primary button or outside the layout are ignored.
func (kb *Keyboard) Tap(pos KeyPos, ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	face, ok := kb.Face(pos)
	if !ok {
		return
	}
	kb.Dispatch(face.Action, ev)
}

// DoubleTap latches caps lock when the key at pos is a shift key. It comes
// in addition to the single taps that preceded it.
func (kb *Keyboard) DoubleTap(pos KeyPos, ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	face, ok := kb.Face(pos)
	if !ok {
		return
	}
	if IsCommand(face.Action, CommandShift) {
		kb.setState(kb.state.ToggleCapsLock())
	}
}

// Dispatch performs action. Input reaching a keyboard with no handler is
// dropped.
func (kb *Keyboard) Dispatch(action Action, ev PointerEvent) {
	switch a := action.(type) {
	case Text:
		if kb.handler != nil {
			kb.handler.OnInput(string(a))
		}
		kb.setState(kb.state.AfterText(ev))
	case Command:
		kb.dispatchCommand(a)
	default:
		kb.logger.Error("Unhandled key action", "action", action)
	}
}

func (kb *Keyboard) dispatchCommand(cmd Command) {
	switch cmd {
	case CommandBackspace:
		if kb.handler != nil {
			kb.handler.OnBackspace()
		}
	case CommandCapsLock:
		kb.setState(kb.state.ToggleCapsLock())
	case CommandShift:
		kb.setState(kb.state.TapShift())
	case CommandAlt:
		kb.setState(kb.state.TapAlt())
	case CommandBottom:
		message := expressions[kb.intn(len(expressions))]
		if kb.handler != nil {
			kb.handler.OnInput(message)
		}
	case CommandClose:
		kb.setHandler(nil)
	default:
		kb.logger.Error("Unhandled key command", "command", cmd.String())
	}
}

// Physical applies a hardware modifier key down or up.
func (kb *Keyboard) Physical(ev ModifierEvent) {
	kb.setState(kb.state.Physical(ev))
}

// Mount starts listening to physical modifier keys on every surface. The
// listeners stay registered until Unmount.
func (kb *Keyboard) Mount(surfaces ...InputSurface) {
	for _, surface := range surfaces {
		remove := surface.AddModifierListener(kb.Physical)
		if remove != nil {
			kb.removers = append(kb.removers, remove)
		}
	}
	kb.logger.Debug("Keyboard mounted", "surfaces", len(surfaces))
}

// Unmount removes every listener added by Mount. It is safe to call more
// than once, typically from a defer right after Mount.
func (kb *Keyboard) Unmount() {
	removers := kb.removers
	kb.removers = nil
	for i := len(removers) - 1; i >= 0; i-- {
		removers[i]()
	}
	if len(removers) > 0 {
		kb.logger.Debug("Keyboard unmounted", "listeners", len(removers))
	}
}
