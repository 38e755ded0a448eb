package softkeys

// PointerButton identifies the button of a pointer event. The zero value is
// the primary button so that touch input needs no special casing.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a tap on a key together with the native modifier flags
// that were down at that instant.
type PointerEvent struct {
	Button PointerButton
	Shift  bool
	Alt    bool
}

// Modifier is a hardware modifier key the keyboard listens to.
type Modifier int

const (
	ModifierShift Modifier = iota
	ModifierAlt
)

func (m Modifier) String() string {
	switch m {
	case ModifierShift:
		return "shift"
	case ModifierAlt:
		return "alt"
	default:
		return "unknown"
	}
}

// ModifierEvent is a physical key down or up.
type ModifierEvent struct {
	Modifier Modifier
	Down     bool
}

// InputSurface is a process-wide source of physical modifier events, such as
// an SDL event pump or a set of evdev devices. The returned function removes
// the listener.
type InputSurface interface {
	AddModifierListener(fn func(ModifierEvent)) (remove func())
}
