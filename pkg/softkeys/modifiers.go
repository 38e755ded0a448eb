package softkeys

// ShiftMode is the shift axis of the modifier state.
type ShiftMode int

const (
	ShiftOff ShiftMode = iota
	ShiftOnce
	ShiftCapsLock
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftOff:
		return "off"
	case ShiftOnce:
		return "shift"
	case ShiftCapsLock:
		return "capslock"
	default:
		return "unknown"
	}
}

// ModifierState selects which face of every key is active. The zero value
// is the initial state.
type ModifierState struct {
	Shift ShiftMode
	Alt   bool
}

// ShiftActive is true for both momentary shift and caps lock.
func (s ModifierState) ShiftActive() bool {
	return s.Shift != ShiftOff
}

// TapShift toggles between off and momentary shift. Caps lock is left alone.
func (s ModifierState) TapShift() ModifierState {
	switch s.Shift {
	case ShiftOff:
		s.Shift = ShiftOnce
	case ShiftOnce:
		s.Shift = ShiftOff
	}
	return s
}

// ToggleCapsLock goes straight to caps lock, or from caps lock back to off.
func (s ModifierState) ToggleCapsLock() ModifierState {
	if s.Shift == ShiftCapsLock {
		s.Shift = ShiftOff
	} else {
		s.Shift = ShiftCapsLock
	}
	return s
}

func (s ModifierState) TapAlt() ModifierState {
	s.Alt = !s.Alt
	return s
}

// Physical applies a key down or up of a hardware modifier. Shift always
// lands on momentary shift or off, whatever caps lock was.
func (s ModifierState) Physical(ev ModifierEvent) ModifierState {
	switch ev.Modifier {
	case ModifierShift:
		if ev.Down {
			s.Shift = ShiftOnce
		} else {
			s.Shift = ShiftOff
		}
	case ModifierAlt:
		s.Alt = ev.Down
	}
	return s
}

// AfterText is applied once a text key has been dispatched. Alt follows the
// pointer event, and a momentary shift is consumed unless the event itself
// carried shift.
func (s ModifierState) AfterText(ev PointerEvent) ModifierState {
	s.Alt = ev.Alt
	if ev.Shift {
		s.Shift = ShiftOnce
	} else if s.Shift == ShiftOnce {
		s.Shift = ShiftOff
	}
	return s
}
