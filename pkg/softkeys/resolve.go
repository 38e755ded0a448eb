package softkeys

// Resolve picks the face of key that is active under state.
func Resolve(key Key, state ModifierState) KeyState {
	shift := state.ShiftActive()
	switch {
	case shift && state.Alt:
		return key.ShiftAlt
	case shift:
		return key.Shift
	case state.Alt:
		return key.Alt
	default:
		return key.Plain
	}
}

// Held reports whether a modifier key should be drawn as latched.
func Held(key Key, state ModifierState) bool {
	cmd, ok := Resolve(key, state).Action.(Command)
	if !ok {
		return false
	}

	switch cmd {
	case CommandShift:
		return state.Shift == ShiftOnce
	case CommandCapsLock:
		return state.Shift == ShiftCapsLock
	case CommandAlt:
		return state.Alt
	default:
		return false
	}
}
