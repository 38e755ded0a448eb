package sdlview

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/softkeys/pkg/softkeys"
	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

// ModifierMapping maps physical keys onto the modifiers the keyboard tracks.
type ModifierMapping map[sdl.Keycode]softkeys.Modifier

func DefaultModifierMapping() ModifierMapping {
	return ModifierMapping{
		sdl.K_LSHIFT: softkeys.ModifierShift,
		sdl.K_RSHIFT: softkeys.ModifierShift,
		sdl.K_LALT:   softkeys.ModifierAlt,
		sdl.K_RALT:   softkeys.ModifierAlt,
	}
}

// Tap is a pointer release translated into window coordinates.
type Tap struct {
	X, Y   int32
	Event  softkeys.PointerEvent
	Double bool
	Touch  bool
}

// EventPump turns SDL events into taps and physical modifier events. It is
// the SDL window's InputSurface.
type EventPump struct {
	mapping   ModifierMapping
	listeners map[int]func(softkeys.ModifierEvent)
	nextID    int
}

func NewEventPump(mapping ModifierMapping) *EventPump {
	if mapping == nil {
		mapping = DefaultModifierMapping()
	}
	return &EventPump{
		mapping:   mapping,
		listeners: make(map[int]func(softkeys.ModifierEvent)),
	}
}

func (p *EventPump) AddModifierListener(fn func(softkeys.ModifierEvent)) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		delete(p.listeners, id)
	}
}

func (p *EventPump) Listeners() int {
	return len(p.listeners)
}

func (p *EventPump) emit(ev softkeys.ModifierEvent) {
	for _, fn := range p.listeners {
		fn(ev)
	}
}

// Translate handles one SDL event. It returns a tap for pointer releases and
// quit for window close requests; modifier keys go to the listeners.
func (p *EventPump) Translate(event sdl.Event, width, height int32) (tap *Tap, quit bool) {
	logger := internal.GetInternalLogger()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		return nil, true

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil, false
		}
		modifier, ok := p.mapping[e.Keysym.Sym]
		if !ok {
			return nil, false
		}
		down := e.Type == sdl.KEYDOWN
		logger.Debug("Physical modifier",
			"key", sdl.GetKeyName(e.Keysym.Sym),
			"modifier", modifier.String(),
			"down", down)
		p.emit(softkeys.ModifierEvent{Modifier: modifier, Down: down})

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONUP {
			return nil, false
		}
		ev := nativeModifiers()
		ev.Button = pointerButton(e.Button)
		return &Tap{X: e.X, Y: e.Y, Event: ev, Double: e.Clicks == 2}, false

	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERUP {
			return nil, false
		}
		return &Tap{
			X:     int32(e.X * float32(width)),
			Y:     int32(e.Y * float32(height)),
			Event: nativeModifiers(),
			Touch: true,
		}, false
	}
	return nil, false
}

func nativeModifiers() softkeys.PointerEvent {
	mod := sdl.GetModState()
	return softkeys.PointerEvent{
		Shift: mod&sdl.Keymod(sdl.KMOD_SHIFT) != 0,
		Alt:   mod&sdl.Keymod(sdl.KMOD_ALT) != 0,
	}
}

func pointerButton(button uint8) softkeys.PointerButton {
	switch uint32(button) {
	case uint32(sdl.BUTTON_LEFT):
		return softkeys.ButtonPrimary
	case uint32(sdl.BUTTON_MIDDLE):
		return softkeys.ButtonMiddle
	default:
		return softkeys.ButtonSecondary
	}
}

// touchTaps supplies double taps for finger input, which carries no click
// count.
type touchTaps struct {
	tracker softkeys.TapTracker
}

func (t *touchTaps) observe(tap *Tap, pos softkeys.KeyPos) {
	if t.tracker.Observe(pos, time.Now()) {
		tap.Double = true
	}
}
