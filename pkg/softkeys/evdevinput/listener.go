//go:build linux

// Package evdevinput watches hardware Shift and Alt keys on every keyboard
// under /dev/input, so the on-screen keyboard follows physical modifiers even
// when its window does not have focus.
package evdevinput

import (
	"errors"
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/pawndev/softkeys/pkg/softkeys"
	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

var ErrNoDevices = errors.New("no keyboard devices found")

var modifierCodes = map[evdev.EvCode]softkeys.Modifier{
	evdev.KEY_LEFTSHIFT:  softkeys.ModifierShift,
	evdev.KEY_RIGHTSHIFT: softkeys.ModifierShift,
	evdev.KEY_LEFTALT:    softkeys.ModifierAlt,
	evdev.KEY_RIGHTALT:   softkeys.ModifierAlt,
}

// Listener reads modifier events from input devices on background
// goroutines and hands them to its listeners through post, which must run
// them on the UI goroutine (Keyboard.Defer does).
type Listener struct {
	devices []*evdev.InputDevice
	post    func(func())

	mu        sync.Mutex
	listeners map[int]func(softkeys.ModifierEvent)
	nextID    int

	closed *atomic.Bool
	events *atomic.Int64
	wg     sync.WaitGroup
}

// Open starts reading the given device paths, or every keyboard-like device
// when none are given.
func Open(post func(func()), paths ...string) (*Listener, error) {
	logger := internal.GetInternalLogger()

	if len(paths) == 0 {
		var err error
		paths, err = keyboardPaths()
		if err != nil {
			return nil, err
		}
	}

	var devices []*evdev.InputDevice
	for _, path := range paths {
		dev, err := evdev.Open(path)
		if err != nil {
			logger.Debug("Skipping input device", "path", path, "error", err)
			continue
		}
		devices = append(devices, dev)
	}
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	l := &Listener{
		devices:   devices,
		post:      post,
		listeners: make(map[int]func(softkeys.ModifierEvent)),
		closed:    atomic.NewBool(false),
		events:    atomic.NewInt64(0),
	}

	for _, dev := range devices {
		l.wg.Add(1)
		go l.read(dev)
	}

	logger.Debug("Listening for physical modifiers", "devices", len(devices))
	return l, nil
}

func keyboardPaths() ([]string, error) {
	inputs, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	var paths []string
	for _, in := range inputs {
		dev, err := evdev.Open(in.Path)
		if err != nil {
			continue
		}
		if hasModifierKeys(dev) {
			paths = append(paths, in.Path)
		}
		dev.Close()
	}
	if len(paths) == 0 {
		return nil, ErrNoDevices
	}
	return paths, nil
}

func hasModifierKeys(dev *evdev.InputDevice) bool {
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		if _, ok := modifierCodes[code]; ok {
			return true
		}
	}
	return false
}

func (l *Listener) read(dev *evdev.InputDevice) {
	defer l.wg.Done()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if !l.closed.Load() {
				internal.GetInternalLogger().Warn("Input device read failed", "error", err)
			}
			return
		}

		mev, ok := translate(ev)
		if !ok {
			continue
		}
		l.events.Inc()
		l.post(func() { l.dispatch(mev) })
	}
}

// translate keeps key downs and ups of modifier keys and drops autorepeat.
func translate(ev *evdev.InputEvent) (softkeys.ModifierEvent, bool) {
	if ev.Type != evdev.EV_KEY {
		return softkeys.ModifierEvent{}, false
	}
	modifier, ok := modifierCodes[ev.Code]
	if !ok {
		return softkeys.ModifierEvent{}, false
	}

	switch ev.Value {
	case 0:
		return softkeys.ModifierEvent{Modifier: modifier, Down: false}, true
	case 1:
		return softkeys.ModifierEvent{Modifier: modifier, Down: true}, true
	default:
		return softkeys.ModifierEvent{}, false
	}
}

func (l *Listener) dispatch(ev softkeys.ModifierEvent) {
	if l.closed.Load() {
		return
	}

	l.mu.Lock()
	fns := make([]func(softkeys.ModifierEvent), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (l *Listener) AddModifierListener(fn func(softkeys.ModifierEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}

// Events is the number of modifier events read so far.
func (l *Listener) Events() int64 {
	return l.events.Load()
}

// Close stops every reader and waits for them to exit.
func (l *Listener) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	for _, dev := range l.devices {
		if err := dev.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.wg.Wait()
	return errors.Join(errs...)
}
