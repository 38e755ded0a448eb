//go:build !linux

package evdevinput

import (
	"errors"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

var ErrNoDevices = errors.New("no keyboard devices found")

// Listener is unavailable outside Linux; Open always fails.
type Listener struct{}

func Open(post func(func()), paths ...string) (*Listener, error) {
	return nil, ErrNoDevices
}

func (l *Listener) AddModifierListener(fn func(softkeys.ModifierEvent)) func() {
	return func() {}
}

func (l *Listener) Events() int64 {
	return 0
}

func (l *Listener) Close() error {
	return nil
}
