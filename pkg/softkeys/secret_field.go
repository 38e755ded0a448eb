package softkeys

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

const DefaultMask = "•"

// SecretField is a password-style consumer that only ever receives text
// through the on-screen keyboard. It never exposes its value in rendering:
// Masked shows one mask per user-perceived character.
type SecretField struct {
	keyboard *Keyboard

	value string
	caret int // byte offset into value

	Mask          string
	SubmitOnEnter bool
	OnSubmit      func(value string)
	OnChange      func()
}

func NewSecretField(kb *Keyboard) *SecretField {
	return &SecretField{keyboard: kb, Mask: DefaultMask}
}

// Focus binds the keyboard to the field.
func (f *SecretField) Focus() {
	f.keyboard.Show(f)
}

// Blur releases the keyboard on the next turn unless another field took it.
func (f *SecretField) Blur() {
	f.keyboard.Hide(f)
}

func (f *SecretField) Focused() bool {
	return f.keyboard.Bound(f)
}

// OnInput inserts text at the caret. The text before the caret is
// renormalised to NFC so that combining marks compose with their base.
func (f *SecretField) OnInput(text string) {
	if f.SubmitOnEnter && text == "\n" {
		if f.OnSubmit != nil {
			f.OnSubmit(f.value)
		}
		return
	}

	before := norm.NFC.String(f.value[:f.caret] + text)
	f.value = before + f.value[f.caret:]
	f.caret = len(before)
	f.notify()
}

// OnBackspace removes the grapheme cluster before the caret.
func (f *SecretField) OnBackspace() {
	start := lastClusterStart(f.value[:f.caret])
	if start == f.caret {
		return
	}
	f.value = f.value[:start] + f.value[f.caret:]
	f.caret = start
	f.notify()
}

// CaretLeft moves the caret one grapheme cluster towards the start.
func (f *SecretField) CaretLeft() {
	f.caret = lastClusterStart(f.value[:f.caret])
}

// CaretRight moves the caret one grapheme cluster towards the end.
func (f *SecretField) CaretRight() {
	if f.caret >= len(f.value) {
		return
	}
	gr := uniseg.NewGraphemes(f.value[f.caret:])
	if gr.Next() {
		_, to := gr.Positions()
		f.caret += to
	}
}

func (f *SecretField) Value() string {
	return f.value
}

// Caret is the caret position counted in grapheme clusters.
func (f *SecretField) Caret() int {
	return uniseg.GraphemeClusterCount(f.value[:f.caret])
}

// Len is the length of the value in grapheme clusters.
func (f *SecretField) Len() int {
	return uniseg.GraphemeClusterCount(f.value)
}

func (f *SecretField) Masked() string {
	return strings.Repeat(f.Mask, f.Len())
}

func (f *SecretField) Clear() {
	f.value = ""
	f.caret = 0
	f.notify()
}

func (f *SecretField) notify() {
	if f.OnChange != nil {
		f.OnChange()
	}
}

func lastClusterStart(s string) int {
	start := len(s)
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		start, _ = gr.Positions()
	}
	return start
}
