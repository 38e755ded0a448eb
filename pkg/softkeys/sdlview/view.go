package sdlview

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/pawndev/softkeys/pkg/softkeys"
	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

const (
	baseFontSize  = 28
	fieldHeight   = 64
	fieldMargin   = 20
	pressedFlash  = 120 * time.Millisecond
	frameDuration = 16
)

// Field is what the view draws above the keyboard: a focusable consumer that
// only reveals a masked rendition of its content.
type Field interface {
	Focus()
	Blur()
	Masked() string
}

type ViewOptions struct {
	Title   string
	Width   int32
	Height  int32
	Mapping ModifierMapping
}

// View hosts a keyboard and a single field in an SDL window.
type View struct {
	kb     *softkeys.Keyboard
	field  Field
	window *Window
	font   *ttf.Font
	pump   *EventPump
	theme  Theme

	rects     [][]sdl.Rect
	bounds    sdl.Rect
	pressed   softkeys.KeyPos
	pressedAt time.Time
	touch     touchTaps
}

func NewView(kb *softkeys.Keyboard, field Field, opts ViewOptions) (*View, error) {
	if opts.Width == 0 {
		opts.Width = 1024
	}
	if opts.Height == 0 {
		opts.Height = 768
	}
	if opts.Title == "" {
		opts.Title = "softkeys"
	}

	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	window, err := NewWindow(opts.Title, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	theme := GetTheme()
	font, err := loadFont(theme, CalculateFontSizeForResolution(baseFontSize, window.GetWidth()))
	if err != nil {
		window.Close()
		return nil, err
	}

	return &View{
		kb:     kb,
		field:  field,
		window: window,
		font:   font,
		pump:   NewEventPump(opts.Mapping),
		theme:  theme,
	}, nil
}

// Run mounts the keyboard on the window's event pump and drives it until the
// window is closed. The keyboard is unmounted on every exit path.
func (v *View) Run() error {
	v.kb.Mount(v.pump)
	defer v.kb.Unmount()

	v.field.Focus()

	for {
		if v.handleEvents() {
			return nil
		}

		v.kb.Tick()
		v.layout()
		v.render()
		sdl.Delay(frameDuration)
	}
}

func (v *View) Close() {
	v.font.Close()
	v.window.Close()
}

func (v *View) layout() {
	width, height := v.window.GetWidth(), v.window.GetHeight()
	kbHeight := int32(v.kb.Height())

	v.bounds = sdl.Rect{X: 0, Y: height - kbHeight, W: width, H: kbHeight}
	if kbHeight == 0 {
		v.rects = nil
		return
	}
	v.rects = KeyRects(v.kb.Layout(), v.bounds, int32(v.kb.KeySize()), int32(v.kb.RowGap()))
}

func (v *View) fieldRect() sdl.Rect {
	return sdl.Rect{
		X: fieldMargin,
		Y: fieldMargin,
		W: v.window.GetWidth() - 2*fieldMargin,
		H: fieldHeight,
	}
}

func (v *View) handleEvents() bool {
	width, height := v.window.GetWidth(), v.window.GetHeight()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		tap, quit := v.pump.Translate(event, width, height)
		if quit {
			return true
		}
		if tap != nil {
			v.handleTap(tap)
		}
	}
	return false
}

func (v *View) handleTap(tap *Tap) {
	point := sdl.Point{X: tap.X, Y: tap.Y}

	// Taps anywhere on the keyboard surface keep the field focused, even in
	// the gaps between keys.
	if v.kb.Visible() && point.InRect(&v.bounds) {
		pos, ok := HitTest(v.rects, tap.X, tap.Y)
		if !ok {
			return
		}
		if tap.Touch {
			v.touch.observe(tap, pos)
		}

		v.pressed, v.pressedAt = pos, time.Now()
		v.kb.Tap(pos, tap.Event)
		if tap.Double {
			v.kb.DoubleTap(pos, tap.Event)
		}
		return
	}

	fieldRect := v.fieldRect()
	if point.InRect(&fieldRect) {
		v.field.Focus()
	} else {
		v.field.Blur()
	}
}

func (v *View) render() {
	renderer := v.window.Renderer
	bg := v.theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	v.renderField(renderer)

	if v.rects != nil {
		state := v.kb.State()
		for r, row := range v.rects {
			keys := v.kb.Layout().Row(r)
			for c, rect := range row {
				pos := softkeys.KeyPos{Row: r, Col: c}
				v.renderKey(renderer, rect, softkeys.Resolve(keys[c], state).Display, v.keyColor(pos, keys[c], state))
			}
		}
	}

	renderer.Present()
}

func (v *View) keyColor(pos softkeys.KeyPos, key softkeys.Key, state softkeys.ModifierState) sdl.Color {
	switch {
	case softkeys.Held(key, state):
		return v.theme.HeldKeyColor
	case pos == v.pressed && time.Since(v.pressedAt) < pressedFlash:
		return v.theme.PressedKeyColor
	default:
		return v.theme.KeyColor
	}
}

func (v *View) renderField(renderer *sdl.Renderer) {
	rect := v.fieldRect()
	fc := v.theme.FieldColor
	renderer.SetDrawColor(fc.R, fc.G, fc.B, fc.A)
	renderer.FillRect(&rect)
	border := v.theme.KeyBorderColor
	renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	renderer.DrawRect(&rect)

	if masked := v.field.Masked(); masked != "" {
		v.renderText(renderer, masked, rect, false)
	}
}

func (v *View) renderKey(renderer *sdl.Renderer, rect sdl.Rect, display string, bgColor sdl.Color) {
	renderer.SetDrawColor(bgColor.R, bgColor.G, bgColor.B, bgColor.A)
	renderer.FillRect(&rect)
	border := v.theme.KeyBorderColor
	renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	renderer.DrawRect(&rect)

	if display == " " {
		v.renderSpaceBar(renderer, rect)
		return
	}
	v.renderText(renderer, display, rect, true)
}

func (v *View) renderSpaceBar(renderer *sdl.Renderer, rect sdl.Rect) {
	lineWidth := rect.W / 3
	lineHeight := int32(4)
	lineRect := sdl.Rect{
		X: rect.X + (rect.W-lineWidth)/2,
		Y: rect.Y + (rect.H-lineHeight)/2,
		W: lineWidth,
		H: lineHeight,
	}
	tc := v.theme.TextColor
	renderer.SetDrawColor(tc.R, tc.G, tc.B, tc.A)
	renderer.FillRect(&lineRect)
}

func (v *View) renderText(renderer *sdl.Renderer, text string, rect sdl.Rect, centered bool) {
	textSurface, err := v.font.RenderUTF8Blended(text, v.theme.TextColor)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render glyph", "text", text, "error", err)
		return
	}
	defer textSurface.Free()

	textTexture, err := renderer.CreateTextureFromSurface(textSurface)
	if err != nil {
		return
	}
	defer textTexture.Destroy()

	textRect := sdl.Rect{
		X: rect.X + 12,
		Y: rect.Y + (rect.H-textSurface.H)/2,
		W: min(textSurface.W, rect.W-4),
		H: textSurface.H,
	}
	if centered {
		textRect.X = rect.X + (rect.W-textRect.W)/2
	}
	renderer.Copy(textTexture, nil, &textRect)
}
