package sdlview

import "github.com/veandco/go-sdl2/sdl"

type Theme struct {
	BackgroundColor sdl.Color // area behind the keys
	KeyColor        sdl.Color
	KeyBorderColor  sdl.Color
	HeldKeyColor    sdl.Color // latched shift, caps lock and alt
	PressedKeyColor sdl.Color // key under the pointer
	TextColor       sdl.Color
	FieldColor      sdl.Color
	FontPath        string
}

var currentTheme = DefaultTheme()

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x000000),
		KeyColor:        HexToColor(0x32323C),
		KeyBorderColor:  HexToColor(0x464650),
		HeldKeyColor:    HexToColor(0x6464F0),
		PressedKeyColor: HexToColor(0x505078),
		TextColor:       HexToColor(0xFFFFFF),
		FieldColor:      HexToColor(0x1E1E26),
	}
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
