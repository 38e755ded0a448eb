package sdlview

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

func TestKeyRectsProportional(t *testing.T) {
	l := softkeys.MustBuildLayout([][]softkeys.KeySpec{
		{{Width: 1, Plain: softkeys.Glyph("a")}, {Width: 3, Plain: softkeys.Glyph("b")}},
		{{Width: 4, Plain: softkeys.Glyph(" ")}},
	})

	bounds := sdl.Rect{X: 0, Y: 100, W: 430, H: 120}
	rects := KeyRects(l, bounds, 50, 10)

	// 430 wide, three gaps of 10 in the first row leave 400 to share 1:3.
	a, b := rects[0][0], rects[0][1]
	if a.W != 100 || b.W != 300 {
		t.Errorf("expected widths 100 and 300, got %d and %d", a.W, b.W)
	}
	if a.X != 10 || b.X != 120 {
		t.Errorf("expected x 10 and 120, got %d and %d", a.X, b.X)
	}
	if a.Y != 105 || a.H != 50 {
		t.Errorf("unexpected first row %+v", a)
	}

	space := rects[1][0]
	if space.Y != 165 || space.W != 410 || space.X+space.W != b.X+b.W {
		t.Errorf("second row should align with the first, got %+v", space)
	}
}

func TestHitTest(t *testing.T) {
	rects := KeyRects(softkeys.DefaultLayout(), sdl.Rect{X: 0, Y: 0, W: 1024, H: 280}, 50, 6)

	a := rects[2][1]
	pos, ok := HitTest(rects, a.X+a.W/2, a.Y+a.H/2)
	if !ok || pos != (softkeys.KeyPos{Row: 2, Col: 1}) {
		t.Errorf("expected the a key, got %+v %v", pos, ok)
	}

	if _, ok := HitTest(rects, a.X-1, a.Y); ok {
		t.Error("the gap between keys should not hit")
	}
	if _, ok := HitTest(rects, 5000, 5000); ok {
		t.Error("points outside the keyboard should not hit")
	}
}

func TestHexToColor(t *testing.T) {
	c := HexToColor(0x6464F0)
	if c != (sdl.Color{R: 0x64, G: 0x64, B: 0xF0, A: 255}) {
		t.Errorf("unexpected color %+v", c)
	}
}

func TestCalculateFontSizeForResolution(t *testing.T) {
	if got := CalculateFontSizeForResolution(28, 1024); got != 28 {
		t.Errorf("reference width should keep size, got %d", got)
	}
	if got := CalculateFontSizeForResolution(28, 512); got != 14 {
		t.Errorf("half width should halve size, got %d", got)
	}
	if got := CalculateFontSizeForResolution(28, 2048); got != 49 {
		t.Errorf("growth above reference should be damped, got %d", got)
	}
}
