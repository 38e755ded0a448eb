package sdlview

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

// KeyRects lays out every key of l inside bounds. Rows are keySize tall and
// separated by gap; keys share the row width in proportion to their weight,
// with gap pixels between neighbours.
func KeyRects(l *softkeys.Layout, bounds sdl.Rect, keySize, gap int32) [][]sdl.Rect {
	rects := make([][]sdl.Rect, l.RowCount())

	y := bounds.Y + gap/2
	for r := 0; r < l.RowCount(); r++ {
		row := l.Row(r)
		rects[r] = make([]sdl.Rect, len(row))

		usable := float64(bounds.W - gap*int32(len(row)+1))
		if usable < 0 {
			usable = 0
		}
		rowWidth := l.RowWidth(r)

		var offset float64
		for c, key := range row {
			start := math.Round(offset)
			offset += key.Width / rowWidth * usable
			end := math.Round(offset)

			rects[r][c] = sdl.Rect{
				X: bounds.X + gap*int32(c+1) + int32(start),
				Y: y,
				W: int32(end - start),
				H: keySize,
			}
		}
		y += keySize + gap
	}
	return rects
}

// HitTest finds the key containing the point. Gaps between keys hit nothing.
func HitTest(rects [][]sdl.Rect, x, y int32) (softkeys.KeyPos, bool) {
	p := sdl.Point{X: x, Y: y}
	for r, row := range rects {
		for c, rect := range row {
			if p.InRect(&rect) {
				return softkeys.KeyPos{Row: r, Col: c}, true
			}
		}
	}
	return softkeys.KeyPos{}, false
}
