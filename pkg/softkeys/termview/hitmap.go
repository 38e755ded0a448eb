package termview

import "github.com/pawndev/softkeys/pkg/softkeys"

// Rect is a cell rectangle; W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Region struct {
	Pos  softkeys.KeyPos
	Rect Rect
}

// HitMap records where each key was drawn during the last render.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

func (h *HitMap) AddRect(pos softkeys.KeyPos, x, y, w, height int) {
	h.regions = append(h.regions, Region{Pos: pos, Rect: Rect{X: x, Y: y, W: w, H: height}})
}

// Test returns the region under the cell, preferring the last one added.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Find returns the region drawn for pos.
func (h *HitMap) Find(pos softkeys.KeyPos) *Region {
	for i := range h.regions {
		if h.regions[i].Pos == pos {
			return &h.regions[i]
		}
	}
	return nil
}

func (h *HitMap) Regions() []Region {
	return h.regions
}

func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}
