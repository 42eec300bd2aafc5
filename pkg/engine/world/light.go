package world

import "image/color"

// Light describes the light a thing emits: an 8-bit intensity (radius in
// half-tiles) and a color.
type Light struct {
	Intensity uint8
	Color     color.RGBA
}

// HasLight reports whether the light actually emits anything.
func (l Light) HasLight() bool {
	return l.Intensity > 0
}
