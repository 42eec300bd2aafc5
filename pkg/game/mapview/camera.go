package mapview

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

// AwareRange is the rectangular visible range around the camera, in tile
// counts per side. The camera tile itself is not counted, so the visible
// dimension is (Left+Right+1) x (Top+Bottom+1).
type AwareRange struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DefaultAwareRange is the engine's standard viewport: one more column to
// the right and row to the bottom than to the left/top, matching the
// classic client.
func DefaultAwareRange() AwareRange {
	return AwareRange{Left: 8, Right: 9, Top: 6, Bottom: 7}
}

// IsValid reports whether all sides are positive.
func (a AwareRange) IsValid() bool {
	return a.Left > 0 && a.Right > 0 && a.Top > 0 && a.Bottom > 0
}

// Dimension returns the visible dimension in tiles.
func (a AwareRange) Dimension() geom.Size {
	return geom.Size{W: a.Left + a.Right + 1, H: a.Top + a.Bottom + 1}
}
