package mapview

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

// RectCache caches everything derived from the destination rect: the
// source rect in framebuffer space, the draw offset and the stretch
// factors mapping framebuffer pixels to screen pixels. Recomputed only
// when the destination rect changes; both tile drawing and the overlays
// use it so world-space points map to the same screen pixels everywhere.
type RectCache struct {
	Rect       geom.Rect
	SrcRect    geom.Rect
	DrawOffset geom.Point

	// Stretch factors are destination size over framebuffer-source size.
	HorizontalStretchFactor float64
	VerticalStretchFactor   float64
}

// update recomputes the cache for a new destination rect.
func (rc *RectCache) update(v *MapView, rect geom.Rect) {
	rc.Rect = rect
	rc.SrcRect = v.calcFramebufferSource(rect.Size())
	rc.DrawOffset = rc.SrcRect.TopLeft()
	rc.HorizontalStretchFactor = float64(rect.W) / float64(rc.SrcRect.W)
	rc.VerticalStretchFactor = float64(rect.H) / float64(rc.SrcRect.H)
}

// ToScreen maps a framebuffer-space point to the final screen pixel.
func (rc *RectCache) ToScreen(p geom.Point) geom.Point {
	out := p.Sub(rc.DrawOffset)
	out.X = int(float64(out.X) * rc.HorizontalStretchFactor)
	out.Y = int(float64(out.Y) * rc.VerticalStretchFactor)
	return out.Add(rc.Rect.TopLeft())
}
