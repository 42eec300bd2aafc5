package mapview

import (
	"testing"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

func TestTransformPositionTo2D(t *testing.T) {
	v, _, _ := newTestView()
	camera := world.Position{X: 32, Y: 32, Z: 7}

	// Default viewport: draw dimension 21x17, virtual center (10, 8).
	got := v.transformPositionTo2D(camera, camera)
	want := geom.Point{X: 10 * 32, Y: 8 * 32}
	if got != want {
		t.Errorf("camera tile projects to %v, want %v", got, want)
	}

	// A neighbour shifts by one tile.
	got = v.transformPositionTo2D(world.Position{X: 33, Y: 31, Z: 7}, camera)
	want = geom.Point{X: 11 * 32, Y: 7 * 32}
	if got != want {
		t.Errorf("neighbour projects to %v, want %v", got, want)
	}

	// One floor up shifts diagonally by one tile toward the top-left.
	got = v.transformPositionTo2D(world.Position{X: 32, Y: 32, Z: 6}, camera)
	want = geom.Point{X: 9 * 32, Y: 7 * 32}
	if got != want {
		t.Errorf("upper floor projects to %v, want %v", got, want)
	}
}

func TestTransformPositionTo2DFMatchesIntegerVariant(t *testing.T) {
	v, _, _ := newTestView()
	camera := world.Position{X: 32, Y: 32, Z: 7}
	pos := world.Position{X: 35, Y: 30, Z: 6}

	whole := v.transformPositionTo2D(pos, camera)
	fractional := v.transformPositionTo2DF(float64(pos.X), float64(pos.Y), pos.Z, camera)
	if whole != fractional {
		t.Errorf("fractional projection %v != integer projection %v", fractional, whole)
	}

	// Halfway between two tiles lands half a tile over.
	mid := v.transformPositionTo2DF(32.5, 32, 7, camera)
	want := geom.Point{X: 10*32 + 16, Y: 8 * 32}
	if mid != want {
		t.Errorf("midpoint projects to %v, want %v", mid, want)
	}
}

func TestRectDimension(t *testing.T) {
	v, _, _ := newTestView()
	want := geom.Size{W: 21 * 32, H: 17 * 32}
	if got := v.RectDimension(); got != want {
		t.Errorf("RectDimension = %v, want %v", got, want)
	}
}

func TestCalcFramebufferSource(t *testing.T) {
	v, _, _ := newTestView()

	// Destination with the visible aspect ratio maps to the centred
	// visible area: 18x14 tiles offset one tile into the padded buffer.
	src := v.calcFramebufferSource(geom.Size{W: 18 * 32, H: 14 * 32})
	want := geom.Rect{X: 32, Y: 32, W: 18 * 32, H: 14 * 32}
	if src != want {
		t.Errorf("framebuffer source = %v, want %v", src, want)
	}
}

func TestRectCacheToScreen(t *testing.T) {
	v, _, _ := newTestView()

	// Double-size destination: stretch factor 2 on both axes.
	dest := geom.Rect{X: 0, Y: 0, W: 2 * 18 * 32, H: 2 * 14 * 32}
	var rc RectCache
	rc.update(v, dest)

	if rc.HorizontalStretchFactor != 2 || rc.VerticalStretchFactor != 2 {
		t.Fatalf("stretch factors = (%v, %v), want (2, 2)",
			rc.HorizontalStretchFactor, rc.VerticalStretchFactor)
	}
	if got := rc.ToScreen(rc.DrawOffset); got != dest.TopLeft() {
		t.Errorf("draw offset maps to %v, want %v", got, dest.TopLeft())
	}
	got := rc.ToScreen(rc.DrawOffset.Add(geom.Point{X: 16, Y: 16}))
	want := geom.Point{X: 32, Y: 32}
	if got != want {
		t.Errorf("half-tile offset maps to %v, want %v", got, want)
	}
}

func TestRectCacheOffsetDestination(t *testing.T) {
	v, _, _ := newTestView()

	dest := geom.Rect{X: 100, Y: 50, W: 18 * 32, H: 14 * 32}
	var rc RectCache
	rc.update(v, dest)

	if got := rc.ToScreen(rc.DrawOffset); got != (geom.Point{X: 100, Y: 50}) {
		t.Errorf("draw offset maps to %v, want the destination origin", got)
	}
}

func TestSetViewportRejectsInvalidRange(t *testing.T) {
	v, _, _ := newTestView()
	before := v.Viewport()
	v.SetViewport(AwareRange{Left: 0, Right: 9, Top: 6, Bottom: 7})
	if v.Viewport() != before {
		t.Error("invalid viewport accepted")
	}
}

func TestSetViewportResizesDrawDimension(t *testing.T) {
	v, _, _ := newTestView()
	v.SetViewport(AwareRange{Left: 4, Right: 5, Top: 3, Bottom: 4})

	// Visible 10x8, padded 13x11.
	want := geom.Size{W: 13 * 32, H: 11 * 32}
	if got := v.RectDimension(); got != want {
		t.Errorf("RectDimension after viewport change = %v, want %v", got, want)
	}
	if got := v.LightView().Size(); got != (geom.Size{W: 13, H: 11}) {
		t.Errorf("light buffer size = %v, want 13x11", got)
	}
}
