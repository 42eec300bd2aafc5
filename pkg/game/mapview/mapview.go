// Package mapview renders the visible portion of the tile map: it decides
// which tiles are visible per floor, composes floors top to bottom with
// occlusion shading, and adds the screen-space overlays (creature bars,
// floating text, crosshair). One MapView drives one frame at a time from
// a single goroutine; tiles are borrowed from the map store and must stay
// structurally stable while a frame is drawn.
package mapview

import (
	"image/color"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/lightview"
)

// Uniform names for the optional full-screen map shader.
const (
	UniformMapCenterCoord = "mapCenterCoord"
	UniformMapGlobalCoord = "mapGlobalCoord"
	UniformMapZoom        = "mapZoom"
)

// TextPainter draws screen-space text for overlays. The ebiten renderer
// provides one; a nil TextPainter silently disables text overlays.
type TextPainter interface {
	Measure(text string) geom.Size
	Draw(text string, topLeft geom.Point, c color.RGBA)
}

// MapView owns the per-frame render pipeline over a map store.
type MapView struct {
	world   *world.Map
	painter *painter.Painter
	pool    *drawpool.Pool

	textPainter TextPainter

	lightView  *lightview.LightView
	drawLights bool

	cameraPosition world.Position
	viewport       AwareRange

	visibleDimension    geom.Size
	drawDimension       geom.Size
	virtualCenterOffset geom.Point
	tileSize            int
	scaleFactor         float64

	floorMin int
	floorMax int

	cachedVisibleTiles     [world.MaxFloor + 1][]*world.Tile
	visibleCreatures       []*world.Thing
	mustUpdateVisibleTiles bool
	cacheGeneration        Generation
	observedMapGeneration  uint64

	rectCache RectCache

	drawViewportEdge bool
	drawNames        bool
	drawHealthBars   bool
	drawManaBar      bool
	drawTexts        bool

	crosshairTexture painter.Texture
	crosshairEffect  *world.Thing
	hoverPosition    world.Position

	shader painter.Shader

	// Start/end-of-floor hooks for bookkeeping collaborators (fading,
	// metrics). Either may be nil.
	OnFloorDrawingStart func(z int)
	OnFloorDrawingEnd   func(z int)
}

// New creates a map view over a map store, drawing through the given
// painter and draw pool.
func New(m *world.Map, p *painter.Painter, pool *drawpool.Pool) *MapView {
	v := &MapView{
		world:                  m,
		painter:                p,
		pool:                   pool,
		cameraPosition:         world.InvalidPosition,
		hoverPosition:          world.InvalidPosition,
		tileSize:               world.TilePixels,
		scaleFactor:            1.0,
		drawLights:             true,
		drawNames:              true,
		drawHealthBars:         true,
		drawTexts:              true,
		mustUpdateVisibleTiles: true,
	}
	v.setViewport(DefaultAwareRange())
	v.lightView = lightview.New(v.drawDimension, v.tileSize)
	return v
}

// setViewport recomputes the dimensions derived from the aware range. The
// draw dimension is padded by three tiles so wide/tall sprites entering
// the viewport already have their tiles cached.
func (v *MapView) setViewport(viewport AwareRange) {
	v.viewport = viewport
	v.visibleDimension = viewport.Dimension()
	v.drawDimension = v.visibleDimension.Add(geom.Size{W: 3, H: 3})
	v.virtualCenterOffset = v.drawDimension.Sub(geom.Size{W: 1, H: 1}).Point().Div(2)
	v.mustUpdateVisibleTiles = true
}

// SetViewport changes the visible range and invalidates the tile cache.
func (v *MapView) SetViewport(viewport AwareRange) {
	if !viewport.IsValid() {
		return
	}
	v.setViewport(viewport)
	if v.lightView != nil {
		v.lightView.Resize(v.drawDimension, v.tileSize)
	}
}

// Viewport returns the current aware range.
func (v *MapView) Viewport() AwareRange {
	return v.viewport
}

// SetCameraPosition moves the camera and invalidates the tile cache.
func (v *MapView) SetCameraPosition(pos world.Position) {
	if pos == v.cameraPosition {
		return
	}
	v.cameraPosition = pos
	v.mustUpdateVisibleTiles = true
}

// CameraPosition returns the camera position; it may be invalid before
// the followed entity is known.
func (v *MapView) CameraPosition() world.Position {
	return v.cameraPosition
}

// SetDrawLights toggles the lighting pipeline. Disabling drops the light
// buffer work entirely; the visibility filter then no longer force-keeps
// light-emitting tiles. Toggling recomposes the map group, since light
// sources are only collected while composing.
func (v *MapView) SetDrawLights(draw bool) {
	if draw == v.drawLights {
		return
	}
	v.drawLights = draw
	v.pool.MarkDirty(drawpool.GroupMap)
}

// DrawLights reports whether the lighting pipeline is enabled.
func (v *MapView) DrawLights() bool {
	return v.drawLights
}

// LightView returns the light accumulator, or nil when lighting was never
// configured.
func (v *MapView) LightView() *lightview.LightView {
	return v.lightView
}

// SetDrawViewportEdge forces every cached tile to render, disabling edge
// culling. Used by the map editor style views.
func (v *MapView) SetDrawViewportEdge(draw bool) {
	v.drawViewportEdge = draw
}

// SetDrawNames toggles creature name overlays.
func (v *MapView) SetDrawNames(draw bool) { v.drawNames = draw }

// SetDrawHealthBars toggles creature health bars.
func (v *MapView) SetDrawHealthBars(draw bool) { v.drawHealthBars = draw }

// SetDrawManaBar toggles creature mana bars.
func (v *MapView) SetDrawManaBar(draw bool) { v.drawManaBar = draw }

// SetDrawTexts toggles static and animated floating texts.
func (v *MapView) SetDrawTexts(draw bool) { v.drawTexts = draw }

// SetTextPainter wires the screen-space text drawer. A nil painter
// disables name and text overlays without error.
func (v *MapView) SetTextPainter(tp TextPainter) {
	v.textPainter = tp
}

// SetCrosshair configures the hover crosshair texture and its optional
// animated hover effect. A nil texture disables the crosshair.
func (v *MapView) SetCrosshair(tex painter.Texture, effect *world.Thing) {
	v.crosshairTexture = tex
	v.crosshairEffect = effect
}

// SetHoverPosition sets the map position under the mouse; pass
// world.InvalidPosition when the mouse leaves the map.
func (v *MapView) SetHoverPosition(pos world.Position) {
	v.hoverPosition = pos
}

// SetShader attaches the optional full-screen map shader; nil disables
// the shader step.
func (v *MapView) SetShader(shader painter.Shader) {
	v.shader = shader
}

// FloorRange returns the visible floor bounds computed by the last cache
// refresh.
func (v *MapView) FloorRange() (floorMin, floorMax int) {
	return v.floorMin, v.floorMax
}

// TileSize returns the tile size in framebuffer pixels.
func (v *MapView) TileSize() int {
	return v.tileSize
}

// RectDimension returns the full framebuffer size in pixels.
func (v *MapView) RectDimension() geom.Size {
	return v.drawDimension.Mul(v.tileSize)
}

// calcFirstVisibleFloor returns the topmost floor to draw. Above ground
// the whole stack down to the camera is visible; underground only a small
// band around the camera is.
func (v *MapView) calcFirstVisibleFloor() int {
	if !v.cameraPosition.IsValid() {
		return 0
	}
	if v.cameraPosition.IsUnderground() {
		z := v.cameraPosition.Z - world.AwareUndergroundRange
		if z < 0 {
			z = 0
		}
		return z
	}
	return 0
}

// calcLastVisibleFloor returns the bottom floor to draw.
func (v *MapView) calcLastVisibleFloor() int {
	if !v.cameraPosition.IsValid() {
		return world.SeaFloor
	}
	if v.cameraPosition.IsUnderground() {
		z := v.cameraPosition.Z + world.AwareUndergroundRange
		if z > world.MaxFloor {
			z = world.MaxFloor
		}
		return z
	}
	return world.SeaFloor
}

// transformPositionTo2D projects a map position to framebuffer-space
// pixels relative to a camera position. Each floor of height difference
// shifts the projection diagonally by one tile.
func (v *MapView) transformPositionTo2D(pos, relative world.Position) geom.Point {
	return geom.Point{
		X: (v.virtualCenterOffset.X + (pos.X - relative.X) - (relative.Z - pos.Z)) * v.tileSize,
		Y: (v.virtualCenterOffset.Y + (pos.Y - relative.Y) - (relative.Z - pos.Z)) * v.tileSize,
	}
}

// transformPositionTo2DF is the fractional-coordinate variant used for
// things travelling between tiles (missiles).
func (v *MapView) transformPositionTo2DF(x, y float64, z int, relative world.Position) geom.Point {
	dz := float64(relative.Z - z)
	return geom.Point{
		X: int((float64(v.virtualCenterOffset.X) + x - float64(relative.X) - dz) * float64(v.tileSize)),
		Y: int((float64(v.virtualCenterOffset.Y) + y - float64(relative.Y) - dz) * float64(v.tileSize)),
	}
}

// calcFramebufferSource maps a destination size back onto the area of the
// framebuffer that should be presented: the visible dimension centred
// inside the padded draw dimension, aspect-ratio preserved.
func (v *MapView) calcFramebufferSource(destSize geom.Size) geom.Rect {
	drawOffset := v.drawDimension.Sub(v.visibleDimension).Sub(geom.Size{W: 1, H: 1}).Point().Div(2).Mul(v.tileSize)

	srcVisible := v.visibleDimension.Mul(v.tileSize)
	srcSize := destSize.ScaledToFit(srcVisible)
	drawOffset.X += (srcVisible.W - srcSize.W) / 2
	drawOffset.Y += (srcVisible.H - srcSize.H) / 2
	return geom.NewRect(drawOffset, srcSize)
}
