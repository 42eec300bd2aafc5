// Package lightview accumulates per-tile light contributions into a
// buffer blended over the scene. The buffer is regenerated from scratch
// every frame: floor counts and light counts are small, and a full
// regenerate stays correct under any scene change without incremental
// bookkeeping.
package lightview

import (
	"image/color"
	"sort"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

// darkThreshold is the ambient intensity below which the scene counts as
// dark. Light-emitting tiles must render even when culled while the scene
// is dark, so they can still cast light.
const darkThreshold = 250

// shadeFactor darkens a shaded cell to this fraction of ambient. Shades
// approximate floor-seam shadows and are independent of source falloff.
const shadeFactor = 0.12

// Source is one light contribution collected from a visible thing:
// a 2D center point (framebuffer space), a radius in tiles and a color.
type Source struct {
	Center geom.Point
	Radius int
	Color  color.RGBA
}

// LightView is the per-frame light accumulator.
type LightView struct {
	size     geom.Size // in tiles
	tileSize int

	globalLight world.Light
	floor       int

	sources [world.MaxFloor + 1][]Source
	shades  [world.MaxFloor + 1][]geom.Point

	buffer []color.RGBA
}

// New creates a light view covering size tiles drawn at tileSize pixels.
func New(size geom.Size, tileSize int) *LightView {
	lv := &LightView{
		globalLight: world.Light{Intensity: 50, Color: color.RGBA{215, 215, 215, 255}},
	}
	lv.Resize(size, tileSize)
	return lv
}

// Resize adjusts the buffer to a new draw dimension.
func (lv *LightView) Resize(size geom.Size, tileSize int) {
	lv.size = size
	lv.tileSize = tileSize
	lv.buffer = make([]color.RGBA, size.Area())
}

// Reset drops all collected sources and shades. Called at the start of a
// frame, before the floor loop feeds the accumulator again.
func (lv *LightView) Reset() {
	for z := range lv.sources {
		lv.sources[z] = lv.sources[z][:0]
		lv.shades[z] = lv.shades[z][:0]
	}
}

// SetGlobalLight sets the ambient light.
func (lv *LightView) SetGlobalLight(light world.Light) {
	lv.globalLight = light
}

// GlobalLight returns the ambient light.
func (lv *LightView) GlobalLight() world.Light {
	return lv.globalLight
}

// IsDark reports whether ambient light is below the darkness threshold.
func (lv *LightView) IsDark() bool {
	return lv.globalLight.Intensity < darkThreshold
}

// SetFloor selects the floor subsequent sources and shades belong to.
func (lv *LightView) SetFloor(z int) {
	if z < 0 {
		z = 0
	} else if z > world.MaxFloor {
		z = world.MaxFloor
	}
	lv.floor = z
}

// Floor returns the active floor.
func (lv *LightView) Floor() int {
	return lv.floor
}

// AddLightSource collects a light source on the active floor. A source at
// the same point with the same color as the previous one on this floor is
// dropped, so stacked things emitting the same light do not double up.
func (lv *LightView) AddLightSource(center geom.Point, light world.Light) {
	if !light.HasLight() {
		return
	}
	floorSources := lv.sources[lv.floor]
	if n := len(floorSources); n > 0 {
		prev := floorSources[n-1]
		if prev.Center == center && prev.Color == light.Color {
			return
		}
	}
	lv.sources[lv.floor] = append(floorSources, Source{
		Center: center,
		Radius: int(light.Intensity),
		Color:  light.Color,
	})
}

// SetShade darkens the cell containing the given 2D point on the active
// floor, independent of any light source.
func (lv *LightView) SetShade(point geom.Point) {
	lv.shades[lv.floor] = append(lv.shades[lv.floor], point)
}

// orderLightComparator orders sources before accumulation. The order must
// be stable and deterministic so shading is reproducible frame to frame:
// weaker sources first, ties broken by color then position.
func orderLightComparator(a, b Source) bool {
	if a.Radius != b.Radius {
		return a.Radius < b.Radius
	}
	if a.Color.R != b.Color.R {
		return a.Color.R < b.Color.R
	}
	if a.Color.G != b.Color.G {
		return a.Color.G < b.Color.G
	}
	if a.Color.B != b.Color.B {
		return a.Color.B < b.Color.B
	}
	if a.Center.Y != b.Center.Y {
		return a.Center.Y < b.Center.Y
	}
	return a.Center.X < b.Center.X
}

func (lv *LightView) cellIndex(point geom.Point) (int, bool) {
	if lv.tileSize <= 0 {
		return 0, false
	}
	cx := point.X / lv.tileSize
	cy := point.Y / lv.tileSize
	if cx < 0 || cx >= lv.size.W || cy < 0 || cy >= lv.size.H {
		return 0, false
	}
	return cy*lv.size.W + cx, true
}

// Generate rebuilds the light buffer from ambient light, shades and the
// collected sources. Floors are applied topmost-first, matching the draw
// order of the compositor.
func (lv *LightView) Generate() {
	ambient := color.RGBA{
		R: scale8(lv.globalLight.Color.R, lv.globalLight.Intensity),
		G: scale8(lv.globalLight.Color.G, lv.globalLight.Intensity),
		B: scale8(lv.globalLight.Color.B, lv.globalLight.Intensity),
		A: 255,
	}
	for i := range lv.buffer {
		lv.buffer[i] = ambient
	}

	for z := world.MaxFloor; z >= 0; z-- {
		for _, point := range lv.shades[z] {
			idx, ok := lv.cellIndex(point)
			if !ok {
				continue
			}
			cell := &lv.buffer[idx]
			cell.R = uint8(float64(ambient.R) * shadeFactor)
			cell.G = uint8(float64(ambient.G) * shadeFactor)
			cell.B = uint8(float64(ambient.B) * shadeFactor)
		}

		floorSources := append([]Source(nil), lv.sources[z]...)
		sort.SliceStable(floorSources, func(i, j int) bool {
			return orderLightComparator(floorSources[i], floorSources[j])
		})
		for _, src := range floorSources {
			lv.blendSource(src)
		}
	}
}

// blendSource adds one source's radial falloff into the buffer.
func (lv *LightView) blendSource(src Source) {
	if src.Radius <= 0 || lv.tileSize <= 0 {
		return
	}
	centerX := src.Center.X / lv.tileSize
	centerY := src.Center.Y / lv.tileSize
	for cy := centerY - src.Radius; cy <= centerY+src.Radius; cy++ {
		if cy < 0 || cy >= lv.size.H {
			continue
		}
		for cx := centerX - src.Radius; cx <= centerX+src.Radius; cx++ {
			if cx < 0 || cx >= lv.size.W {
				continue
			}
			dx := cx - centerX
			dy := cy - centerY
			distSq := dx*dx + dy*dy
			if distSq > src.Radius*src.Radius {
				continue
			}
			// Linear falloff on squared distance keeps this loop
			// free of sqrt while staying monotonic.
			falloff := 1.0 - float64(distSq)/float64(src.Radius*src.Radius)
			cell := &lv.buffer[cy*lv.size.W+cx]
			cell.R = addClamped(cell.R, src.Color.R, falloff)
			cell.G = addClamped(cell.G, src.Color.G, falloff)
			cell.B = addClamped(cell.B, src.Color.B, falloff)
		}
	}
}

// CellAt returns the accumulated color of the cell containing the given
// 2D point, for tests and the terminal debug view.
func (lv *LightView) CellAt(point geom.Point) (color.RGBA, bool) {
	idx, ok := lv.cellIndex(point)
	if !ok {
		return color.RGBA{}, false
	}
	return lv.buffer[idx], true
}

// Size returns the buffer dimension in tiles.
func (lv *LightView) Size() geom.Size {
	return lv.size
}

// Draw regenerates the buffer and paints it cell by cell through the
// painter. The caller composites the result over the scene with the Light
// composition mode.
func (lv *LightView) Draw(p *painter.Painter) {
	lv.Generate()
	for cy := 0; cy < lv.size.H; cy++ {
		for cx := 0; cx < lv.size.W; cx++ {
			p.SetColor(lv.buffer[cy*lv.size.W+cx])
			p.DrawFilledRect(geom.Rect{
				X: cx * lv.tileSize,
				Y: cy * lv.tileSize,
				W: lv.tileSize,
				H: lv.tileSize,
			})
		}
	}
	p.ResetColor()
}

func scale8(v, factor uint8) uint8 {
	return uint8(int(v) * int(factor) / 255)
}

func addClamped(base, add uint8, falloff float64) uint8 {
	sum := int(base) + int(float64(add)*falloff)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
