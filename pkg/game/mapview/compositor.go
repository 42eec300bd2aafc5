package mapview

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/lightview"
)

// crosshairEffectOpacity dims the crosshair while its hover effect plays.
const crosshairEffectOpacity = 0.65

// Draw renders one frame into the destination rect. Floors are composed
// from the topmost visible down to the bottommost; within a floor the
// pass order is grounds, then bottom/top layers, then missiles, and must
// not be reordered or sprite overlap breaks. A frame with no valid camera
// is skipped entirely.
func (v *MapView) Draw(dest geom.Rect) {
	refreshed := false
	if v.cacheIsStale() {
		v.RefreshVisibilityCache(v.cameraPosition)
		refreshed = true
	}

	if v.rectCache.Rect != dest {
		v.rectCache.update(v, dest)
		v.pool.MarkDirty(drawpool.GroupMap)
	}

	camera := v.cameraPosition
	if !camera.IsValid() {
		// This can happen while the followed creature's position is
		// not known yet.
		return
	}

	if refreshed {
		v.pool.MarkDirty(drawpool.GroupMap)
	}

	var lv *lightview.LightView
	if v.drawLights {
		lv = v.lightView
	}

	if v.pool.DrawUp(drawpool.GroupMap, v.RectDimension(), v.rectCache.Rect, v.rectCache.SrcRect) {
		if lv != nil {
			// Sources and shades are only collected while composing, so
			// the accumulator resets together with the recompose. On a
			// cache hit the previous frame's light buffer is still valid
			// and is blitted as is.
			lv.Reset()
			v.pool.MarkDirty(drawpool.GroupLight)
		}
		v.composeFloors(camera, lv)
		v.drawCrosshair(camera)
	}
	v.applyShader(camera)
	v.pool.Flush(drawpool.GroupMap)

	if lv != nil {
		if v.pool.DrawUp(drawpool.GroupLight, v.RectDimension(), v.rectCache.Rect, v.rectCache.SrcRect) {
			lv.Draw(v.painter)
		}
		v.painter.SetCompositionMode(painter.CompositionLight)
		v.pool.Flush(drawpool.GroupLight)
		v.painter.ResetCompositionMode()
	}

	v.drawCreatureInformation(camera)
	v.drawText(camera)
}

// composeFloors walks floors from floorMax down to floorMin drawing each
// into the map draw group.
func (v *MapView) composeFloors(camera world.Position, lv *lightview.LightView) {
	for z := v.floorMax; z >= v.floorMin; z-- {
		if lv != nil {
			v.shadeUpperFloor(z, camera, lv)
		}

		if v.OnFloorDrawingStart != nil {
			v.OnFloorDrawingStart(z)
		}
		if lv != nil {
			lv.SetFloor(z)
		}

		for _, tile := range v.cachedVisibleTiles[z] {
			if !v.CanRenderTile(tile, v.viewport, lv) {
				continue
			}
			v.drawGround(tile, camera, lv)
		}

		// Items and creatures render after every ground on the floor
		// settled, otherwise inter-tile seams show through sprites
		// overlapping their neighbour tile.
		for _, tile := range v.cachedVisibleTiles[z] {
			if !v.CanRenderTile(tile, v.viewport, lv) {
				continue
			}
			v.drawBottom(tile, camera, lv)
			v.drawTop(tile, camera, lv)
		}

		for _, missile := range v.world.FloorMissiles(z) {
			v.drawMissile(missile, camera, lv)
		}

		if v.OnFloorDrawingEnd != nil {
			v.OnFloorDrawingEnd(z)
		}
	}
}

// shadeUpperFloor marks shade points for every non-translucent ground on
// the floor above z, approximating the shadow the upper floor casts onto
// this one. Top grounds additionally probe their south/east neighbours:
// where the upper floor steps down to a plain ground, the seam casts a
// second shade shifted by one tile. Only those two directions are
// checked; this mirrors how the engine has always tuned floor seams, so
// leave the asymmetry alone.
func (v *MapView) shadeUpperFloor(z int, camera world.Position, lv *lightview.LightView) {
	nextFloor := z - 1
	if nextFloor < v.floorMin {
		return
	}
	lv.SetFloor(nextFloor)
	for _, tile := range v.cachedVisibleTiles[nextFloor] {
		ground := tile.Ground()
		if ground == nil || ground.IsTranslucent() {
			continue
		}
		pos2D := v.transformPositionTo2D(tile.Position(), camera)
		if ground.IsTopGround() {
			for _, pos := range tile.Position().TranslatedToDirections([]world.Direction{world.South, world.East}) {
				nextDownTile := v.world.GetTile(pos)
				if nextDownTile != nil && nextDownTile.HasGround() && !nextDownTile.IsTopGround() {
					lv.SetShade(pos2D)
					break
				}
			}
			pos2D = pos2D.Sub(geom.Point{X: v.tileSize, Y: v.tileSize})
		}
		lv.SetShade(pos2D)
	}
}

// drawGround draws a tile's ground layer.
func (v *MapView) drawGround(tile *world.Tile, camera world.Position, lv *lightview.LightView) {
	ground := tile.Ground()
	if ground == nil {
		return
	}
	v.drawThing(ground, v.transformPositionTo2D(tile.Position(), camera), lv)
}

// drawBottom draws a tile's items and creatures in stack order.
func (v *MapView) drawBottom(tile *world.Tile, camera world.Position, lv *lightview.LightView) {
	pos2D := v.transformPositionTo2D(tile.Position(), camera)
	for _, th := range tile.BottomThings() {
		v.drawThing(th, pos2D, lv)
	}
}

// drawTop draws a tile's effects above everything else on the tile.
func (v *MapView) drawTop(tile *world.Tile, camera world.Position, lv *lightview.LightView) {
	pos2D := v.transformPositionTo2D(tile.Position(), camera)
	for _, th := range tile.TopThings() {
		v.drawThing(th, pos2D, lv)
	}
}

// drawMissile draws a projectile interpolated between its origin and
// destination by its flight progress.
func (v *MapView) drawMissile(missile *world.Thing, camera world.Position, lv *lightview.LightView) {
	progress := missile.Progress
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	x := float64(missile.Origin.X) + float64(missile.Destination.X-missile.Origin.X)*progress
	y := float64(missile.Origin.Y) + float64(missile.Destination.Y-missile.Origin.Y)*progress
	v.drawThing(missile, v.transformPositionTo2DF(x, y, missile.Position.Z, camera), lv)
}

// drawThing issues the draw call for one thing at its projected 2D
// position and feeds its light, if any, to the accumulator. Things
// without a texture fall back to a filled rect so headless setups still
// exercise the full pipeline.
func (v *MapView) drawThing(th *world.Thing, dest2D geom.Point, lv *lightview.LightView) {
	size := th.Appearance.Size
	if !size.IsValid() {
		size = geom.Size{W: 1, H: 1}
	}
	rect := geom.Rect{
		X: dest2D.X - (size.W-1)*v.tileSize - th.Appearance.Displacement.X,
		Y: dest2D.Y - (size.H-1)*v.tileSize - th.Appearance.Displacement.Y,
		W: size.W * v.tileSize,
		H: size.H * v.tileSize,
	}

	if tex := th.Appearance.Texture; tex != nil {
		v.painter.DrawTexturedRect(rect, tex, geom.NewRect(geom.Point{}, tex.Size()))
	} else {
		v.painter.DrawFilledRect(rect)
	}

	if lv != nil && th.HasLight() {
		lv.AddLightSource(rect.Center(), *th.Light)
	}
}

// drawCrosshair draws the hover crosshair, dimmed while an optional hover
// effect animation plays on top of it. No crosshair texture or no valid
// hover position disables the overlay for the frame.
func (v *MapView) drawCrosshair(camera world.Position) {
	if v.crosshairTexture == nil || !v.hoverPosition.IsValid() {
		return
	}
	point := v.transformPositionTo2D(v.hoverPosition, camera)
	if v.crosshairEffect != nil && v.crosshairEffect.Appearance.Texture != nil {
		v.drawThing(v.crosshairEffect, point, nil)
		v.painter.SetOpacity(crosshairEffectOpacity)
	}
	crosshairRect := geom.Rect{X: point.X, Y: point.Y, W: v.tileSize, H: v.tileSize}
	v.painter.DrawTexturedRect(crosshairRect, v.crosshairTexture, geom.NewRect(geom.Point{}, v.crosshairTexture.Size()))
	v.painter.ResetOpacity()
}

// applyShader binds the optional full-screen shader and feeds it the
// camera-centre, global-coordinate and zoom uniforms. Latent unless a
// shader is attached to the view.
func (v *MapView) applyShader(camera world.Position) {
	if v.shader == nil {
		return
	}
	rectDim := v.RectDimension()
	center := v.rectCache.SrcRect.Center()
	globalCoord := geom.Point{
		X: camera.X - v.drawDimension.W/2,
		Y: -(camera.Y - v.drawDimension.H/2),
	}.Mul(v.tileSize)

	v.shader.Bind()
	v.shader.SetUniformValue(UniformMapCenterCoord,
		float64(center.X)/float64(rectDim.W),
		1.0-float64(center.Y)/float64(rectDim.H))
	v.shader.SetUniformValue(UniformMapGlobalCoord,
		float64(globalCoord.X)/float64(rectDim.H),
		float64(globalCoord.Y)/float64(rectDim.H))
	v.shader.SetUniformValue(UniformMapZoom, v.scaleFactor)
	v.painter.SetShader(v.shader)
}
