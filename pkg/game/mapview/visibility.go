package mapview

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/lightview"
)

// Generation stamps one computation of the visible-tile cache. It
// increments on every refresh, so collaborators can tell whether the
// cache they observed is still the current one.
type Generation uint64

// CacheGeneration returns the generation of the current visible-tile
// cache.
func (v *MapView) CacheGeneration() Generation {
	return v.cacheGeneration
}

// InvalidateVisibilityCache forces the next frame to recompute the
// visible tiles. Camera moves and viewport changes call this implicitly;
// map mutations are picked up via the map's generation counter.
func (v *MapView) InvalidateVisibilityCache() {
	v.mustUpdateVisibleTiles = true
}

func (v *MapView) cacheIsStale() bool {
	return v.mustUpdateVisibleTiles || v.observedMapGeneration != v.world.Generation()
}

// RefreshVisibilityCache recomputes the per-floor visible tile sequences
// for the given camera position and returns the new cache generation.
// Tiles are collected in diagonal order within each floor, which is the
// back-to-front paint order of the isometric projection. Creatures seen
// along the way are collected for the overlay pass.
func (v *MapView) RefreshVisibilityCache(camera world.Position) Generation {
	v.cameraPosition = camera
	v.floorMin = v.calcFirstVisibleFloor()
	v.floorMax = v.calcLastVisibleFloor()

	for z := range v.cachedVisibleTiles {
		v.cachedVisibleTiles[z] = v.cachedVisibleTiles[z][:0]
	}
	v.visibleCreatures = v.visibleCreatures[:0]

	if !camera.IsValid() {
		v.mustUpdateVisibleTiles = false
		v.observedMapGeneration = v.world.Generation()
		v.cacheGeneration++
		return v.cacheGeneration
	}

	numDiagonals := v.drawDimension.W + v.drawDimension.H - 1
	for z := v.floorMax; z >= v.floorMin; z-- {
		for diagonal := 0; diagonal < numDiagonals; diagonal++ {
			advance := 0
			if diagonal >= v.drawDimension.H {
				advance = diagonal - v.drawDimension.H + 1
			}
			for iy, ix := diagonal-advance, advance; iy >= 0 && ix < v.drawDimension.W; iy, ix = iy-1, ix+1 {
				tilePos := camera.Translated(ix-v.virtualCenterOffset.X, iy-v.virtualCenterOffset.Y)
				tilePos = tilePos.CoveredUp(camera.Z - z)
				if !tilePos.IsValid() {
					continue
				}
				tile := v.world.GetTile(tilePos)
				if tile == nil || tile.IsEmpty() {
					continue
				}
				v.cachedVisibleTiles[z] = append(v.cachedVisibleTiles[z], tile)
				for _, creature := range tile.Creatures() {
					v.visibleCreatures = append(v.visibleCreatures, creature)
				}
			}
		}
	}

	v.mustUpdateVisibleTiles = false
	v.observedMapGeneration = v.world.Generation()
	v.cacheGeneration++
	return v.cacheGeneration
}

// VisibleTiles returns the cached visible tiles of a floor in paint
// order. The slice is owned by the view and valid until the next refresh.
func (v *MapView) VisibleTiles(z int) []*world.Tile {
	if z < 0 || z > world.MaxFloor {
		return nil
	}
	return v.cachedVisibleTiles[z]
}

// VisibleCreatures returns the creatures present on cached visible tiles.
func (v *MapView) VisibleCreatures() []*world.Thing {
	return v.visibleCreatures
}

// CanRenderTile is the per-tile visibility predicate. It is always true
// when viewport edges are drawn, or when lighting is on, the scene is
// dark and the tile emits light (the tile must still render to cast its
// light even when otherwise culled).
//
// Otherwise the tile position is projected by (dz, dz) to correct for the
// floor offset and checked against the viewport. The edge semantics are
// deliberately asymmetric per axis: the left/top boundaries cull at or
// beyond the edge unless the tile has wide or tall things or a
// displacement, while the right/bottom boundaries cull strictly beyond
// the edge, with only tiles having both wide things and displacement
// surviving exactly at the right edge. Preserve the asymmetry; it is
// load-bearing for visual parity at viewport edges.
func (v *MapView) CanRenderTile(tile *world.Tile, viewport AwareRange, lightView *lightview.LightView) bool {
	if v.drawViewportEdge {
		return true
	}
	if lightView != nil && lightView.IsDark() && tile.HasLight() {
		return true
	}

	camera := v.cameraPosition
	tilePos := tile.Position()
	dz := tilePos.Z - camera.Z
	checkPos := tilePos.Translated(dz, dz)

	if camera.X-checkPos.X >= viewport.Left || camera.Y-checkPos.Y >= viewport.Top {
		if !tile.HasWideThings() && !tile.HasTallThings() && !tile.HasDisplacement() {
			return false
		}
	}

	if checkPos.X-camera.X > viewport.Right {
		return false
	}
	if checkPos.X-camera.X == viewport.Right && !(tile.HasWideThings() && tile.HasDisplacement()) {
		return false
	}
	if checkPos.Y-camera.Y > viewport.Bottom {
		return false
	}
	return true
}
