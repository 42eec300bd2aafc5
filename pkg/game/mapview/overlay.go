package mapview

import (
	"image/color"
	"time"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

// Creature information bar geometry, in screen pixels. The fill is inset
// one pixel into the background frame.
const (
	infoBarWidth  = 27
	infoBarHeight = 4
	infoBarRise   = 12
)

var (
	infoBarBackground = color.RGBA{A: 255}
	manaBarColor      = color.RGBA{B: 188, A: 255}
	textShadowColor   = color.RGBA{A: 255}
)

// healthColor maps a health percentage onto the classic bar ramp: solid
// green while healthy, through olive, down to dark red near death.
func healthColor(percent int) color.RGBA {
	switch {
	case percent > 92:
		return color.RGBA{R: 0x00, G: 0xBC, B: 0x00, A: 255}
	case percent > 60:
		return color.RGBA{R: 0x50, G: 0xA1, B: 0x50, A: 255}
	case percent > 30:
		return color.RGBA{R: 0xA1, G: 0xA1, B: 0x00, A: 255}
	case percent > 8:
		return color.RGBA{R: 0xBF, G: 0x0A, B: 0x0A, A: 255}
	case percent > 3:
		return color.RGBA{R: 0x91, G: 0x0F, B: 0x0F, A: 255}
	default:
		return color.RGBA{R: 0x85, G: 0x0C, B: 0x0C, A: 255}
	}
}

// drawCreatureInformation draws names and health/mana bars for the
// creatures collected by the last visibility refresh, whatever floor
// they stand on. It renders in screen space, after any map zoom, so
// bars stay crisp at every scale.
func (v *MapView) drawCreatureInformation(camera world.Position) {
	if !v.drawNames && !v.drawHealthBars && !v.drawManaBar {
		return
	}
	resolution := v.painter.State().Resolution
	if !resolution.IsValid() {
		return
	}
	screenRect := geom.NewRect(geom.Point{}, resolution)

	v.pool.MarkDirty(drawpool.GroupCreatureInfo)
	if v.pool.DrawUp(drawpool.GroupCreatureInfo, resolution, screenRect, screenRect) {
		for _, creature := range v.visibleCreatures {
			anchor := v.creatureScreenAnchor(creature, camera)
			v.drawCreatureBars(creature, anchor)
			v.drawCreatureName(creature, anchor)
		}
		v.painter.ResetColor()
	}
	v.pool.Flush(drawpool.GroupCreatureInfo)
}

// creatureScreenAnchor projects a creature to the screen-space point its
// information hangs from: centered horizontally on the tile, a little
// above the sprite, displacement applied.
func (v *MapView) creatureScreenAnchor(creature *world.Thing, camera world.Position) geom.Point {
	p := v.transformPositionTo2D(creature.Position, camera)
	p = p.Sub(creature.Appearance.Displacement)
	p = v.rectCache.ToScreen(p)
	return geom.Point{X: p.X + v.tileSize/2, Y: p.Y - infoBarRise}
}

// drawCreatureBars draws the health and mana bars independently; the
// mana bar keeps its slot below the health bar even when health bars
// are toggled off, so the layout does not shift with the toggles.
func (v *MapView) drawCreatureBars(creature *world.Thing, anchor geom.Point) {
	if !v.drawHealthBars && !v.drawManaBar {
		return
	}
	background := geom.Rect{
		X: anchor.X - infoBarWidth/2,
		Y: anchor.Y,
		W: infoBarWidth,
		H: infoBarHeight,
	}

	if v.drawHealthBars {
		percent := creature.HealthPercent
		if percent < 0 {
			percent = 0
		} else if percent > 100 {
			percent = 100
		}
		v.painter.SetColor(infoBarBackground)
		v.painter.DrawFilledRect(background)

		fill := geom.Rect{
			X: background.X + 1,
			Y: background.Y + 1,
			W: (infoBarWidth - 2) * percent / 100,
			H: infoBarHeight - 2,
		}
		if fill.W > 0 {
			v.painter.SetColor(healthColor(percent))
			v.painter.DrawFilledRect(fill)
		}
	}

	if v.drawManaBar && creature.ManaPercent > 0 {
		mana := creature.ManaPercent
		if mana > 100 {
			mana = 100
		}
		manaBackground := background.Translated(geom.Point{Y: infoBarHeight + 1})
		v.painter.SetColor(infoBarBackground)
		v.painter.DrawFilledRect(manaBackground)
		manaFill := geom.Rect{
			X: manaBackground.X + 1,
			Y: manaBackground.Y + 1,
			W: (infoBarWidth - 2) * mana / 100,
			H: infoBarHeight - 2,
		}
		if manaFill.W > 0 {
			v.painter.SetColor(manaBarColor)
			v.painter.DrawFilledRect(manaFill)
		}
	}
}

func (v *MapView) drawCreatureName(creature *world.Thing, anchor geom.Point) {
	if !v.drawNames || v.textPainter == nil || creature.Name == "" {
		return
	}
	size := v.textPainter.Measure(creature.Name)
	topLeft := geom.Point{X: anchor.X - size.W/2, Y: anchor.Y - size.H - 1}
	v.textPainter.Draw(creature.Name, topLeft.Add(geom.Point{X: 1, Y: 1}), textShadowColor)
	v.textPainter.Draw(creature.Name, topLeft, healthColor(creature.HealthPercent))
}

// drawText draws floating map texts in screen space. Static texts with a
// message mode other than MessageNone show from any floor so shouts stay
// readable while the camera moves between levels; plain texts and all
// animated texts are pinned to the camera floor.
func (v *MapView) drawText(camera world.Position) {
	if !v.drawTexts || v.textPainter == nil {
		return
	}
	resolution := v.painter.State().Resolution
	if !resolution.IsValid() {
		return
	}
	screenRect := geom.NewRect(geom.Point{}, resolution)
	now := time.Now()
	v.world.ExpireTexts(now)

	v.pool.MarkDirty(drawpool.GroupStaticText)
	if v.pool.DrawUp(drawpool.GroupStaticText, resolution, screenRect, screenRect) {
		for _, st := range v.world.StaticTexts() {
			if st.Position.Z != camera.Z && st.Mode == world.MessageNone {
				continue
			}
			v.drawFloatingText(st.Text, st.Position, geom.Point{}, st.Color, camera)
		}
	}
	v.pool.Flush(drawpool.GroupStaticText)

	v.pool.MarkDirty(drawpool.GroupDynamicText)
	if v.pool.DrawUp(drawpool.GroupDynamicText, resolution, screenRect, screenRect) {
		for _, at := range v.world.AnimatedTexts() {
			if at.Position.Z != camera.Z {
				continue
			}
			v.drawFloatingText(at.Text, at.Position, at.Offset(now), at.Color, camera)
		}
	}
	v.pool.Flush(drawpool.GroupDynamicText)
}

func (v *MapView) drawFloatingText(text string, pos world.Position, offset geom.Point, c color.RGBA, camera world.Position) {
	p := v.transformPositionTo2D(pos, camera).Add(offset)
	p = v.rectCache.ToScreen(p)
	size := v.textPainter.Measure(text)
	topLeft := geom.Point{X: p.X + v.tileSize/2 - size.W/2, Y: p.Y - size.H}
	v.textPainter.Draw(text, topLeft, c)
}
