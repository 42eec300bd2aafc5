package ebiten

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/mapview"
	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

var movementKeys = map[eb.Key]world.Direction{
	eb.KeyArrowUp:    world.North,
	eb.KeyArrowRight: world.East,
	eb.KeyArrowDown:  world.South,
	eb.KeyArrowLeft:  world.West,
	eb.KeyW:          world.North,
	eb.KeyD:          world.East,
	eb.KeyS:          world.South,
	eb.KeyA:          world.West,
}

// gameLoop implements eb.Game over a scene and its map view.
type gameLoop struct {
	scene   *scene.Scene
	device  *Device
	painter *painter.Painter
	pool    *drawpool.Pool
	view    *mapview.MapView

	width  int
	height int
}

func (g *gameLoop) Update() error {
	if inpututil.IsKeyJustPressed(eb.KeyEscape) {
		return eb.Termination
	}
	if inpututil.IsKeyJustPressed(eb.KeyL) {
		g.view.SetDrawLights(!g.view.DrawLights())
	}
	for key, dir := range movementKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.scene.MovePlayer(dir)
		}
	}

	g.scene.Advance(time.Now())
	g.view.SetCameraPosition(g.scene.CameraPosition())
	g.view.SetHoverPosition(g.scene.HoverPosition())

	// Missiles and light flicker interpolate every frame without touching
	// the map store, so the map group redraws unconditionally here.
	g.pool.MarkDirty(drawpool.GroupMap)
	return nil
}

func (g *gameLoop) Draw(screen *eb.Image) {
	g.device.SetScreen(screen)
	resolution := geom.Size{W: g.width, H: g.height}
	g.painter.SetResolution(resolution)
	g.view.Draw(geom.NewRect(geom.Point{}, resolution))
}

func (g *gameLoop) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
