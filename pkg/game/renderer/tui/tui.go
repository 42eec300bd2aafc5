// Package tui is the terminal debug backend. It runs the full render
// pipeline against the headless device and prints a top-down view of the
// visibility cache and light buffer, which makes culling and lighting
// inspectable over ssh without a window.
package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/input"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter/headless"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/terminal"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/devtools"
	"github.com/Hugo0x1337/otclient-1/pkg/game/mapview"
	"github.com/Hugo0x1337/otclient-1/pkg/game/renderer"
	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

// Icons for the top-down map dump.
const (
	IconPlayer   = "@"
	IconCreature = "c"
	IconGround   = "."
	IconTop      = "^"
	IconVoid     = " "
	IconCulled   = "x"
)

func init() {
	renderer.Register("tui", func() renderer.Renderer { return New() })
}

// Renderer is the terminal debug renderer.
type Renderer struct {
	device  *headless.Device
	painter *painter.Painter
	pool    *drawpool.Pool
	view    *mapview.MapView

	colorGround   color.Style
	colorTop      color.Style
	colorCreature color.Style
	colorPlayer   color.Style
	colorCulled   color.Style
	colorSubtle   color.Style
	colorDark     color.Style

	drawEdge bool

	log *logrus.Entry
}

// New creates the terminal debug renderer.
func New() *Renderer {
	return &Renderer{log: logrus.WithField("renderer", "tui")}
}

// Init prepares colors and the headless pipeline.
func (t *Renderer) Init(_ renderer.Options) error {
	t.colorGround = color.Style{color.FgGreen}
	t.colorTop = color.Style{color.FgGray, color.OpBold}
	t.colorCreature = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorCulled = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorDark = color.Style{color.FgBlue}

	t.device = headless.NewDevice()
	t.painter = painter.New(t.device)
	t.pool = drawpool.New(t.painter, t.device)
	return nil
}

// Run loops reading single-letter commands from stdin and printing a
// frame dump after each one.
func (t *Renderer) Run(s *scene.Scene) error {
	t.view = mapview.New(s.Map, t.painter, t.pool)
	t.painter.SetResolution(geom.Size{W: 960, H: 640})

	t.log.Info("starting terminal debug loop")
	t.renderFrame(s)

	for {
		fmt.Print(t.colorSubtle.Sprint("[wasd/arrows] move  [L] lights  [e] edge culling  [m] dump map  [q] quit > "))
		code, err := input.ReadKey()
		if err != nil {
			return err
		}
		fmt.Println()
		switch input.MapToIntent(code) {
		case input.ActionQuit:
			return nil
		case input.ActionMoveNorth:
			s.MovePlayer(world.North)
		case input.ActionMoveEast:
			s.MovePlayer(world.East)
		case input.ActionMoveSouth:
			s.MovePlayer(world.South)
		case input.ActionMoveWest:
			s.MovePlayer(world.West)
		case input.ActionToggleLights:
			t.view.SetDrawLights(!t.view.DrawLights())
		case input.ActionToggleEdge:
			t.drawEdge = !t.drawEdge
			t.view.SetDrawViewportEdge(t.drawEdge)
		case input.ActionDumpMap:
			path, err := devtools.DumpMapToFile(s.Map, s.CameraPosition())
			if err != nil {
				t.log.WithError(err).Error("map dump failed")
			} else {
				fmt.Println(t.colorSubtle.Sprintf("%s %s", gotext.Get("map dumped to"), path))
			}
		}
		t.renderFrame(s)
	}
}

// Shutdown is a no-op; the terminal owns no resources.
func (t *Renderer) Shutdown() {
	t.log.Info("renderer stopped")
}

// renderFrame drives one full frame through the headless device, then
// dumps what the visibility filter kept.
func (t *Renderer) renderFrame(s *scene.Scene) {
	t.view.SetCameraPosition(s.CameraPosition())
	t.view.SetHoverPosition(s.HoverPosition())
	t.pool.MarkDirty(drawpool.GroupMap)

	t.device.Reset()
	t.view.Draw(geom.Rect{X: 0, Y: 0, W: 960, H: 640})

	t.printMap(s)
	t.printStats()
}

func (t *Renderer) printMap(s *scene.Scene) {
	camera := s.CameraPosition()
	viewport := t.view.Viewport()
	termWidth, _ := terminal.GetSize()

	cols := viewport.Left + viewport.Right + 1
	rows := viewport.Top + viewport.Bottom + 1
	if cols > termWidth-2 {
		cols = termWidth - 2
	}

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprintf("%s %v  %s %d..%d",
		gotext.Get("camera"), camera, gotext.Get("floors"), floorMinOf(t.view), floorMaxOf(t.view)))

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			pos := world.Position{
				X: camera.X + col - viewport.Left,
				Y: camera.Y + row - viewport.Top,
				Z: camera.Z,
			}
			line.WriteString(t.renderCell(s, pos, camera))
		}
		fmt.Println(line.String())
	}
}

func (t *Renderer) renderCell(s *scene.Scene, pos world.Position, camera world.Position) string {
	tile := s.Map.GetTile(pos)
	if tile == nil || tile.IsEmpty() {
		return IconVoid
	}
	if !t.view.CanRenderTile(tile, t.view.Viewport(), nil) {
		return t.colorCulled.Sprint(IconCulled)
	}
	if pos == camera {
		return t.colorPlayer.Sprint(IconPlayer)
	}
	if len(tile.Creatures()) > 0 {
		return t.colorCreature.Sprint(IconCreature)
	}
	if tile.IsTopGround() {
		return t.colorTop.Sprint(IconTop)
	}
	if tile.HasGround() {
		if lv := t.view.LightView(); lv != nil && lv.IsDark() {
			return t.colorDark.Sprint(IconGround)
		}
		return t.colorGround.Sprint(IconGround)
	}
	return t.colorSubtle.Sprint(IconGround)
}

// printStats summarizes the device call log so pipeline regressions show
// up directly in the dump.
func (t *Renderer) printStats() {
	fmt.Println(t.colorSubtle.Sprintf(
		"draws: %d textured, %d filled | binds: %d | composition changes: %d | clears: %d",
		t.device.TexturedRectDraws,
		t.device.FilledRectDraws,
		t.device.TextureBinds,
		t.device.CompositionModeChanges,
		t.device.Clears,
	))
}

func floorMinOf(v *mapview.MapView) int {
	fmin, _ := v.FloorRange()
	return fmin
}

func floorMaxOf(v *mapview.MapView) int {
	_, fmax := v.FloorRange()
	return fmax
}
