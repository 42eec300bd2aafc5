package mapview

import (
	"image/color"
	"testing"
	"time"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

func TestHealthColorRamp(t *testing.T) {
	tests := []struct {
		percent int
		want    color.RGBA
	}{
		{100, color.RGBA{0x00, 0xBC, 0x00, 255}},
		{93, color.RGBA{0x00, 0xBC, 0x00, 255}},
		{92, color.RGBA{0x50, 0xA1, 0x50, 255}},
		{61, color.RGBA{0x50, 0xA1, 0x50, 255}},
		{60, color.RGBA{0xA1, 0xA1, 0x00, 255}},
		{31, color.RGBA{0xA1, 0xA1, 0x00, 255}},
		{30, color.RGBA{0xBF, 0x0A, 0x0A, 255}},
		{9, color.RGBA{0xBF, 0x0A, 0x0A, 255}},
		{8, color.RGBA{0x91, 0x0F, 0x0F, 255}},
		{4, color.RGBA{0x91, 0x0F, 0x0F, 255}},
		{3, color.RGBA{0x85, 0x0C, 0x0C, 255}},
		{0, color.RGBA{0x85, 0x0C, 0x0C, 255}},
	}
	for _, tc := range tests {
		if got := healthColor(tc.percent); got != tc.want {
			t.Errorf("healthColor(%d) = %v, want %v", tc.percent, got, tc.want)
		}
	}
}

func newCreature(name string, health int, pos world.Position) *world.Thing {
	return &world.Thing{
		Kind:          world.KindCreature,
		Name:          name,
		HealthPercent: health,
		Position:      pos,
		Appearance:    world.Appearance{Size: geom.Size{W: 1, H: 1}},
	}
}

func TestCreatureHealthBarGeometry(t *testing.T) {
	v, m, device := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)

	pos := world.Position{X: 32, Y: 32, Z: 7}
	addGround(t, m, pos)
	m.AddThing(newCreature("rat", 100, pos), pos)

	v.Draw(testDest)

	// The creature sits on the camera tile: framebuffer (320, 256), screen
	// (288, 224), bar anchored half a tile right and 12px up.
	wantBackground := "draw-filled {291 212 27 4}"
	wantFill := "draw-filled {292 213 25 2}"
	if indexOfCall(device.Calls, wantBackground) < 0 {
		t.Errorf("bar background not drawn, want %q", wantBackground)
	}
	if indexOfCall(device.Calls, wantFill) < 0 {
		t.Errorf("bar fill not drawn, want %q", wantFill)
	}
}

func TestManaBarBelowHealthBar(t *testing.T) {
	v, m, device := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)
	v.SetDrawManaBar(true)

	pos := world.Position{X: 32, Y: 32, Z: 7}
	addGround(t, m, pos)
	avatar := newCreature("avatar", 100, pos)
	avatar.ManaPercent = 50
	m.AddThing(avatar, pos)

	v.Draw(testDest)

	if indexOfCall(device.Calls, "draw-filled {291 217 27 4}") < 0 {
		t.Error("mana background not drawn one row below the health bar")
	}
	if indexOfCall(device.Calls, "draw-filled {292 218 12 2}") < 0 {
		t.Error("half mana fill not drawn")
	}
}

func TestManaBarWithoutHealthBar(t *testing.T) {
	v, m, device := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)
	v.SetDrawNames(false)
	v.SetDrawHealthBars(false)
	v.SetDrawManaBar(true)

	pos := world.Position{X: 32, Y: 32, Z: 7}
	addGround(t, m, pos)
	avatar := newCreature("avatar", 100, pos)
	avatar.ManaPercent = 50
	m.AddThing(avatar, pos)

	v.Draw(testDest)

	// The mana bar keeps its slot below the (undrawn) health bar.
	if indexOfCall(device.Calls, "draw-filled {291 217 27 4}") < 0 {
		t.Error("mana background not drawn with health bars off")
	}
	if indexOfCall(device.Calls, "draw-filled {292 218 12 2}") < 0 {
		t.Error("mana fill not drawn with health bars off")
	}
	if indexOfCall(device.Calls, "draw-filled {291 212 27 4}") >= 0 {
		t.Error("health bar drawn despite being toggled off")
	}
}

func TestCreatureBarsSpanVisibleFloors(t *testing.T) {
	v, m, device := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)

	// A creature one floor up is visible and gets its bar, projected one
	// tile up-left of the camera tile.
	above := world.Position{X: 32, Y: 32, Z: 6}
	addGround(t, m, above)
	m.AddThing(newCreature("ghost", 100, above), above)

	// A creature below the surface range is not in the visible set.
	below := world.Position{X: 32, Y: 32, Z: 8}
	addGround(t, m, below)
	m.AddThing(newCreature("rat", 100, below), below)

	v.Draw(testDest)

	if indexOfCall(device.Calls, "draw-filled {259 180 27 4}") < 0 {
		t.Error("bar not drawn for a creature on a visible upper floor")
	}
	if indexOfCall(device.Calls, "draw-filled {323 244 27 4}") >= 0 {
		t.Error("bar drawn for a creature on an invisible floor")
	}
}

type textRecord struct {
	text    string
	topLeft geom.Point
	color   color.RGBA
}

type fakeTextPainter struct {
	draws []textRecord
}

func (f *fakeTextPainter) Measure(s string) geom.Size {
	return geom.Size{W: 7 * len(s), H: 10}
}

func (f *fakeTextPainter) Draw(s string, topLeft geom.Point, c color.RGBA) {
	f.draws = append(f.draws, textRecord{s, topLeft, c})
}

func TestCreatureNameDrawnWithShadow(t *testing.T) {
	v, m, _ := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)
	tp := &fakeTextPainter{}
	v.SetTextPainter(tp)

	pos := world.Position{X: 32, Y: 32, Z: 7}
	addGround(t, m, pos)
	m.AddThing(newCreature("rat", 100, pos), pos)

	v.Draw(testDest)

	if len(tp.draws) != 2 {
		t.Fatalf("name draws = %d, want shadow plus name", len(tp.draws))
	}
	shadow, name := tp.draws[0], tp.draws[1]
	if shadow.color != (color.RGBA{A: 255}) {
		t.Errorf("shadow color = %v, want black", shadow.color)
	}
	if name.color != healthColor(100) {
		t.Errorf("name color = %v, want the health ramp color", name.color)
	}
	if shadow.topLeft != name.topLeft.Add(geom.Point{X: 1, Y: 1}) {
		t.Errorf("shadow at %v, name at %v; want a one pixel offset", shadow.topLeft, name.topLeft)
	}
}

func TestFloatingTextFloorPinning(t *testing.T) {
	v, m, _ := newTestView()
	v.painter.SetResolution(geom.Size{W: 800, H: 600})
	v.SetCameraPosition(testCamera)
	v.SetDrawLights(false)
	tp := &fakeTextPainter{}
	v.SetTextPainter(tp)

	m.AddStaticText(&world.StaticText{
		Position: world.Position{X: 32, Y: 32, Z: 6},
		Text:     "shout",
		Mode:     world.MessageSay,
	})
	m.AddStaticText(&world.StaticText{
		Position: world.Position{X: 32, Y: 32, Z: 6},
		Text:     "hidden",
		Mode:     world.MessageNone,
	})
	m.AddStaticText(&world.StaticText{
		Position: world.Position{X: 33, Y: 33, Z: 7},
		Text:     "local",
		Mode:     world.MessageNone,
	})
	m.AddAnimatedText(&world.AnimatedText{
		Position:  world.Position{X: 32, Y: 32, Z: 7},
		Text:      "12",
		StartedAt: time.Now(),
	})
	m.AddAnimatedText(&world.AnimatedText{
		Position:  world.Position{X: 32, Y: 32, Z: 5},
		Text:      "99",
		StartedAt: time.Now(),
	})

	v.Draw(testDest)

	drawn := make(map[string]bool)
	for _, d := range tp.draws {
		drawn[d.text] = true
	}
	for _, want := range []string{"shout", "local", "12"} {
		if !drawn[want] {
			t.Errorf("text %q not drawn", want)
		}
	}
	for _, skip := range []string{"hidden", "99"} {
		if drawn[skip] {
			t.Errorf("text %q drawn despite being pinned to another floor", skip)
		}
	}
}
