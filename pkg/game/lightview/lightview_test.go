package lightview

import (
	"image/color"
	"testing"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

func newLightView() *LightView {
	return New(geom.Size{W: 8, H: 8}, 32)
}

func TestIsDarkThreshold(t *testing.T) {
	lv := newLightView()

	lv.SetGlobalLight(world.Light{Intensity: 249, Color: color.RGBA{255, 255, 255, 255}})
	if !lv.IsDark() {
		t.Error("intensity 249 should be dark")
	}

	lv.SetGlobalLight(world.Light{Intensity: 250, Color: color.RGBA{255, 255, 255, 255}})
	if lv.IsDark() {
		t.Error("intensity 250 should not be dark")
	}
}

func TestGenerateFillsAmbient(t *testing.T) {
	lv := newLightView()
	lv.SetGlobalLight(world.Light{Intensity: 255, Color: color.RGBA{100, 200, 50, 255}})
	lv.Generate()

	got, ok := lv.CellAt(geom.Point{X: 100, Y: 100})
	if !ok {
		t.Fatal("point inside the buffer reported out of range")
	}
	want := color.RGBA{100, 200, 50, 255}
	if got != want {
		t.Errorf("ambient cell = %v, want %v", got, want)
	}
}

func TestAmbientScalesWithIntensity(t *testing.T) {
	lv := newLightView()
	lv.SetGlobalLight(world.Light{Intensity: 127, Color: color.RGBA{200, 200, 200, 255}})
	lv.Generate()

	got, _ := lv.CellAt(geom.Point{X: 0, Y: 0})
	// 200 * 127 / 255 = 99
	if got.R != 99 || got.G != 99 || got.B != 99 {
		t.Errorf("scaled ambient = %v, want 99 per channel", got)
	}
}

func TestAddLightSourceDropsDuplicates(t *testing.T) {
	lv := newLightView()
	light := world.Light{Intensity: 3, Color: color.RGBA{255, 128, 0, 255}}

	lv.AddLightSource(geom.Point{X: 64, Y: 64}, light)
	lv.AddLightSource(geom.Point{X: 64, Y: 64}, light)
	if n := len(lv.sources[lv.floor]); n != 1 {
		t.Errorf("sources after duplicate add = %d, want 1", n)
	}

	// Same point, different color is a distinct source.
	lv.AddLightSource(geom.Point{X: 64, Y: 64}, world.Light{Intensity: 3, Color: color.RGBA{0, 128, 255, 255}})
	if n := len(lv.sources[lv.floor]); n != 2 {
		t.Errorf("sources after distinct color = %d, want 2", n)
	}
}

func TestAddLightSourceIgnoresUnlit(t *testing.T) {
	lv := newLightView()
	lv.AddLightSource(geom.Point{X: 0, Y: 0}, world.Light{Intensity: 0})
	if n := len(lv.sources[lv.floor]); n != 0 {
		t.Errorf("unlit source collected, got %d sources", n)
	}
}

func TestSourceBrightensNearbyCells(t *testing.T) {
	lv := newLightView()
	lv.SetGlobalLight(world.Light{Intensity: 50, Color: color.RGBA{215, 215, 215, 255}})
	lv.SetFloor(7)
	lv.AddLightSource(geom.Point{X: 4*32 + 16, Y: 4*32 + 16}, world.Light{
		Intensity: 2,
		Color:     color.RGBA{255, 255, 255, 255},
	})
	lv.Generate()

	lit, _ := lv.CellAt(geom.Point{X: 4 * 32, Y: 4 * 32})
	far, _ := lv.CellAt(geom.Point{X: 0, Y: 0})
	if lit.R <= far.R {
		t.Errorf("cell under the source (%v) no brighter than a far cell (%v)", lit, far)
	}

	// Falloff is monotonic: one tile out is dimmer than the center.
	edge, _ := lv.CellAt(geom.Point{X: 5 * 32, Y: 4 * 32})
	if edge.R >= lit.R {
		t.Errorf("edge cell %v not dimmer than center %v", edge, lit)
	}
}

func TestShadeDarkensCell(t *testing.T) {
	lv := newLightView()
	lv.SetGlobalLight(world.Light{Intensity: 255, Color: color.RGBA{200, 200, 200, 255}})
	lv.SetFloor(7)
	lv.SetShade(geom.Point{X: 2 * 32, Y: 3 * 32})
	lv.Generate()

	shaded, _ := lv.CellAt(geom.Point{X: 2 * 32, Y: 3 * 32})
	plain, _ := lv.CellAt(geom.Point{X: 0, Y: 0})
	if shaded.R >= plain.R {
		t.Errorf("shaded cell %v not darker than ambient %v", shaded, plain)
	}
	// 200 * 0.12 = 24
	if shaded.R != 24 {
		t.Errorf("shaded channel = %d, want 24", shaded.R)
	}
}

func TestResetDropsSourcesAndShades(t *testing.T) {
	lv := newLightView()
	lv.SetFloor(5)
	lv.AddLightSource(geom.Point{X: 32, Y: 32}, world.Light{Intensity: 2, Color: color.RGBA{255, 0, 0, 255}})
	lv.SetShade(geom.Point{X: 64, Y: 64})

	lv.Reset()
	if len(lv.sources[5]) != 0 || len(lv.shades[5]) != 0 {
		t.Error("reset left sources or shades behind")
	}
}

func TestSetFloorClamps(t *testing.T) {
	lv := newLightView()
	lv.SetFloor(-3)
	if lv.Floor() != 0 {
		t.Errorf("floor after negative set = %d, want 0", lv.Floor())
	}
	lv.SetFloor(world.MaxFloor + 5)
	if lv.Floor() != world.MaxFloor {
		t.Errorf("floor after oversized set = %d, want %d", lv.Floor(), world.MaxFloor)
	}
}

func TestOrderLightComparator(t *testing.T) {
	weak := Source{Radius: 1, Color: color.RGBA{255, 255, 255, 255}, Center: geom.Point{X: 5, Y: 5}}
	strong := Source{Radius: 4, Color: color.RGBA{0, 0, 0, 255}, Center: geom.Point{X: 0, Y: 0}}
	if !orderLightComparator(weak, strong) {
		t.Error("weaker radius should order first")
	}

	red := Source{Radius: 2, Color: color.RGBA{R: 10}}
	blue := Source{Radius: 2, Color: color.RGBA{R: 200}}
	if !orderLightComparator(red, blue) {
		t.Error("equal radius should fall back to color order")
	}

	upper := Source{Radius: 2, Color: color.RGBA{R: 10}, Center: geom.Point{X: 3, Y: 1}}
	lower := Source{Radius: 2, Color: color.RGBA{R: 10}, Center: geom.Point{X: 1, Y: 4}}
	if !orderLightComparator(upper, lower) {
		t.Error("equal radius and color should fall back to position order")
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	lv := newLightView()
	if _, ok := lv.CellAt(geom.Point{X: -1, Y: 0}); ok {
		t.Error("negative point reported in range")
	}
	if _, ok := lv.CellAt(geom.Point{X: 8 * 32, Y: 0}); ok {
		t.Error("point past the buffer reported in range")
	}
}
