package world

import (
	"image/color"
	"testing"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

func newGround() *Thing {
	g := &Thing{Kind: KindGround}
	g.Appearance.Size = geom.Size{W: 1, H: 1}
	return g
}

func newCreature(name string) *Thing {
	c := &Thing{Kind: KindCreature, Name: name}
	c.Appearance.Size = geom.Size{W: 1, H: 1}
	return c
}

func TestAddThingReplacesGround(t *testing.T) {
	tile := NewTile(Position{X: 1, Y: 2, Z: 7})

	first := newGround()
	second := newGround()
	tile.AddThing(first)
	tile.AddThing(second)

	if tile.Ground() != second {
		t.Error("second ground did not replace the first")
	}
	if first.Position != tile.Position() {
		t.Errorf("ground position not set, got %v", first.Position)
	}
}

func TestTileStackOrderPreserved(t *testing.T) {
	tile := NewTile(Position{X: 0, Y: 0, Z: 7})
	a := newCreature("a")
	b := newCreature("b")
	item := &Thing{Kind: KindItem}
	item.Appearance.Size = geom.Size{W: 1, H: 1}

	tile.AddThing(item)
	tile.AddThing(a)
	tile.AddThing(b)

	bottom := tile.BottomThings()
	if len(bottom) != 3 || bottom[0] != item || bottom[1] != a || bottom[2] != b {
		t.Errorf("bottom things out of order: %v", bottom)
	}
	creatures := tile.Creatures()
	if len(creatures) != 2 || creatures[0] != a || creatures[1] != b {
		t.Errorf("creatures out of order: %v", creatures)
	}
}

func TestTileAttributeCounters(t *testing.T) {
	tile := NewTile(Position{X: 0, Y: 0, Z: 7})

	wide := &Thing{Kind: KindItem}
	wide.Appearance.Size = geom.Size{W: 2, H: 1}
	lit := &Thing{Kind: KindItem}
	lit.Appearance.Size = geom.Size{W: 1, H: 1}
	lit.Light = &Light{Intensity: 3, Color: color.RGBA{R: 255, A: 255}}

	tile.AddThing(wide)
	tile.AddThing(lit)

	if !tile.HasWideThings() {
		t.Error("wide thing not tracked")
	}
	if !tile.HasLight() {
		t.Error("light-emitting thing not tracked")
	}
	if tile.HasTallThings() {
		t.Error("tall counter set without tall things")
	}

	tile.RemoveThing(wide)
	if tile.HasWideThings() {
		t.Error("wide counter not decremented on remove")
	}
	tile.RemoveThing(lit)
	if tile.HasLight() {
		t.Error("light counter not decremented on remove")
	}
}

func TestRemoveThingNotOnTileIsNoop(t *testing.T) {
	tile := NewTile(Position{X: 0, Y: 0, Z: 7})
	tile.AddThing(newCreature("a"))

	tile.RemoveThing(newCreature("b"))
	if len(tile.Creatures()) != 1 {
		t.Error("removing a foreign thing changed the tile")
	}
}

func TestTopGroundReplacementKeepsCounters(t *testing.T) {
	tile := NewTile(Position{X: 0, Y: 0, Z: 7})

	litGround := newGround()
	litGround.Light = &Light{Intensity: 2, Color: color.RGBA{G: 255, A: 255}}
	tile.AddThing(litGround)
	if !tile.HasLight() {
		t.Fatal("lit ground not tracked")
	}

	tile.AddThing(newGround())
	if tile.HasLight() {
		t.Error("replaced ground's light still tracked")
	}
}
