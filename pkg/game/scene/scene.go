// Package scene builds and animates the demo world the client renders:
// a small island with an underground level, wandering creatures carrying
// lights, missiles flying between two towers and floating texts. The
// scene is backend neutral; renderers attach textures to its things
// before the first frame.
package scene

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

const (
	mapWidth  = 64
	mapHeight = 64

	tickInterval   = 200 * time.Millisecond
	missileFlight  = 600 * time.Millisecond
	missileCadence = 2 * time.Second
)

// Scene owns the demo map and everything that moves on it.
type Scene struct {
	Map *world.Map

	player    *world.Thing
	creatures []*world.Thing
	missile   *world.Thing
	things    []*world.Thing

	towers [2]world.Position

	lastTick    time.Time
	lastMissile time.Time
	rng         *rand.Rand
}

// New builds the demo scene. A zero seed derives one from the clock, so
// runs are reproducible only when a seed is given.
func New(seed int64) *Scene {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Scene{
		Map: world.NewMap(mapWidth, mapHeight),
		rng: rand.New(rand.NewSource(seed)),
	}
	s.buildTerrain()
	s.spawnCreatures()
	s.placeTexts()
	return s
}

// CameraPosition returns where the view should center: on the player.
func (s *Scene) CameraPosition() world.Position {
	return s.player.Position
}

// HoverPosition returns the tile in front of the player, used for the
// crosshair overlay.
func (s *Scene) HoverPosition() world.Position {
	return s.player.Position.TranslatedToDirection(s.player.Direction)
}

// Things returns every thing the scene created, for renderers that want
// to attach textures.
func (s *Scene) Things() []*world.Thing {
	return s.things
}

// MovePlayer steps the player one tile in a direction if the target tile
// has ground.
func (s *Scene) MovePlayer(dir world.Direction) {
	s.player.Direction = dir
	target := s.player.Position.TranslatedToDirection(dir)
	tile := s.Map.GetTile(target)
	if tile == nil || !tile.HasGround() {
		return
	}
	s.Map.MoveThing(s.player, target)
}

// Advance ticks the scene forward: creatures wander, missiles fly and
// spent texts expire.
func (s *Scene) Advance(now time.Time) {
	s.advanceMissile(now)
	s.Map.ExpireTexts(now)

	if now.Sub(s.lastTick) < tickInterval {
		return
	}
	s.lastTick = now

	for _, c := range s.creatures {
		s.wander(c)
	}
	if s.missile == nil && now.Sub(s.lastMissile) >= missileCadence {
		s.fireMissile(now)
	}
}

func (s *Scene) wander(c *world.Thing) {
	if s.rng.Intn(3) != 0 {
		return
	}
	dirs := world.AllDirections()
	dir := dirs[s.rng.Intn(len(dirs))]
	c.Direction = dir
	target := c.Position.TranslatedToDirection(dir)
	tile := s.Map.GetTile(target)
	if tile == nil || !tile.HasGround() || len(tile.Creatures()) > 0 {
		return
	}
	s.Map.MoveThing(c, target)
}

func (s *Scene) fireMissile(now time.Time) {
	from, to := s.towers[0], s.towers[1]
	if s.rng.Intn(2) == 0 {
		from, to = to, from
	}
	s.missile = &world.Thing{
		Kind:        world.KindMissile,
		Origin:      from,
		Destination: to,
	}
	s.missile.Appearance.Size = geom.Size{W: 1, H: 1}
	s.missile.Light = &world.Light{Intensity: 3, Color: color.RGBA{R: 255, G: 170, B: 60, A: 255}}
	s.Map.AddThing(s.missile, from)
	s.lastMissile = now
}

func (s *Scene) advanceMissile(now time.Time) {
	if s.missile == nil {
		return
	}
	s.missile.Progress = float64(now.Sub(s.lastMissile)) / float64(missileFlight)
	if s.missile.Progress < 1 {
		return
	}
	dest := s.missile.Destination
	s.Map.RemoveThing(s.missile)
	s.missile = nil
	s.Map.AddAnimatedText(&world.AnimatedText{
		Position:  dest,
		Text:      "boom",
		Color:     color.RGBA{R: 255, G: 100, B: 40, A: 255},
		StartedAt: now,
	})
}

// buildTerrain lays out the island: grass on the surface floor with a
// stone plateau one floor up, and a small cave below it.
func (s *Scene) buildTerrain() {
	for y := 4; y < mapHeight-4; y++ {
		for x := 4; x < mapWidth-4; x++ {
			s.placeGround(world.Position{X: x, Y: y, Z: world.SeaFloor}, false)
		}
	}

	// Plateau on the floor above, its edge casting shade on the grass.
	for y := 20; y < 30; y++ {
		for x := 20; x < 30; x++ {
			pos := world.Position{X: x, Y: y, Z: world.SeaFloor - 1}
			topGround := x == 29 || y == 29
			s.placeGround(pos, topGround)
		}
	}

	// Cave under the plateau.
	for y := 22; y < 28; y++ {
		for x := 22; x < 28; x++ {
			s.placeGround(world.Position{X: x, Y: y, Z: world.SeaFloor + 1}, false)
		}
	}

	s.towers[0] = world.Position{X: 12, Y: 32, Z: world.SeaFloor}
	s.towers[1] = world.Position{X: 40, Y: 32, Z: world.SeaFloor}
	for _, pos := range s.towers {
		tower := &world.Thing{Kind: world.KindItem}
		tower.Appearance.Size = geom.Size{W: 2, H: 2}
		s.addThing(tower, pos)
	}

	campfire := &world.Thing{Kind: world.KindItem}
	campfire.Appearance.Size = geom.Size{W: 1, H: 1}
	campfire.Light = &world.Light{Intensity: 5, Color: color.RGBA{R: 255, G: 160, B: 80, A: 255}}
	s.addThing(campfire, world.Position{X: 34, Y: 24, Z: world.SeaFloor})
}

func (s *Scene) placeGround(pos world.Position, topGround bool) {
	ground := &world.Thing{Kind: world.KindGround}
	ground.Appearance.Size = geom.Size{W: 1, H: 1}
	ground.Appearance.TopGround = topGround
	s.addThing(ground, pos)
}

func (s *Scene) spawnCreatures() {
	s.player = s.spawnCreature("Avatar", world.Position{X: 32, Y: 32, Z: world.SeaFloor}, 100)
	s.player.Light = &world.Light{Intensity: 4, Color: color.RGBA{R: 250, G: 220, B: 160, A: 255}}

	s.spawnCreature("Rat", world.Position{X: 24, Y: 25, Z: world.SeaFloor + 1}, 40)
	s.spawnCreature("Guard", world.Position{X: 25, Y: 25, Z: world.SeaFloor - 1}, 85)
	wisp := s.spawnCreature("Wisp", world.Position{X: 18, Y: 36, Z: world.SeaFloor}, 15)
	wisp.Light = &world.Light{Intensity: 6, Color: color.RGBA{R: 120, G: 180, B: 255, A: 255}}
}

func (s *Scene) spawnCreature(name string, pos world.Position, health int) *world.Thing {
	c := &world.Thing{
		Kind:          world.KindCreature,
		Name:          name,
		HealthPercent: health,
		ManaPercent:   100,
		Direction:     world.South,
	}
	c.Appearance.Size = geom.Size{W: 1, H: 1}
	c.Appearance.Displacement = geom.Point{X: 8, Y: 8}
	s.addThing(c, pos)
	s.creatures = append(s.creatures, c)
	return c
}

func (s *Scene) placeTexts() {
	s.Map.AddStaticText(&world.StaticText{
		Position: world.Position{X: 32, Y: 30, Z: world.SeaFloor},
		Text:     "welcome to the island",
		Mode:     world.MessageSay,
		Color:    color.RGBA{R: 240, G: 240, B: 160, A: 255},
	})
}

func (s *Scene) addThing(th *world.Thing, pos world.Position) {
	s.Map.AddThing(th, pos)
	s.things = append(s.things, th)
}
