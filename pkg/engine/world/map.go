package world

import (
	"time"

	"github.com/zyedidia/generic/array2d"
)

// Map is the multi-floor tile grid plus the transient entities the
// renderer reads each frame: per-floor missiles and floating texts. All
// mutation happens between frames; during a draw pass the map is
// read-only. Every structural change bumps a generation counter that the
// visibility cache observes.
type Map struct {
	width  int
	height int
	floors [MaxFloor + 1]array2d.Array2D[*Tile]

	missiles      [MaxFloor + 1][]*Thing
	staticTexts   []*StaticText
	animatedTexts []*AnimatedText

	generation uint64
}

// NewMap creates an empty map of the given horizontal dimensions spanning
// all floors.
func NewMap(width, height int) *Map {
	m := &Map{width: width, height: height}
	for z := 0; z <= MaxFloor; z++ {
		m.floors[z] = array2d.New[*Tile](height, width)
	}
	return m
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// Generation returns the structural change counter. The visibility cache
// recomputes when it observes a new generation.
func (m *Map) Generation() uint64 {
	return m.generation
}

// Touch bumps the generation counter. Mutators call it internally; it is
// exported for callers that mutate tile contents directly.
func (m *Map) Touch() {
	m.generation++
}

func (m *Map) contains(pos Position) bool {
	return pos.Z >= 0 && pos.Z <= MaxFloor &&
		pos.X >= 0 && pos.X < m.width &&
		pos.Y >= 0 && pos.Y < m.height
}

// GetTile returns the tile at a position, or nil when out of bounds or
// never created.
func (m *Map) GetTile(pos Position) *Tile {
	if !m.contains(pos) {
		return nil
	}
	return m.floors[pos.Z].Get(pos.Y, pos.X)
}

// GetOrCreateTile returns the tile at a position, creating it on first
// use. Returns nil when the position is out of bounds.
func (m *Map) GetOrCreateTile(pos Position) *Tile {
	if !m.contains(pos) {
		return nil
	}
	tile := m.floors[pos.Z].Get(pos.Y, pos.X)
	if tile == nil {
		tile = NewTile(pos)
		m.floors[pos.Z].Set(pos.Y, pos.X, tile)
		m.Touch()
	}
	return tile
}

// AddThing places a thing at a position. Missiles are tracked per floor
// instead of per tile. Returns false when the position is out of bounds.
func (m *Map) AddThing(th *Thing, pos Position) bool {
	if th == nil || !m.contains(pos) {
		return false
	}
	if th.Kind == KindMissile {
		th.Position = pos
		m.missiles[pos.Z] = append(m.missiles[pos.Z], th)
		m.Touch()
		return true
	}
	tile := m.GetOrCreateTile(pos)
	tile.AddThing(th)
	m.Touch()
	return true
}

// RemoveThing removes a thing from wherever it currently is.
func (m *Map) RemoveThing(th *Thing) {
	if th == nil {
		return
	}
	if th.Kind == KindMissile {
		z := th.Position.Z
		if z < 0 || z > MaxFloor {
			return
		}
		for i, missile := range m.missiles[z] {
			if missile == th {
				m.missiles[z] = append(m.missiles[z][:i], m.missiles[z][i+1:]...)
				m.Touch()
				return
			}
		}
		return
	}
	if tile := m.GetTile(th.Position); tile != nil {
		tile.RemoveThing(th)
		m.Touch()
	}
}

// MoveThing relocates a thing to a new position.
func (m *Map) MoveThing(th *Thing, pos Position) bool {
	if th == nil || !m.contains(pos) {
		return false
	}
	m.RemoveThing(th)
	return m.AddThing(th, pos)
}

// FloorMissiles returns the missiles in flight on a floor. The slice is
// owned by the map.
func (m *Map) FloorMissiles(z int) []*Thing {
	if z < 0 || z > MaxFloor {
		return nil
	}
	return m.missiles[z]
}

// AddStaticText anchors a floating text to a position.
func (m *Map) AddStaticText(text *StaticText) {
	if text == nil {
		return
	}
	m.staticTexts = append(m.staticTexts, text)
	m.Touch()
}

// AddAnimatedText spawns a drifting text.
func (m *Map) AddAnimatedText(text *AnimatedText) {
	if text == nil {
		return
	}
	m.animatedTexts = append(m.animatedTexts, text)
	m.Touch()
}

// StaticTexts returns all anchored texts.
func (m *Map) StaticTexts() []*StaticText {
	return m.staticTexts
}

// AnimatedTexts returns the live drifting texts.
func (m *Map) AnimatedTexts() []*AnimatedText {
	return m.animatedTexts
}

// ExpireTexts drops animated texts whose lifetime elapsed. Called between
// frames, never during a draw pass.
func (m *Map) ExpireTexts(now time.Time) {
	kept := m.animatedTexts[:0]
	for _, text := range m.animatedTexts {
		if !text.Expired(now) {
			kept = append(kept, text)
		}
	}
	if len(kept) != len(m.animatedTexts) {
		m.Touch()
	}
	m.animatedTexts = kept
}
