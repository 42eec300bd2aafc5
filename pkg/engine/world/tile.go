package world

// Tile owns a ground thing and the ordered stack of things above it
// (bottom-to-top insertion order). The map grid owns tiles; render code
// only borrows them for a frame.
type Tile struct {
	position Position
	ground   *Thing
	things   []*Thing

	// Attribute counters kept in sync on add/remove so the per-frame
	// visibility checks are O(1).
	wideCount         int
	tallCount         int
	displacementCount int
	lightCount        int
}

// NewTile creates an empty tile at a position.
func NewTile(pos Position) *Tile {
	return &Tile{position: pos}
}

// Position returns the tile's map coordinate.
func (t *Tile) Position() Position {
	return t.position
}

// AddThing places a thing on the tile. A ground thing replaces the
// current ground; everything else stacks on top in insertion order.
func (t *Tile) AddThing(th *Thing) {
	if th == nil {
		return
	}
	th.Position = t.position
	if th.Kind == KindGround {
		if t.ground != nil {
			t.untrack(t.ground)
		}
		t.ground = th
	} else {
		t.things = append(t.things, th)
	}
	t.track(th)
}

// RemoveThing removes a thing from the tile. Removing a thing that is not
// on the tile is a no-op.
func (t *Tile) RemoveThing(th *Thing) {
	if th == nil {
		return
	}
	if t.ground == th {
		t.ground = nil
		t.untrack(th)
		return
	}
	for i, existing := range t.things {
		if existing == th {
			t.things = append(t.things[:i], t.things[i+1:]...)
			t.untrack(th)
			return
		}
	}
}

func (t *Tile) track(th *Thing) {
	if th.IsWide() {
		t.wideCount++
	}
	if th.IsTall() {
		t.tallCount++
	}
	if th.HasDisplacement() {
		t.displacementCount++
	}
	if th.HasLight() {
		t.lightCount++
	}
}

func (t *Tile) untrack(th *Thing) {
	if th.IsWide() {
		t.wideCount--
	}
	if th.IsTall() {
		t.tallCount--
	}
	if th.HasDisplacement() {
		t.displacementCount--
	}
	if th.HasLight() {
		t.lightCount--
	}
}

// Ground returns the ground thing, or nil.
func (t *Tile) Ground() *Thing {
	return t.ground
}

// HasGround reports whether the tile has a ground thing.
func (t *Tile) HasGround() bool {
	return t.ground != nil
}

// IsTopGround reports whether the tile's ground is a top-ground variant.
func (t *Tile) IsTopGround() bool {
	return t.ground != nil && t.ground.IsTopGround()
}

// Things returns the stacked things in bottom-to-top order. The returned
// slice is owned by the tile and must not be mutated.
func (t *Tile) Things() []*Thing {
	return t.things
}

// BottomThings returns the items and creatures drawn in the bottom pass,
// preserving stack order.
func (t *Tile) BottomThings() []*Thing {
	var out []*Thing
	for _, th := range t.things {
		if th.Kind == KindItem || th.Kind == KindCreature {
			out = append(out, th)
		}
	}
	return out
}

// TopThings returns the effects drawn in the top pass.
func (t *Tile) TopThings() []*Thing {
	var out []*Thing
	for _, th := range t.things {
		if th.Kind == KindEffect {
			out = append(out, th)
		}
	}
	return out
}

// Creatures returns the creatures on the tile in stack order.
func (t *Tile) Creatures() []*Thing {
	var out []*Thing
	for _, th := range t.things {
		if th.Kind == KindCreature {
			out = append(out, th)
		}
	}
	return out
}

// IsEmpty reports whether the tile has neither ground nor things.
func (t *Tile) IsEmpty() bool {
	return t.ground == nil && len(t.things) == 0
}

// HasWideThings reports whether anything on the tile is wider than one
// tile.
func (t *Tile) HasWideThings() bool { return t.wideCount > 0 }

// HasTallThings reports whether anything on the tile is taller than one
// tile.
func (t *Tile) HasTallThings() bool { return t.tallCount > 0 }

// HasDisplacement reports whether anything on the tile is drawn offset
// from its cell.
func (t *Tile) HasDisplacement() bool { return t.displacementCount > 0 }

// HasLight reports whether anything on the tile emits light.
func (t *Tile) HasLight() bool { return t.lightCount > 0 }
