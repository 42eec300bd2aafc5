package world

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
)

// ThingKind tags the variant of a Thing. Rendering dispatches on the kind
// through a small closed set of draw paths instead of virtual dispatch.
type ThingKind uint8

// Thing kinds.
const (
	KindGround ThingKind = iota
	KindItem
	KindCreature
	KindEffect
	KindMissile
)

// String returns the kind name.
func (k ThingKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindItem:
		return "item"
	case KindCreature:
		return "creature"
	case KindEffect:
		return "effect"
	case KindMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Appearance describes how a thing is drawn. Size is the sprite footprint
// in tiles; anything wider or taller than 1x1 can render outside its own
// cell and affects viewport-edge culling.
type Appearance struct {
	Texture painter.Texture

	// Size is the footprint in tiles (1x1 for most things).
	Size geom.Size

	// Displacement shifts the sprite by pixels relative to the tile's
	// top-left corner.
	Displacement geom.Point

	// TopGround marks a ground variant that visually extends upward,
	// requiring a one-tile offset when shading the floor below.
	TopGround bool

	// Translucent grounds do not occlude (or shade) the floor below.
	Translucent bool
}

// Thing is the tagged variant behind everything drawable on a tile:
// grounds, items, creatures, effects and missiles share this one struct,
// with per-kind fields used only for their kind.
type Thing struct {
	Kind       ThingKind
	Position   Position
	Appearance Appearance

	// Light is non-nil when the thing emits light.
	Light *Light

	// Creature fields.
	Name          string
	HealthPercent int
	ManaPercent   int
	Direction     Direction

	// Missile fields: a missile flies from Origin to Destination;
	// Progress advances from 0 to 1.
	Origin      Position
	Destination Position
	Progress    float64
}

// IsGround reports whether the thing is a ground variant.
func (t *Thing) IsGround() bool { return t.Kind == KindGround }

// IsCreature reports whether the thing is a creature.
func (t *Thing) IsCreature() bool { return t.Kind == KindCreature }

// IsMissile reports whether the thing is a missile.
func (t *Thing) IsMissile() bool { return t.Kind == KindMissile }

// IsEffect reports whether the thing is a transient effect.
func (t *Thing) IsEffect() bool { return t.Kind == KindEffect }

// HasLight reports whether the thing emits light.
func (t *Thing) HasLight() bool {
	return t.Light != nil && t.Light.HasLight()
}

// IsWide reports whether the sprite extends beyond one tile horizontally.
func (t *Thing) IsWide() bool {
	return t.Appearance.Size.W > 1
}

// IsTall reports whether the sprite extends beyond one tile vertically.
func (t *Thing) IsTall() bool {
	return t.Appearance.Size.H > 1
}

// HasDisplacement reports whether the sprite is drawn offset from its
// cell.
func (t *Thing) HasDisplacement() bool {
	return t.Appearance.Displacement != (geom.Point{})
}

// IsTopGround reports whether the thing is a top-ground variant.
func (t *Thing) IsTopGround() bool {
	return t.Kind == KindGround && t.Appearance.TopGround
}

// IsTranslucent reports whether the thing is translucent.
func (t *Thing) IsTranslucent() bool {
	return t.Appearance.Translucent
}
