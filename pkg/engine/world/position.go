// Package world provides the tile-map data model: positions, floors,
// things (the tagged variant behind everything drawable on a tile), tiles
// and the map store. Render code holds only non-owning references into
// this model, valid for the duration of a frame.
package world

import "fmt"

// Floor/map bounds. Lower z is visually higher and nearer the camera;
// floors in [0, SeaFloor] are above ground, floors in (SeaFloor, MaxFloor]
// are underground.
const (
	MaxFloor = 15
	SeaFloor = 7

	// TilePixels is the unscaled tile size in framebuffer pixels.
	TilePixels = 32

	// AwareUndergroundRange bounds how many floors are visible around
	// the camera when it is underground.
	AwareUndergroundRange = 2
)

// Position is an integer (x, y, z) map coordinate; z is the floor index.
type Position struct {
	X int
	Y int
	Z int
}

// InvalidPosition is the sentinel for "no position yet" (no camera, no
// hover target).
var InvalidPosition = Position{X: -1, Y: -1, Z: -1}

// IsValid reports whether the position lies inside the engine's
// coordinate bounds.
func (p Position) IsValid() bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 && p.Z <= MaxFloor
}

// String formats the position for logs.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Translated returns the position moved by (dx, dy) on the same floor.
func (p Position) Translated(dx, dy int) Position {
	return Position{p.X + dx, p.Y + dy, p.Z}
}

// TranslatedToDirection returns the neighbouring position in a direction.
func (p Position) TranslatedToDirection(dir Direction) Position {
	dx, dy := dir.Delta()
	return p.Translated(dx, dy)
}

// TranslatedToDirections returns the neighbouring positions in the given
// directions, in order.
func (p Position) TranslatedToDirections(dirs []Direction) []Position {
	out := make([]Position, 0, len(dirs))
	for _, dir := range dirs {
		out = append(out, p.TranslatedToDirection(dir))
	}
	return out
}

// CoveredUp returns the position n floors up whose screen projection
// coincides with this one: going up a floor shifts the map diagonally by
// one tile per floor.
func (p Position) CoveredUp(n int) Position {
	return Position{p.X + n, p.Y + n, p.Z - n}
}

// CoveredDown is the inverse of CoveredUp.
func (p Position) CoveredDown(n int) Position {
	return Position{p.X - n, p.Y - n, p.Z + n}
}

// IsUnderground reports whether the floor is below sea level.
func (p Position) IsUnderground() bool {
	return p.Z > SeaFloor
}
