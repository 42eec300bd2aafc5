// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile.
func tileSymbol(tile *world.Tile) rune {
	if tile == nil || tile.IsEmpty() {
		return ' '
	}
	switch {
	case len(tile.Creatures()) > 0:
		return 'c'
	case len(tile.TopThings()) > 0:
		return '*'
	case tile.HasLight():
		return 'L'
	case len(tile.BottomThings()) > 0:
		return 'i'
	case tile.IsTopGround():
		return '^'
	case tile.HasGround():
		return '.'
	default:
		return '?'
	}
}

// writeFloorGrid writes one floor of the map to w with the camera overlay.
func writeFloorGrid(w io.Writer, m *world.Map, z int, camera world.Position) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			pos := world.Position{X: x, Y: y, Z: z}
			if pos == camera {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(m.GetTile(pos)))
		}
		fmt.Fprintln(w)
	}
}

func floorHasContent(m *world.Map, z int) bool {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile := m.GetTile(world.Position{X: x, Y: y, Z: z})
			if tile != nil && !tile.IsEmpty() {
				return true
			}
		}
	}
	return len(m.FloorMissiles(z)) > 0
}

// WriteMapDump writes a full debug dump to w: metadata, legend and one
// grid per non-empty floor, plus missiles and floating texts. Format is
// human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, m *world.Map, camera world.Position) error {
	if m == nil {
		return fmt.Errorf("no map")
	}

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (tiles, missiles, texts) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y,z (0-based, z=floor, %d=sea level)\n", world.SeaFloor)
	fmt.Fprintf(w, "camera: %d,%d,%d\n", camera.X, camera.Y, camera.Z)
	fmt.Fprintf(w, "generation: %d\n", m.Generation())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintln(w, ". = ground  ^ = top ground  c = creature  i = item  * = effect  L = light source  @ = camera  space = void")
	fmt.Fprintln(w, "")

	for z := 0; z <= world.MaxFloor; z++ {
		if !floorHasContent(m, z) {
			continue
		}
		fmt.Fprintf(w, "--- Floor %d ---\n", z)
		writeFloorGrid(w, m, z, camera)
		for _, missile := range m.FloorMissiles(z) {
			fmt.Fprintf(w, "missile: %d,%d -> %d,%d progress %.2f\n",
				missile.Origin.X, missile.Origin.Y,
				missile.Destination.X, missile.Destination.Y,
				missile.Progress)
		}
		fmt.Fprintln(w, "")
	}

	if texts := m.StaticTexts(); len(texts) > 0 {
		fmt.Fprintln(w, "--- Static texts ---")
		for _, st := range texts {
			fmt.Fprintf(w, "%d,%d,%d: %q\n", st.Position.X, st.Position.Y, st.Position.Z, st.Text)
		}
		fmt.Fprintln(w, "")
	}
	if texts := m.AnimatedTexts(); len(texts) > 0 {
		fmt.Fprintln(w, "--- Animated texts ---")
		for _, at := range texts {
			fmt.Fprintf(w, "%d,%d,%d: %q\n", at.Position.X, at.Position.Y, at.Position.Z, at.Text)
		}
		fmt.Fprintln(w, "")
	}
	return nil
}

// DumpMapToFile writes the debug dump to map.txt in the working directory
// and returns the absolute path written.
func DumpMapToFile(m *world.Map, camera world.Position) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, m, camera); err != nil {
		return "", err
	}
	return absPath, nil
}
