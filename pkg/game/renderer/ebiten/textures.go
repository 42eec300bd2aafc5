package ebiten

import (
	"hash/fnv"
	"image"
	stdcolor "image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/world"
	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

// applySceneTextures attaches procedural sprites to every scene thing.
// The demo ships no asset files; sprites are flat tiles with a darker
// border so floors, stacking and shading stay readable.
func applySceneTextures(s *scene.Scene) {
	for _, th := range s.Things() {
		th.Appearance.Texture = textureFor(th)
	}
}

func textureFor(th *world.Thing) *Texture {
	size := th.Appearance.Size
	if !size.IsValid() {
		size = geom.Size{W: 1, H: 1}
	}
	w := size.W * world.TilePixels
	h := size.H * world.TilePixels

	switch th.Kind {
	case world.KindGround:
		if th.Appearance.TopGround {
			return newTileTexture(w, h, stdcolor.RGBA{R: 130, G: 130, B: 138, A: 255})
		}
		return newTileTexture(w, h, stdcolor.RGBA{R: 60, G: 120, B: 60, A: 255})
	case world.KindCreature:
		return newTileTexture(w, h, nameColor(th.Name))
	case world.KindMissile:
		return newTileTexture(w, h, stdcolor.RGBA{R: 255, G: 150, B: 40, A: 255})
	case world.KindEffect:
		return newTileTexture(w, h, stdcolor.RGBA{R: 230, G: 230, B: 120, A: 255})
	default:
		return newTileTexture(w, h, stdcolor.RGBA{R: 140, G: 100, B: 60, A: 255})
	}
}

// newCrosshairTexture builds the hover crosshair: a one-tile outline.
func newCrosshairTexture() *Texture {
	const edge = 2
	size := world.TilePixels
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	white := stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < edge || y < edge || x >= size-edge || y >= size-edge {
				img.SetRGBA(x, y, white)
			}
		}
	}
	return NewTexture(eb.NewImageFromImage(img))
}

func newTileTexture(w, h int, fill stdcolor.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	border := stdcolor.RGBA{
		R: fill.R / 2,
		G: fill.G / 2,
		B: fill.B / 2,
		A: 255,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return NewTexture(eb.NewImageFromImage(img))
}

func nameColor(name string) stdcolor.RGBA {
	hash := fnv.New32a()
	hash.Write([]byte(name))
	sum := hash.Sum32()
	return stdcolor.RGBA{
		R: 100 + uint8(sum)%156,
		G: 100 + uint8(sum>>8)%156,
		B: 100 + uint8(sum>>16)%156,
		A: 255,
	}
}
