package ebiten

import (
	"sync/atomic"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
)

var nextTextureID uint32

// Texture wraps an ebiten image as a painter texture.
type Texture struct {
	id  uint32
	img *eb.Image
}

// NewTexture wraps an existing ebiten image.
func NewTexture(img *eb.Image) *Texture {
	return &Texture{id: atomic.AddUint32(&nextTextureID, 1), img: img}
}

// ID implements painter.Texture.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size implements painter.Texture.
func (t *Texture) Size() geom.Size {
	bounds := t.img.Bounds()
	return geom.Size{W: bounds.Dx(), H: bounds.Dy()}
}

// TransformMatrix implements painter.Texture.
func (t *Texture) TransformMatrix() painter.Matrix3 {
	size := t.Size()
	return painter.ScaleMatrix(1/float64(size.W), 1/float64(size.H))
}

// Image returns the wrapped ebiten image.
func (t *Texture) Image() *eb.Image {
	return t.img
}
