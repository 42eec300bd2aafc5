package painter

import (
	"image/color"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

// White is the default draw color.
var White = color.RGBA{255, 255, 255, 255}

// State is an immutable snapshot of every field the painter tracks. It is
// pushed and popped as a unit by SaveState/RestoreSavedState.
type State struct {
	Resolution       geom.Size
	TransformMatrix  Matrix3
	ProjectionMatrix Matrix3
	TextureMatrix    Matrix3
	Color            color.RGBA
	Opacity          float64
	CompositionMode  CompositionMode
	BlendEquation    BlendEquation
	ClipRect         geom.Rect
	Texture          Texture
	Shader           Shader
	AlphaWriting     bool
}

// defaultState returns the engine defaults every field resets to.
func defaultState() State {
	return State{
		TransformMatrix:  Identity(),
		ProjectionMatrix: Identity(),
		TextureMatrix:    Identity(),
		Color:            White,
		Opacity:          1.0,
		CompositionMode:  CompositionNormal,
		BlendEquation:    BlendEquationAdd,
	}
}
