package painter

import (
	"image/color"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

// CompositionMode selects how source pixels combine with the destination.
type CompositionMode int

// Composition modes, in the order the engine defines them.
const (
	CompositionNormal CompositionMode = iota
	CompositionMultiply
	CompositionAdd
	CompositionReplace
	CompositionDestBlending
	CompositionLight
)

// String returns the composition mode name.
func (m CompositionMode) String() string {
	switch m {
	case CompositionNormal:
		return "Normal"
	case CompositionMultiply:
		return "Multiply"
	case CompositionAdd:
		return "Add"
	case CompositionReplace:
		return "Replace"
	case CompositionDestBlending:
		return "DestBlending"
	case CompositionLight:
		return "Light"
	default:
		return "Unknown"
	}
}

// BlendEquation selects the blend operator applied to the scaled source
// and destination terms.
type BlendEquation int

// Blend equations.
const (
	BlendEquationAdd BlendEquation = iota
	BlendEquationMax
	BlendEquationMin
	BlendEquationSubtract
	BlendEquationReverseSubtract
)

// Texture is an opaque GPU texture handle. Render code never owns the
// underlying resource; the asset store does.
type Texture interface {
	// ID uniquely identifies the underlying GPU texture. Binding is
	// skipped when the currently bound ID matches.
	ID() uint32

	// Size returns the texture dimensions in pixels.
	Size() geom.Size

	// TransformMatrix maps texture pixel coordinates to normalized
	// texture coordinates.
	TransformMatrix() Matrix3
}

// Shader is an opaque GPU shader program handle with named uniforms.
type Shader interface {
	Bind()
	SetUniformValue(name string, values ...float64)
}

// Device is the GPU abstraction beneath the painter. The painter memoizes
// every Set call; a Device only sees real state changes. Draw calls receive
// the full current state so immediate-mode backends can build their own
// per-call parameters from it.
type Device interface {
	SetCompositionMode(mode CompositionMode)
	SetBlendEquation(eq BlendEquation)

	// SetClipRect applies a scissor rect. An invalid rect disables
	// clipping. The resolution is passed along because scissor origin
	// conventions differ between backends.
	SetClipRect(clip geom.Rect, resolution geom.Size)

	// BindTexture binds a texture, or unbinds with nil.
	BindTexture(tex Texture)

	SetAlphaWriting(enabled bool)
	SetViewport(size geom.Size)

	// Clear fills the current render target with a color.
	Clear(c color.RGBA)

	// DrawTexturedRect draws src from the currently bound texture into
	// dest under the given state.
	DrawTexturedRect(dest, src geom.Rect, state *State)

	// DrawFilledRect fills dest with the state color under the given
	// state.
	DrawFilledRect(dest geom.Rect, state *State)
}
