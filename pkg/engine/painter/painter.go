// Package painter tracks the current rendering state (transform, clip,
// composition mode, bound texture, opacity, color) as a mutable machine in
// front of a GPU Device. Setters are idempotent: a call with the current
// value issues no GPU state change. The batching layer calls these on every
// draw, so skipping redundant changes is the main performance lever here.
package painter

import (
	"fmt"
	"image/color"

	"github.com/zyedidia/generic/stack"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

const (
	// MaxSavedStates bounds the SaveState/RestoreSavedState stack.
	MaxSavedStates = 10

	// MaxTransformMatrices bounds the independent transform matrix stack.
	MaxTransformMatrices = 100
)

// Painter is the graphics-state controller. It is single-threaded by
// design: one rendering goroutine owns it for the duration of a frame.
type Painter struct {
	device Device

	state      State
	savedState [MaxSavedStates]State
	savedIndex int

	transformStack *stack.Stack[Matrix3]
	transformDepth int

	// boundTextureID shadows the device-side binding so that two distinct
	// Texture handles sharing an ID do not force a rebind.
	boundTextureID uint32
}

// New creates a painter over a device with every field at engine defaults.
func New(device Device) *Painter {
	p := &Painter{
		device:         device,
		state:          defaultState(),
		transformStack: stack.New[Matrix3](),
	}
	return p
}

// State returns a snapshot of the current state.
func (p *Painter) State() State {
	return p.state
}

// Device returns the underlying GPU device.
func (p *Painter) Device() Device {
	return p.device
}

// ResetState restores every tracked field to engine defaults.
func (p *Painter) ResetState() {
	p.ResetColor()
	p.ResetOpacity()
	p.ResetCompositionMode()
	p.ResetBlendEquation()
	p.ResetClipRect()
	p.ResetShader()
	p.ResetTexture()
	p.ResetAlphaWriting()
	p.ResetTransformMatrix()
}

// RefreshState pushes the whole current state to the device. Used after an
// external party touched GPU state behind the painter's back.
func (p *Painter) RefreshState() {
	p.device.SetViewport(p.state.Resolution)
	p.device.SetCompositionMode(p.state.CompositionMode)
	p.device.SetBlendEquation(p.state.BlendEquation)
	p.device.SetClipRect(p.state.ClipRect, p.state.Resolution)
	p.device.BindTexture(p.state.Texture)
	p.device.SetAlphaWriting(p.state.AlphaWriting)
}

// SaveState pushes a snapshot of the current state. Exceeding the stack
// capacity is an unbalanced call pattern and panics.
func (p *Painter) SaveState() {
	if p.savedIndex >= MaxSavedStates {
		panic(fmt.Sprintf("painter: state stack overflow (max %d saved states)", MaxSavedStates))
	}
	p.savedState[p.savedIndex] = p.state
	p.savedIndex++
}

// SaveAndResetState saves the current state and resets to defaults.
func (p *Painter) SaveAndResetState() {
	p.SaveState()
	p.ResetState()
}

// RestoreSavedState pops the most recent snapshot and re-applies it through
// the memoized setters, so only fields that actually changed reach the
// device. Popping below an empty stack panics.
func (p *Painter) RestoreSavedState() {
	if p.savedIndex <= 0 {
		panic("painter: state stack underflow")
	}
	p.savedIndex--
	s := p.savedState[p.savedIndex]

	p.SetResolution(s.Resolution)
	p.SetTransformMatrix(s.TransformMatrix)
	p.SetProjectionMatrix(s.ProjectionMatrix)
	p.SetTextureMatrix(s.TextureMatrix)
	p.SetColor(s.Color)
	p.SetOpacity(s.Opacity)
	p.SetCompositionMode(s.CompositionMode)
	p.SetBlendEquation(s.BlendEquation)
	p.SetClipRect(s.ClipRect)
	p.SetShader(s.Shader)
	p.SetAlphaWriting(s.AlphaWriting)
	p.SetTexture(s.Texture)
}

// SetColor sets the draw color. Color is applied per draw call, so no
// device call is issued here.
func (p *Painter) SetColor(c color.RGBA) {
	p.state.Color = c
}

// ResetColor restores the default white draw color.
func (p *Painter) ResetColor() { p.SetColor(White) }

// SetOpacity sets the global draw opacity in [0, 1].
func (p *Painter) SetOpacity(opacity float64) {
	p.state.Opacity = opacity
}

// ResetOpacity restores full opacity.
func (p *Painter) ResetOpacity() { p.SetOpacity(1.0) }

// SetCompositionMode changes the blend mode, skipping the device call when
// the mode is already current.
func (p *Painter) SetCompositionMode(mode CompositionMode) {
	if p.state.CompositionMode == mode {
		return
	}
	p.state.CompositionMode = mode
	p.device.SetCompositionMode(mode)
}

// ResetCompositionMode restores normal alpha blending.
func (p *Painter) ResetCompositionMode() { p.SetCompositionMode(CompositionNormal) }

// SetBlendEquation changes the blend equation, skipping redundant changes.
func (p *Painter) SetBlendEquation(eq BlendEquation) {
	if p.state.BlendEquation == eq {
		return
	}
	p.state.BlendEquation = eq
	p.device.SetBlendEquation(eq)
}

// ResetBlendEquation restores additive blending.
func (p *Painter) ResetBlendEquation() { p.SetBlendEquation(BlendEquationAdd) }

// SetClipRect changes the scissor rect, skipping redundant changes. An
// invalid rect disables clipping.
func (p *Painter) SetClipRect(clip geom.Rect) {
	if p.state.ClipRect == clip {
		return
	}
	p.state.ClipRect = clip
	p.device.SetClipRect(clip, p.state.Resolution)
}

// ResetClipRect disables clipping.
func (p *Painter) ResetClipRect() { p.SetClipRect(geom.Rect{}) }

// SetTexture binds a texture for subsequent textured draws. Binding is
// skipped when the underlying texture ID is already bound; the texture
// matrix follows the texture.
func (p *Painter) SetTexture(tex Texture) {
	if p.state.Texture == tex {
		return
	}
	p.state.Texture = tex

	var id uint32
	if tex != nil {
		p.SetTextureMatrix(tex.TransformMatrix())
		id = tex.ID()
	}
	if p.boundTextureID != id {
		p.boundTextureID = id
		p.device.BindTexture(tex)
	}
}

// ResetTexture unbinds the current texture.
func (p *Painter) ResetTexture() { p.SetTexture(nil) }

// SetShader sets the active shader program; nil disables it.
func (p *Painter) SetShader(shader Shader) {
	p.state.Shader = shader
}

// ResetShader disables the active shader program.
func (p *Painter) ResetShader() { p.SetShader(nil) }

// SetAlphaWriting toggles writes to the destination alpha channel,
// skipping redundant changes.
func (p *Painter) SetAlphaWriting(enabled bool) {
	if p.state.AlphaWriting == enabled {
		return
	}
	p.state.AlphaWriting = enabled
	p.device.SetAlphaWriting(enabled)
}

// ResetAlphaWriting disables alpha channel writes.
func (p *Painter) ResetAlphaWriting() { p.SetAlphaWriting(false) }

// SetResolution recomputes the orthographic projection matrix mapping
// engine coordinates (origin top-left, +y down) to normalized device
// coordinates (origin center, +y up):
//
//	                                  Projection Matrix
//	 Engine Coord     ------------------------------------------------        NDC
//	 -------------    | 2.0 / width  |      0.0      |      0.0      |   ---------------
//	 |  x  y  1  | *  |     0.0      | -2.0 / height |      0.0      | = |  x'  y'  1  |
//	 -------------    |    -1.0      |      1.0      |      1.0      |   ---------------
//
// Nothing is recomputed when the resolution is unchanged.
func (p *Painter) SetResolution(resolution geom.Size) {
	if p.state.Resolution == resolution {
		return
	}
	p.state.Resolution = resolution

	projection := Matrix3{
		{2.0 / float64(resolution.W), 0, 0},
		{0, -2.0 / float64(resolution.H), 0},
		{-1, 1, 1},
	}
	p.SetProjectionMatrix(projection)
	p.device.SetViewport(resolution)
}

// SetTransformMatrix replaces the current transform.
func (p *Painter) SetTransformMatrix(m Matrix3) {
	p.state.TransformMatrix = m
}

// ResetTransformMatrix restores the identity transform.
func (p *Painter) ResetTransformMatrix() { p.SetTransformMatrix(Identity()) }

// SetProjectionMatrix replaces the current projection.
func (p *Painter) SetProjectionMatrix(m Matrix3) {
	p.state.ProjectionMatrix = m
}

// SetTextureMatrix replaces the current texture matrix.
func (p *Painter) SetTextureMatrix(m Matrix3) {
	p.state.TextureMatrix = m
}

// Scale composes a scale into the current transform. Composed transforms
// apply in the order called, innermost first.
func (p *Painter) Scale(x, y float64) {
	p.SetTransformMatrix(p.state.TransformMatrix.Mul(ScaleMatrix(x, y).Transposed()))
}

// Translate composes a translation into the current transform.
func (p *Painter) Translate(x, y float64) {
	p.SetTransformMatrix(p.state.TransformMatrix.Mul(TranslateMatrix(x, y).Transposed()))
}

// Rotate composes a rotation about the origin into the current transform.
// The angle is in radians.
func (p *Painter) Rotate(angle float64) {
	p.SetTransformMatrix(p.state.TransformMatrix.Mul(RotationMatrix(angle).Transposed()))
}

// RotateAbout rotates about an arbitrary pivot point: translate the pivot
// to the origin, rotate, translate back.
func (p *Painter) RotateAbout(x, y, angle float64) {
	p.Translate(-x, -y)
	p.Rotate(angle)
	p.Translate(x, y)
}

// PushTransformMatrix saves the current transform on a stack independent
// from the state-snapshot stack. Exceeding the soft capacity panics.
func (p *Painter) PushTransformMatrix() {
	if p.transformDepth >= MaxTransformMatrices {
		panic(fmt.Sprintf("painter: transform stack overflow (max %d matrices)", MaxTransformMatrices))
	}
	p.transformStack.Push(p.state.TransformMatrix)
	p.transformDepth++
}

// PopTransformMatrix restores the most recently pushed transform.
func (p *Painter) PopTransformMatrix() {
	if p.transformDepth <= 0 {
		panic("painter: transform stack underflow")
	}
	p.transformDepth--
	p.SetTransformMatrix(p.transformStack.Pop())
}

// TransformDepth returns the number of pushed transform matrices.
func (p *Painter) TransformDepth() int {
	return p.transformDepth
}

// Clear fills the current render target with a color.
func (p *Painter) Clear(c color.RGBA) {
	p.device.Clear(c)
}

// ClearRect fills only the given rect with a color, preserving the
// current clip rect.
func (p *Painter) ClearRect(c color.RGBA, rect geom.Rect) {
	oldClip := p.state.ClipRect
	p.SetClipRect(rect)
	p.device.Clear(c)
	p.SetClipRect(oldClip)
}

// DrawTexturedRect draws src from the given texture into dest under the
// current state.
func (p *Painter) DrawTexturedRect(dest geom.Rect, tex Texture, src geom.Rect) {
	if !dest.IsValid() || tex == nil {
		return
	}
	p.SetTexture(tex)
	p.device.DrawTexturedRect(dest, src, &p.state)
}

// DrawTexture draws the whole texture into dest.
func (p *Painter) DrawTexture(dest geom.Rect, tex Texture) {
	if tex == nil {
		return
	}
	p.DrawTexturedRect(dest, tex, geom.NewRect(geom.Point{}, tex.Size()))
}

// DrawFilledRect fills dest with the current color.
func (p *Painter) DrawFilledRect(dest geom.Rect) {
	if !dest.IsValid() {
		return
	}
	p.device.DrawFilledRect(dest, &p.state)
}
