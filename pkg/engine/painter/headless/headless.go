// Package headless provides an in-memory painter device and drawpool
// backend for tests and benchmarks. It records every GPU call instead of
// issuing it, so tests can assert on call counts and ordering without a
// window or GPU context.
package headless

import (
	"fmt"
	"image/color"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
)

// Device records painter GPU calls.
type Device struct {
	// Calls is the ordered log of every device call, one short
	// description per call.
	Calls []string

	// Per-call counters.
	CompositionModeChanges int
	BlendEquationChanges   int
	ClipRectChanges        int
	TextureBinds           int
	AlphaWritingChanges    int
	ViewportChanges        int
	Clears                 int
	TexturedRectDraws      int
	FilledRectDraws        int

	target *Buffer
}

// NewDevice creates an empty recording device.
func NewDevice() *Device {
	return &Device{}
}

// Reset clears the call log and all counters.
func (d *Device) Reset() {
	*d = Device{}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// SetCompositionMode implements painter.Device.
func (d *Device) SetCompositionMode(mode painter.CompositionMode) {
	d.CompositionModeChanges++
	d.record("composition %s", mode)
}

// SetBlendEquation implements painter.Device.
func (d *Device) SetBlendEquation(eq painter.BlendEquation) {
	d.BlendEquationChanges++
	d.record("blend-equation %d", eq)
}

// SetClipRect implements painter.Device.
func (d *Device) SetClipRect(clip geom.Rect, resolution geom.Size) {
	d.ClipRectChanges++
	d.record("clip %v", clip)
}

// BindTexture implements painter.Device.
func (d *Device) BindTexture(tex painter.Texture) {
	d.TextureBinds++
	if tex == nil {
		d.record("bind-texture none")
	} else {
		d.record("bind-texture %d", tex.ID())
	}
}

// SetAlphaWriting implements painter.Device.
func (d *Device) SetAlphaWriting(enabled bool) {
	d.AlphaWritingChanges++
	d.record("alpha-writing %v", enabled)
}

// SetViewport implements painter.Device.
func (d *Device) SetViewport(size geom.Size) {
	d.ViewportChanges++
	d.record("viewport %dx%d", size.W, size.H)
}

// Clear implements painter.Device.
func (d *Device) Clear(c color.RGBA) {
	d.Clears++
	d.record("clear")
}

// DrawTexturedRect implements painter.Device.
func (d *Device) DrawTexturedRect(dest, src geom.Rect, state *painter.State) {
	d.TexturedRectDraws++
	d.record("draw-textured %v <- %v", dest, src)
}

// DrawFilledRect implements painter.Device.
func (d *Device) DrawFilledRect(dest geom.Rect, state *painter.State) {
	d.FilledRectDraws++
	d.record("draw-filled %v", dest)
}

// Buffer is an offscreen render target stub. It carries a texture handle
// so blits keep flowing through the painter.
type Buffer struct {
	size    geom.Size
	texture *Texture
	clears  int
}

// Size implements drawpool.Buffer.
func (b *Buffer) Size() geom.Size { return b.size }

// Clear implements drawpool.Buffer.
func (b *Buffer) Clear() { b.clears++ }

// Texture implements drawpool.Buffer.
func (b *Buffer) Texture() painter.Texture { return b.texture }

// NewBuffer implements drawpool.Backend.
func (d *Device) NewBuffer(size geom.Size) drawpool.Buffer {
	return &Buffer{size: size, texture: NewTexture(size)}
}

// SetTarget implements drawpool.Backend.
func (d *Device) SetTarget(buf drawpool.Buffer) {
	if buf == nil {
		d.target = nil
		d.record("target screen")
		return
	}
	b := buf.(*Buffer)
	d.target = b
	d.record("target buffer %d", b.texture.ID())
}

var nextTextureID uint32

// Texture is a fake texture handle with a unique ID.
type Texture struct {
	id   uint32
	size geom.Size
}

// NewTexture creates a fake texture of the given size.
func NewTexture(size geom.Size) *Texture {
	nextTextureID++
	return &Texture{id: nextTextureID, size: size}
}

// ID implements painter.Texture.
func (t *Texture) ID() uint32 { return t.id }

// Size implements painter.Texture.
func (t *Texture) Size() geom.Size { return t.size }

// TransformMatrix implements painter.Texture.
func (t *Texture) TransformMatrix() painter.Matrix3 {
	if !t.size.IsValid() {
		return painter.Identity()
	}
	return painter.ScaleMatrix(1.0/float64(t.size.W), 1.0/float64(t.size.H))
}
