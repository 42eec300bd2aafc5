package ebiten

import (
	"image"
	stdcolor "image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
)

// whiteSubImage backs filled-rect draws. The 3x3/center-pixel split keeps
// bilinear sampling away from the image edge.
var (
	whiteImage    = eb.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
)

func init() {
	whiteImage.Fill(stdcolor.White)
}

// Device implements painter.Device and drawpool.Backend on top of ebiten.
// Draws go to the current offscreen buffer, or to the frame's screen image
// when no buffer is targeted.
type Device struct {
	screen *eb.Image
	target *eb.Image

	blend    eb.Blend
	mode     painter.CompositionMode
	equation painter.BlendEquation

	clip      geom.Rect
	clipValid bool

	bound        *Texture
	alphaWriting bool
	viewport     geom.Size
}

// NewDevice creates an ebiten render device.
func NewDevice() *Device {
	d := &Device{}
	d.rebuildBlend()
	return d
}

// SetScreen points draws at the frame's screen image. Called once at the
// start of every Draw callback; the image is only valid for that frame.
func (d *Device) SetScreen(screen *eb.Image) {
	d.screen = screen
}

func (d *Device) renderTarget() *eb.Image {
	target := d.target
	if target == nil {
		target = d.screen
	}
	if target == nil {
		return nil
	}
	if d.clipValid {
		clipped := image.Rect(d.clip.X, d.clip.Y, d.clip.X+d.clip.W, d.clip.Y+d.clip.H)
		return target.SubImage(clipped).(*eb.Image)
	}
	return target
}

func compositionBlendFactors(mode painter.CompositionMode) (src, dst eb.BlendFactor) {
	switch mode {
	case painter.CompositionMultiply:
		return eb.BlendFactorDestinationColor, eb.BlendFactorOneMinusSourceAlpha
	case painter.CompositionAdd:
		return eb.BlendFactorOne, eb.BlendFactorOne
	case painter.CompositionReplace:
		return eb.BlendFactorOne, eb.BlendFactorZero
	case painter.CompositionDestBlending:
		return eb.BlendFactorOneMinusDestinationAlpha, eb.BlendFactorDestinationAlpha
	case painter.CompositionLight:
		return eb.BlendFactorZero, eb.BlendFactorSourceColor
	default:
		return eb.BlendFactorOne, eb.BlendFactorOneMinusSourceAlpha
	}
}

func blendOperation(eq painter.BlendEquation) eb.BlendOperation {
	switch eq {
	case painter.BlendEquationMax:
		return eb.BlendOperationMax
	case painter.BlendEquationMin:
		return eb.BlendOperationMin
	case painter.BlendEquationSubtract:
		return eb.BlendOperationSubtract
	case painter.BlendEquationReverseSubtract:
		return eb.BlendOperationReverseSubtract
	default:
		return eb.BlendOperationAdd
	}
}

func (d *Device) rebuildBlend() {
	src, dst := compositionBlendFactors(d.mode)
	op := blendOperation(d.equation)
	d.blend = eb.Blend{
		BlendFactorSourceRGB:        src,
		BlendFactorSourceAlpha:      src,
		BlendFactorDestinationRGB:   dst,
		BlendFactorDestinationAlpha: dst,
		BlendOperationRGB:           op,
		BlendOperationAlpha:         op,
	}
}

// SetCompositionMode implements painter.Device.
func (d *Device) SetCompositionMode(mode painter.CompositionMode) {
	d.mode = mode
	d.rebuildBlend()
}

// SetBlendEquation implements painter.Device.
func (d *Device) SetBlendEquation(eq painter.BlendEquation) {
	d.equation = eq
	d.rebuildBlend()
}

// SetClipRect implements painter.Device. Clipping is realized through a
// sub-image render target rather than a scissor, so the resolution is
// unused here.
func (d *Device) SetClipRect(clip geom.Rect, _ geom.Size) {
	d.clip = clip
	d.clipValid = clip.IsValid()
}

// BindTexture implements painter.Device.
func (d *Device) BindTexture(tex painter.Texture) {
	if tex == nil {
		d.bound = nil
		return
	}
	d.bound, _ = tex.(*Texture)
}

// SetAlphaWriting implements painter.Device. Ebiten has no channel write
// mask; the flag is recorded so state round-trips, nothing more.
func (d *Device) SetAlphaWriting(enabled bool) {
	d.alphaWriting = enabled
}

// SetViewport implements painter.Device.
func (d *Device) SetViewport(size geom.Size) {
	d.viewport = size
}

// Clear implements painter.Device.
func (d *Device) Clear(c stdcolor.RGBA) {
	if target := d.renderTarget(); target != nil {
		target.Fill(c)
	}
}

func (d *Device) geoM(dest, src geom.Rect, state *painter.State) eb.GeoM {
	var g eb.GeoM
	if src.W > 0 && src.H > 0 {
		g.Scale(float64(dest.W)/float64(src.W), float64(dest.H)/float64(src.H))
	}
	g.Translate(float64(dest.X), float64(dest.Y))
	if !state.TransformMatrix.IsIdentity() {
		m := state.TransformMatrix
		var t eb.GeoM
		t.SetElement(0, 0, m[0][0])
		t.SetElement(0, 1, m[1][0])
		t.SetElement(0, 2, m[2][0])
		t.SetElement(1, 0, m[0][1])
		t.SetElement(1, 1, m[1][1])
		t.SetElement(1, 2, m[2][1])
		g.Concat(t)
	}
	return g
}

func colorScale(state *painter.State) eb.ColorScale {
	var cs eb.ColorScale
	cs.ScaleWithColor(state.Color)
	cs.ScaleAlpha(float32(state.Opacity))
	return cs
}

// DrawTexturedRect implements painter.Device.
func (d *Device) DrawTexturedRect(dest, src geom.Rect, state *painter.State) {
	target := d.renderTarget()
	if target == nil || d.bound == nil {
		return
	}
	srcImage := d.bound.img.SubImage(image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H)).(*eb.Image)

	opts := &eb.DrawImageOptions{
		Blend:      d.blend,
		Filter:     eb.FilterNearest,
		ColorScale: colorScale(state),
	}
	opts.GeoM = d.geoM(dest, src, state)
	target.DrawImage(srcImage, opts)
}

// DrawFilledRect implements painter.Device.
func (d *Device) DrawFilledRect(dest geom.Rect, state *painter.State) {
	target := d.renderTarget()
	if target == nil {
		return
	}
	opts := &eb.DrawImageOptions{
		Blend:      d.blend,
		Filter:     eb.FilterNearest,
		ColorScale: colorScale(state),
	}
	opts.GeoM = d.geoM(dest, geom.Rect{X: 0, Y: 0, W: 1, H: 1}, state)
	target.DrawImage(whiteSubImage, opts)
}

type buffer struct {
	img     *eb.Image
	texture *Texture
}

func (b *buffer) Size() geom.Size {
	bounds := b.img.Bounds()
	return geom.Size{W: bounds.Dx(), H: bounds.Dy()}
}

func (b *buffer) Clear() {
	b.img.Clear()
}

func (b *buffer) Texture() painter.Texture {
	return b.texture
}

// NewBuffer implements drawpool.Backend.
func (d *Device) NewBuffer(size geom.Size) drawpool.Buffer {
	img := eb.NewImage(max(size.W, 1), max(size.H, 1))
	return &buffer{img: img, texture: NewTexture(img)}
}

// SetTarget implements drawpool.Backend.
func (d *Device) SetTarget(buf drawpool.Buffer) {
	if buf == nil {
		d.target = nil
		return
	}
	d.target = buf.(*buffer).img
}
