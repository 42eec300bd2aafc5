package ebiten

import (
	"bytes"
	"fmt"
	stdcolor "image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

const overlayFontSize = 12

// TextPainter draws overlay text with the bundled Go Regular face. It
// draws through the device so text lands in whatever draw-group buffer is
// currently targeted.
type TextPainter struct {
	device *Device
	face   text.Face
}

// NewTextPainter loads the overlay font.
func NewTextPainter(device *Device) (*TextPainter, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load overlay font: %w", err)
	}
	return &TextPainter{
		device: device,
		face:   &text.GoTextFace{Source: source, Size: overlayFontSize},
	}, nil
}

// Measure returns the rendered size of a string.
func (tp *TextPainter) Measure(s string) geom.Size {
	w, h := text.Measure(s, tp.face, 0)
	return geom.Size{W: int(w), H: int(h)}
}

// Draw renders a string with its top-left corner at the given point.
func (tp *TextPainter) Draw(s string, topLeft geom.Point, c stdcolor.RGBA) {
	target := tp.device.renderTarget()
	if target == nil {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(topLeft.X), float64(topLeft.Y))
	opts.ColorScale.ScaleWithColor(c)
	text.Draw(target, s, tp.face, opts)
}
