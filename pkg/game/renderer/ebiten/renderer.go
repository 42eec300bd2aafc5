// Package ebiten is the windowed rendering backend.
package ebiten

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/game/mapview"
	"github.com/Hugo0x1337/otclient-1/pkg/game/renderer"
	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

const (
	defaultWidth  = 960
	defaultHeight = 640
)

func init() {
	renderer.Register("ebiten", func() renderer.Renderer { return New() })
}

// Renderer runs the client in an ebiten window.
type Renderer struct {
	opts renderer.Options
	log  *logrus.Entry
}

// New creates the windowed renderer.
func New() *Renderer {
	return &Renderer{log: logrus.WithField("renderer", "ebiten")}
}

// Init sizes and titles the window.
func (r *Renderer) Init(opts renderer.Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Title == "" {
		opts.Title = gotext.Get("Map Viewer")
	}
	r.opts = opts

	eb.SetWindowSize(opts.Width, opts.Height)
	eb.SetWindowTitle(opts.Title)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	return nil
}

// Run builds the render pipeline over the scene and blocks until the
// window closes.
func (r *Renderer) Run(s *scene.Scene) error {
	device := NewDevice()
	p := painter.New(device)
	pool := drawpool.New(p, device)
	view := mapview.New(s.Map, p, pool)

	textPainter, err := NewTextPainter(device)
	if err != nil {
		return err
	}
	view.SetTextPainter(textPainter)
	view.SetCrosshair(newCrosshairTexture(), nil)
	applySceneTextures(s)

	r.log.WithFields(logrus.Fields{
		"width":  r.opts.Width,
		"height": r.opts.Height,
	}).Info("starting render loop")

	loop := &gameLoop{
		scene:   s,
		device:  device,
		painter: p,
		pool:    pool,
		view:    view,
		width:   r.opts.Width,
		height:  r.opts.Height,
	}
	if err := eb.RunGame(loop); err != nil {
		return fmt.Errorf("render loop: %w", err)
	}
	return nil
}

// Shutdown logs the teardown; ebiten frees its resources with the window.
func (r *Renderer) Shutdown() {
	r.log.Info("renderer stopped")
}
