package renderer

import (
	"fmt"
	"sort"

	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

// Options configures a renderer before it starts.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Renderer defines the interface for rendering backends.
// Implementations include the ebiten window and the terminal debug view.
type Renderer interface {
	// Init prepares the backend (window, fonts, colors).
	Init(opts Options) error

	// Run drives the frame loop over the scene until the user quits.
	Run(s *scene.Scene) error

	// Shutdown releases backend resources.
	Shutdown()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

var factories = map[string]func() Renderer{}

// Register makes a backend constructible by name. Called from backend
// package init functions.
func Register(name string, factory func() Renderer) {
	factories[name] = factory
}

// Create instantiates a registered backend by name.
func Create(name string) (Renderer, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer %q (available: %v)", name, Names())
	}
	return factory(), nil
}

// Names lists the registered backends.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
