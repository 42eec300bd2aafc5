// Package terminal sizes the text-mode viewer. The map grid and its
// status line are laid out against whatever the terminal reports; a
// redirected stdout falls back to a classic 80x24.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the terminal dimensions in character cells.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
