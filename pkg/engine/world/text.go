package world

import (
	"image/color"
	"time"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
)

// MessageMode classifies a static text. Texts with MessageNone are pinned
// to their floor; anything else also shows from other floors.
type MessageMode uint8

// Message modes.
const (
	MessageNone MessageMode = iota
	MessageSay
	MessageYell
	MessageStatus
)

// StaticText is a floating text anchored to a map position (speech,
// status messages).
type StaticText struct {
	Position Position
	Text     string
	Mode     MessageMode
	Color    color.RGBA
}

// AnimatedTextDuration is how long an animated text lives while drifting
// upward.
const AnimatedTextDuration = 1200 * time.Millisecond

// AnimatedText is a short-lived floating text (damage numbers, experience)
// that drifts upward and fades out.
type AnimatedText struct {
	Position  Position
	Text      string
	Color     color.RGBA
	StartedAt time.Time
}

// Expired reports whether the text's lifetime has elapsed.
func (a *AnimatedText) Expired(now time.Time) bool {
	return now.Sub(a.StartedAt) >= AnimatedTextDuration
}

// Offset returns the upward pixel drift at the given time.
func (a *AnimatedText) Offset(now time.Time) geom.Point {
	elapsed := now.Sub(a.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > AnimatedTextDuration {
		elapsed = AnimatedTextDuration
	}
	// Drift one tile upward over the full lifetime.
	return geom.Point{Y: -int(float64(TilePixels) * float64(elapsed) / float64(AnimatedTextDuration))}
}
