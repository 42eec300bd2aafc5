// Package drawpool batches draw calls into logical draw groups (map,
// light, creature info, text). Each group owns an offscreen buffer keyed
// by its destination/source rects; the buffer content is only rebuilt when
// the key changes or the group was explicitly marked dirty, and is blitted
// to the screen every frame either way.
package drawpool

import (
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
)

// Group identifies a logical draw bucket.
type Group int

// Draw groups, blitted in this order within a frame.
const (
	GroupMap Group = iota
	GroupLight
	GroupCreatureInfo
	GroupStaticText
	GroupDynamicText

	numGroups
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupMap:
		return "map"
	case GroupLight:
		return "light"
	case GroupCreatureInfo:
		return "creature-info"
	case GroupStaticText:
		return "static-text"
	case GroupDynamicText:
		return "dynamic-text"
	default:
		return "unknown"
	}
}

// Buffer is an offscreen render target owned by a draw group.
type Buffer interface {
	Size() geom.Size
	Clear()
	Texture() painter.Texture
}

// Backend creates buffers and switches the active render target. The
// ebiten device implements it in production; tests use a headless one.
type Backend interface {
	NewBuffer(size geom.Size) Buffer

	// SetTarget redirects subsequent draws to a buffer, or back to the
	// screen when nil.
	SetTarget(buf Buffer)
}

type groupState struct {
	buffer Buffer
	size   geom.Size
	dest   geom.Rect
	src    geom.Rect
	keyed  bool
	dirty  bool
}

// Pool owns one buffer per draw group.
type Pool struct {
	painter *painter.Painter
	backend Backend
	groups  [numGroups]groupState
	active  Group
	drawing bool
}

// New creates a pool over a painter and its backend.
func New(p *painter.Painter, backend Backend) *Pool {
	pool := &Pool{painter: p, backend: backend, active: -1}
	for g := range pool.groups {
		pool.groups[g].dirty = true
	}
	return pool
}

// MarkDirty forces the group to rebuild on the next DrawUp, regardless of
// its cache key. Called when the underlying scene content changed.
func (p *Pool) MarkDirty(g Group) {
	p.groups[g].dirty = true
}

// DrawUp begins a group's frame. It reports whether the group's buffer
// must be rebuilt: true on a cache miss (size or rects changed, or the
// group was marked dirty), false on a hit. On a rebuild the group's buffer
// becomes the active render target, cleared; the caller then issues its
// draw calls and finishes with Flush. On a hit the caller skips straight
// to Flush.
func (p *Pool) DrawUp(g Group, size geom.Size, dest, src geom.Rect) bool {
	if p.drawing {
		panic("drawpool: DrawUp while another group is drawing")
	}
	gs := &p.groups[g]

	hit := gs.keyed && gs.size == size && gs.dest == dest && gs.src == src && !gs.dirty
	gs.size = size
	gs.dest = dest
	gs.src = src
	gs.keyed = true
	gs.dirty = false
	if hit {
		return false
	}

	if gs.buffer == nil || gs.buffer.Size() != size {
		gs.buffer = p.backend.NewBuffer(size)
	}
	gs.buffer.Clear()
	p.backend.SetTarget(gs.buffer)
	p.active = g
	p.drawing = true
	return true
}

// Flush ends a group's frame: the render target returns to the screen and
// the group's buffer is blitted from its source rect to its destination
// rect under the painter's current state.
func (p *Pool) Flush(g Group) {
	gs := &p.groups[g]
	if p.drawing {
		if p.active != g {
			panic("drawpool: Flush of a group that is not drawing")
		}
		p.backend.SetTarget(nil)
		p.active = -1
		p.drawing = false
	}
	if gs.buffer == nil {
		return
	}
	dest := gs.dest
	src := gs.src
	if !dest.IsValid() {
		dest = geom.NewRect(geom.Point{}, gs.size)
	}
	if !src.IsValid() {
		src = geom.NewRect(geom.Point{}, gs.buffer.Size())
	}
	p.painter.DrawTexturedRect(dest, gs.buffer.Texture(), src)
}
