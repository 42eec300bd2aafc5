package drawpool_test

import (
	"testing"

	"github.com/Hugo0x1337/otclient-1/pkg/engine/drawpool"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/geom"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter"
	"github.com/Hugo0x1337/otclient-1/pkg/engine/painter/headless"
)

func newPool(t *testing.T) (*drawpool.Pool, *headless.Device) {
	t.Helper()
	device := headless.NewDevice()
	return drawpool.New(painter.New(device), device), device
}

var (
	poolSize = geom.Size{W: 128, H: 128}
	poolDest = geom.Rect{X: 0, Y: 0, W: 64, H: 64}
	poolSrc  = geom.Rect{X: 16, Y: 16, W: 96, H: 96}
)

func TestDrawUpFirstUseIsMiss(t *testing.T) {
	pool, _ := newPool(t)
	if !pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc) {
		t.Fatal("first DrawUp reported a cache hit")
	}
	pool.Flush(drawpool.GroupMap)
}

func TestDrawUpSameKeyIsHit(t *testing.T) {
	pool, _ := newPool(t)
	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)

	if pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc) {
		t.Error("unchanged key rebuilt the buffer")
	}
	pool.Flush(drawpool.GroupMap)
}

func TestDrawUpChangedRectIsMiss(t *testing.T) {
	pool, _ := newPool(t)
	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)

	moved := poolDest.Translated(geom.Point{X: 8})
	if !pool.DrawUp(drawpool.GroupMap, poolSize, moved, poolSrc) {
		t.Error("changed dest rect reported a cache hit")
	}
	pool.Flush(drawpool.GroupMap)
}

func TestMarkDirtyForcesRebuild(t *testing.T) {
	pool, _ := newPool(t)
	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)

	pool.MarkDirty(drawpool.GroupMap)
	if !pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc) {
		t.Error("dirty group reported a cache hit")
	}
	pool.Flush(drawpool.GroupMap)
}

func TestFlushBlitsOnHitToo(t *testing.T) {
	pool, device := newPool(t)

	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)
	first := device.TexturedRectDraws

	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)

	if device.TexturedRectDraws != first+1 {
		t.Errorf("cache hit did not blit: %d draws, want %d", device.TexturedRectDraws, first+1)
	}
}

func TestNestedDrawUpPanics(t *testing.T) {
	pool, _ := newPool(t)
	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)

	defer func() {
		if recover() == nil {
			t.Fatal("nested DrawUp did not panic")
		}
	}()
	pool.DrawUp(drawpool.GroupLight, poolSize, poolDest, poolSrc)
}

func TestGroupsKeyedIndependently(t *testing.T) {
	pool, _ := newPool(t)

	pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc)
	pool.Flush(drawpool.GroupMap)
	if !pool.DrawUp(drawpool.GroupLight, poolSize, poolDest, poolSrc) {
		t.Error("fresh group shared another group's cache key")
	}
	pool.Flush(drawpool.GroupLight)

	if pool.DrawUp(drawpool.GroupMap, poolSize, poolDest, poolSrc) {
		t.Error("map group lost its key to the light group")
	}
	pool.Flush(drawpool.GroupMap)
}
