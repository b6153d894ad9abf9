package parallax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthToWorldWithFactor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 2.0
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	near := FromParallax(-10.0).Resolve(ctx)
	far := FromParallax(100.0).Resolve(ctx)
	neutral := FromParallax(5.0).Resolve(ctx)
	double := FromParallax(20.0).Resolve(ctx)
	third := Depth{}.Resolve(ctx)
	custom := FromWorld(-10.0, 1.0)

	assert.Equal(t, 15.0, near.Value())
	assert.Equal(t, -95.0, far.Value())
	assert.Equal(t, 0.0, neutral.Value())
	assert.Equal(t, -15.0, double.Value())
	assert.Equal(t, 5.0, third.Value())
	assert.Equal(t, -10.0, custom.Value())

	// Double factors from scale = 2.0
	assertFactor(t, near, FactorMax*2.0)
	assertFactor(t, far, FactorMin*2.0)
	assertFactor(t, neutral, 2.0)
	assertFactor(t, double, 1.0)
	assertFactor(t, third, 3.0)
	// But not the custom world depth
	assertFactor(t, custom, 1.0)
}

func assertFactor(t *testing.T, d Depth, want float64) {
	t.Helper()
	factor, ok := d.Factor()
	assert.True(t, ok)
	assert.Equal(t, want, factor)
}

func TestDepthOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 2.0
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	nearParallax := FromParallax(-10.0)
	farParallax := FromParallax(100.0)
	neutralParallax := FromParallax(5.0)

	near := nearParallax.Resolve(ctx)
	far := farParallax.Resolve(ctx)
	neutral := neutralParallax.Resolve(ctx)

	// Not compatible across representations, in either direction.
	assert.False(t, near.Equal(nearParallax))
	assert.False(t, nearParallax.Equal(near))
	assert.False(t, neutral.Equal(farParallax))
	_, ok := near.Compare(nearParallax)
	assert.False(t, ok)
	_, ok = nearParallax.Compare(near)
	assert.False(t, ok)
	_, ok = farParallax.Compare(neutral)
	assert.False(t, ok)

	// Ordering for resolved depths.
	assert.True(t, near.Equal(near))
	assert.False(t, near.Equal(neutral))
	assertCompare(t, far, far, 0)
	assertCompare(t, neutral, far, 1)
	assertCompare(t, neutral, near, -1)
	assertCompare(t, near, far, 1)

	// Ordering for parallax depths.
	assert.True(t, nearParallax.Equal(nearParallax))
	assert.False(t, nearParallax.Equal(neutralParallax))
	assertCompare(t, farParallax, farParallax, 0)
	assertCompare(t, neutralParallax, farParallax, -1)
	assertCompare(t, neutralParallax, nearParallax, 1)
	assertCompare(t, nearParallax, farParallax, -1)
}

func assertCompare(t *testing.T, a, b Depth, want int) {
	t.Helper()
	cmp, ok := a.Compare(b)
	assert.True(t, ok)
	assert.Equal(t, want, cmp)
}

func TestDepthGetters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	depth := FromParallax(-5.0)
	assert.Equal(t, -5.0, depth.Value())
	_, ok := depth.Factor()
	assert.False(t, ok)
	assert.False(t, depth.Resolved())

	depth = depth.Resolve(ctx)
	assert.Equal(t, 10.0, depth.Value())
	assertFactor(t, depth, 3.0)
	assert.True(t, depth.Resolved())

	// Resolving again is a no-op.
	again := depth.Resolve(ctx)
	assert.Equal(t, 10.0, again.Value())
	assertFactor(t, again, 3.0)
	assert.True(t, again.Equal(depth))

	custom := FromWorld(50.0, -10.0).Resolve(ctx)
	assert.Equal(t, 50.0, custom.Value())
	assertFactor(t, custom, -10.0)
}

func TestDepthResolveIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 2.0
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	for _, v := range []float64{-10, -5, 0, 5, 20, 100, 250} {
		once := FromParallax(v).Resolve(ctx)
		twice := once.Resolve(ctx)
		assert.True(t, once.Equal(twice), "parallax depth %v", v)
		f1, _ := once.Factor()
		f2, _ := twice.Factor()
		assert.Equal(t, f1, f2, "parallax depth %v", v)
	}
}
