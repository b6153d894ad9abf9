package parallax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextDefault(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	assert.Equal(t, 1.0, ctx.cfg.Scale)
	assert.Equal(t, 10.0, ctx.cfg.NearDepth)
	assert.Equal(t, 0.0, ctx.cfg.NeutralDepth)
	assert.Equal(t, -100.0, ctx.cfg.FarDepth)
}

func TestNewContextConvertsAuthorBounds(t *testing.T) {
	ctx := NewContext(Config{
		Scale:        -5.0,
		NearDepth:    0.0,
		NeutralDepth: -1.0,
		FarDepth:     1.0,
	})

	assert.Equal(t, -5.0, ctx.cfg.Scale)
	assert.Equal(t, -1.0, ctx.cfg.NearDepth)
	assert.Equal(t, -1.0, ctx.cfg.NeutralDepth)
	assert.Equal(t, -2.0, ctx.cfg.FarDepth)
}

func TestNewContextKeepsWorldBounds(t *testing.T) {
	// near > far already looks converted; passing it through a second
	// time must not convert again.
	ctx := NewContext(Config{
		Scale:        1.0,
		NearDepth:    10.0,
		NeutralDepth: 0.0,
		FarDepth:     -100.0,
	})

	assert.Equal(t, 10.0, ctx.cfg.NearDepth)
	assert.Equal(t, -100.0, ctx.cfg.FarDepth)
}

func TestCalculateDepthFactor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	assert.Equal(t, FactorMax, ctx.CalculateDepthFactor(15.0))
	assert.Equal(t, FactorMin, ctx.CalculateDepthFactor(-95.0))
	assert.Equal(t, 1.0, ctx.CalculateDepthFactor(0.0))
	assert.Equal(t, 0.5, ctx.CalculateDepthFactor(-15.0))
	assert.Equal(t, 2.0, ctx.CalculateDepthFactor(7.5))
}

func TestDepthFactorMonotoneAndClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 2.0
	cfg.NeutralDepth = 5.0
	ctx := NewContext(cfg)

	// Sweeping the authored depth from front to back, the factor never
	// increases and pins to the scaled caps at and beyond the planes.
	prev := FactorMax*ctx.Scale() + 1
	for v := -50.0; v <= 200.0; v += 0.5 {
		factor, ok := FromParallax(v).Resolve(ctx).Factor()
		assert.True(t, ok)
		assert.LessOrEqual(t, factor, prev, "authored depth %v", v)
		assert.GreaterOrEqual(t, factor, FactorMin*ctx.Scale())
		assert.LessOrEqual(t, factor, FactorMax*ctx.Scale())
		prev = factor
	}

	// Exact clamps at the configured planes.
	nearFactor, _ := FromParallax(cfg.NearDepth).Resolve(ctx).Factor()
	farFactor, _ := FromParallax(cfg.FarDepth).Resolve(ctx).Factor()
	assert.Equal(t, FactorMax*cfg.Scale, nearFactor)
	assert.Equal(t, FactorMin*cfg.Scale, farFactor)
}
