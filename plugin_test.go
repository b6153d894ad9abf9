package parallax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/parallax2d/ecs"
)

func TestPluginNew(t *testing.T) {
	plugin := New(0.0, 1.0).
		SetNeutralDepth(-1.0).
		SetScale(-5.0)

	cfg := plugin.Config()
	assert.Equal(t, -5.0, cfg.Scale)
	assert.Equal(t, 0.0, cfg.NearDepth)
	assert.Equal(t, -1.0, cfg.NeutralDepth)
	assert.Equal(t, 1.0, cfg.FarDepth)
}

func TestPluginNewDefaultsNeutralToMidpoint(t *testing.T) {
	cfg := New(-20.0, 60.0).Config()
	assert.Equal(t, 20.0, cfg.NeutralDepth)
	assert.Equal(t, 1.0, cfg.Scale)
}

func TestPluginNewPanicsOnInvertedRange(t *testing.T) {
	assert.PanicsWithValue(t, "parallax: near depth should be less than far depth", func() {
		New(1.0, -1.0)
	})
	assert.Panics(t, func() { New(3.0, 3.0) })
}

func TestPluginInstall(t *testing.T) {
	w := ecs.NewWorld()
	ctx := Default().Install(w)
	require.NotNil(t, ctx)

	SpawnCamera(w, 160, 90)

	// Both passes run against an empty layer set without touching the
	// image loader.
	assert.NotPanics(t, func() { w.Update() })

	// With no camera the passes must fail fast.
	empty := ecs.NewWorld()
	Default().Install(empty)
	assert.Panics(t, func() { empty.Update() })
}
