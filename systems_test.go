package parallax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/parallax2d/common"
	"github.com/milk9111/parallax2d/ecs"
)

func TestTranslationWithDepthAndFlags(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	depth := FromParallax(10.0)

	// An unresolved depth commits to no translation at all.
	assert.Equal(t, common.Vec2{}, translationWithDepthAndFlags(common.Vec2{}, depth, FlagNone))
	assert.Equal(t, common.Vec2{}, translationWithDepthAndFlags(common.V2(3, 4), depth, FlagNone))

	depth = depth.Resolve(ctx)
	factor, ok := depth.Factor()
	require.True(t, ok)
	require.Equal(t, 0.5, factor)

	cases := []struct {
		name  string
		flags Flags
		want  common.Vec2
	}{
		{"no_flags", FlagNone, common.Splat(0.5)},
		{"locked_x", FlagLockedX, common.V2(0, 0.5)},
		{"locked_both", FlagLockedX | FlagLockedY, common.Vec2{}},
		{"repeat_x_passes_camera_through", FlagRepeatX, common.V2(1.0, 0.5)},
		{"repeat_both", FlagRepeatX | FlagRepeatY, common.V2(1, 1)},
		{"locked_beats_repeat", FlagLockedX | FlagRepeatX, common.V2(0, 0.5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := translationWithDepthAndFlags(common.V2(1, 1), depth, c.flags)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestComputePlacementTiling(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	imageSize := common.V2(100, 50)
	cameraSize := common.V2(320, 180)

	cases := []struct {
		name       string
		flags      Flags
		wantScaled common.Vec2
		wantXZero  bool
		wantYZero  bool
	}{
		{"no_repeat", FlagNone, common.V2(100, 50), true, true},
		{"repeat_x", FlagRepeatX, common.V2(320, 50), false, true},
		{"repeat_y", FlagRepeatY, common.V2(100, 180), true, false},
		{"repeat_both", FlagRepeatX | FlagRepeatY, common.V2(320, 180), false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			layer := &Layer{Depth: FromParallax(10), Flags: c.flags}
			p := computePlacement(ctx, layer, imageSize, cameraSize)

			assert.Equal(t, c.wantScaled, p.scaled)
			assert.Equal(t, c.flags.Contains(FlagRepeatX), p.repeatX)
			assert.Equal(t, c.flags.Contains(FlagRepeatY), p.repeatY)
			assert.True(t, p.depth.Resolved())

			factor, _ := p.depth.Factor()
			if c.wantXZero {
				assert.Zero(t, p.depthFactor.X)
			} else {
				assert.Equal(t, factor, p.depthFactor.X)
			}
			if c.wantYZero {
				assert.Zero(t, p.depthFactor.Y)
			} else {
				assert.Equal(t, factor, p.depthFactor.Y)
			}
		})
	}
}

func TestComputePlacementPreCompensatesOffset(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	// depth 10 resolves to factor 0.5 under the default config
	layer := &Layer{Depth: FromParallax(10), Offset: common.V2(10, 20)}
	p := computePlacement(ctx, layer, common.V2(100, 50), common.V2(320, 180))

	// Non-repeating axes follow the camera damped by the factor, so the
	// compensation leaves offset * factor behind.
	assert.Equal(t, common.V2(5, 10), p.offset)
}

func TestComputePlacementCameraEdgeAnchoring(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	imageSize := common.V2(100, 50)
	cameraSize := common.V2(320, 180)

	cases := []struct {
		name  string
		flags Flags
		want  common.Vec2
	}{
		// locked axes make the pre-compensation zero, isolating the edge term
		{"bottom", FlagLockedX | FlagLockedY | FlagOffsetCameraBottom, common.V2(0, -(180.0-50.0)/2)},
		{"top", FlagLockedX | FlagLockedY | FlagOffsetCameraTop, common.V2(0, (180.0-50.0)/2)},
		{"left", FlagLockedX | FlagLockedY | FlagOffsetCameraLeft, common.V2(-(320.0-100.0)/2, 0)},
		{"right", FlagLockedX | FlagLockedY | FlagOffsetCameraRight, common.V2((320.0-100.0)/2, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			layer := &Layer{Depth: FromParallax(10), Flags: c.flags}
			p := computePlacement(ctx, layer, imageSize, cameraSize)
			assert.Equal(t, c.want, p.offset)
		})
	}
}

func TestCameraViewRequiresExactlyOneCamera(t *testing.T) {
	w := ecs.NewWorld()

	assert.Panics(t, func() { cameraView(w) })

	SpawnCamera(w, 160, 90)
	assert.NotPanics(t, func() {
		pos, size := cameraView(w)
		assert.Equal(t, common.Vec2{}, pos)
		assert.Equal(t, common.V2(320, 180), size)
	})

	SpawnCamera(w, 160, 90)
	assert.Panics(t, func() { cameraView(w) })
}

func TestMotionSystemMovesLayers(t *testing.T) {
	w := ecs.NewWorld()
	camera := SpawnCamera(w, 160, 90)
	cam, ok := ecs.Get(w, camera, TransformComponent)
	require.True(t, ok)
	cam.X, cam.Y = 8, 6

	ctx := NewContext(DefaultConfig())
	depth := FromParallax(10).Resolve(ctx) // factor 0.5

	layer := w.CreateEntity()
	require.NoError(t, ecs.Add(w, layer, TransformComponent, &Transform{}))
	require.NoError(t, ecs.Add(w, layer, layerDataComponent, &layerData{
		depth:  depth,
		offset: common.V2(1, 2),
	}))

	NewMotionSystem().Update(w)

	tr, ok := ecs.Get(w, layer, TransformComponent)
	require.True(t, ok)
	assert.Equal(t, 8*0.5+1, tr.X)
	assert.Equal(t, 6*0.5+2, tr.Y)
	assert.Equal(t, depth.Value(), tr.Z)
}
