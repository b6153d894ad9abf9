package parallax

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax2d/common"
	"github.com/milk9111/parallax2d/ecs"
)

// ImageLoader resolves a layer's image key to pixel data.
type ImageLoader func(key string) (*ebiten.Image, error)

// cameraView returns the single parallax camera's position and viewport
// size. Panics unless exactly one camera exists; without it neither pass
// can size or move a layer, and no sensible fallback exists.
func cameraView(w *ecs.World) (pos, size common.Vec2) {
	if n := ecs.Count(w, CameraComponent); n != 1 {
		panic("parallax: there should be exactly one parallax camera")
	}
	ecs.Each(w, CameraComponent, func(e ecs.Entity, c *Camera) {
		size = common.V2(c.HalfWidth*2, c.HalfHeight*2)
		if t, ok := ecs.Get(w, e, TransformComponent); ok {
			pos = common.V2(t.X, t.Y)
		}
	})
	return pos, size
}

// placement is the one-time result of laying out a new layer.
type placement struct {
	depth       Depth
	offset      common.Vec2
	scaled      common.Vec2
	depthFactor common.Vec2
	repeatX     bool
	repeatY     bool
}

// computePlacement resolves a new layer against the context and derives
// its offset, rendered size, and per-axis depth factor.
func computePlacement(ctx *Context, layer *Layer, imageSize, cameraSize common.Vec2) placement {
	depth := layer.Depth.Resolve(ctx)
	factor, _ := depth.Factor()
	depthFactor := common.Splat(factor)

	// A repeating axis tiles across the whole viewport; a clamped axis
	// keeps its native size and never parallax-scrolls.
	scaled := imageSize
	repeatX := layer.Flags.Contains(FlagRepeatX)
	if repeatX {
		scaled.X = cameraSize.X
	} else {
		depthFactor.X = 0
	}
	repeatY := layer.Flags.Contains(FlagRepeatY)
	if repeatY {
		scaled.Y = cameraSize.Y
	} else {
		depthFactor.Y = 0
	}

	// Pre-compensate with the motion formula so the layer shows at its
	// authored offset while the camera sits on it.
	offset := layer.Offset
	offset = offset.Sub(translationWithDepthAndFlags(offset, depth, layer.Flags))

	// If the camera is centered at precisely the layer's spawn position,
	// the offset should be adjusted to the camera edge by this much.
	if layer.Flags.Contains(FlagOffsetToCamera) {
		var edge common.Vec2
		if layer.Flags.Contains(FlagHorizontalOffset) {
			edge = common.V2((cameraSize.X-scaled.X)/2, 0)
		} else {
			edge = common.V2(0, (cameraSize.Y-scaled.Y)/2)
		}
		if layer.Flags.Contains(FlagPositiveOffset) {
			offset = offset.Add(edge)
		} else {
			offset = offset.Sub(edge)
		}
	}

	return placement{
		depth:       depth,
		offset:      offset,
		scaled:      scaled,
		depthFactor: depthFactor,
		repeatX:     repeatX,
		repeatY:     repeatY,
	}
}

// PlacementSystem consumes newly spawned Layer components: it resolves
// each layer's depth exactly once, derives its placement, builds the
// tiling material, and swaps the author component for the internal
// record. Must run before MotionSystem so a layer is never moved
// unresolved.
type PlacementSystem struct {
	ctx    *Context
	loader ImageLoader
}

// NewPlacementSystem creates the placement pass.
func NewPlacementSystem(ctx *Context, loader ImageLoader) *PlacementSystem {
	return &PlacementSystem{ctx: ctx, loader: loader}
}

// Update lays out every pending layer.
func (s *PlacementSystem) Update(w *ecs.World) {
	_, cameraSize := cameraView(w)

	ecs.Each(w, LayerComponent, func(e ecs.Entity, layer *Layer) {
		img, err := s.loader(layer.Image)
		if err != nil {
			// leave the layer pending; the image may appear later
			log.Printf("parallax: load image %q: %v", layer.Image, err)
			return
		}
		bounds := img.Bounds()
		imageSize := common.V2(float64(bounds.Dx()), float64(bounds.Dy()))

		p := computePlacement(s.ctx, layer, imageSize, cameraSize)

		material := NewMaterial(img, layer.Color).
			SetRepeat(p.repeatX, p.repeatY).
			SetRepeatScale(p.scaled.Div(imageSize)).
			SetDepth(p.depthFactor.Div(p.scaled)).
			SetOffset(p.offset)

		ecs.Add(w, e, TransformComponent, &Transform{
			X:      p.offset.X,
			Y:      p.offset.Y,
			Z:      p.depth.Value(),
			ScaleX: p.scaled.X,
			ScaleY: p.scaled.Y,
		})
		ecs.Add(w, e, layerDataComponent, &layerData{
			depth:    p.depth,
			offset:   p.offset,
			flags:    layer.Flags,
			material: material,
		})
		ecs.Remove(w, e, LayerComponent)
	})
}

// MotionSystem re-translates every placed layer from the camera's
// current position. Layers are mutually independent; order across them
// does not matter.
type MotionSystem struct{}

// NewMotionSystem creates the motion pass.
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Update moves all placed layers.
func (s *MotionSystem) Update(w *ecs.World) {
	cameraPos, _ := cameraView(w)

	ecs.Each(w, layerDataComponent, func(e ecs.Entity, data *layerData) {
		t, ok := ecs.Get(w, e, TransformComponent)
		if !ok {
			return
		}
		translation := translationWithDepthAndFlags(cameraPos, data.depth, data.flags)
		t.X = translation.X + data.offset.X
		t.Y = translation.Y + data.offset.Y
		t.Z = data.depth.Value()
	})
}

// translationWithDepthAndFlags computes a layer's translation for the
// given camera translation. A locked axis never moves. A non-repeating
// axis follows the camera damped by the depth factor, so factor 1 keeps
// the layer stationary in world space and factor 0 glues it to the
// camera. A repeating axis passes the camera translation through
// unmodified; tiling hides the shift.
func translationWithDepthAndFlags(translation common.Vec2, depth Depth, flags Flags) common.Vec2 {
	factor, ok := depth.Factor()
	if !ok {
		// no depth factor is treated as 0.0
		return common.Vec2{}
	}

	if flags.Contains(FlagLockedX) {
		translation.X = 0
	} else if !flags.Contains(FlagRepeatX) {
		translation.X -= translation.X * factor
	}

	if flags.Contains(FlagLockedY) {
		translation.Y = 0
	} else if !flags.Contains(FlagRepeatY) {
		translation.Y -= translation.Y * factor
	}

	return translation
}
