package parallax

import (
	"image/color"

	"github.com/milk9111/parallax2d/common"
	"github.com/milk9111/parallax2d/ecs"
)

// Transform is a layer's world-space placement. Z is the render order;
// larger values sit closer to the camera.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = ecs.NewComponent[*Transform]()

// Camera marks the single parallax camera and carries its viewport
// half-extent in world units.
//
// Only one camera can use parallax layers. Both passes panic if the
// world holds zero or more than one Camera when they run.
type Camera struct {
	HalfWidth  float64
	HalfHeight float64
}

var CameraComponent = ecs.NewComponent[*Camera]()

// Layer initiates a layer in the parallax scrolling system. The
// placement pass consumes it on first sight, replacing it with the
// resolved internal record.
//
// The zero Flags value means no repeat and no anchoring; use FlagDefault
// for the standard horizontally repeating, bottom-anchored layer.
type Layer struct {
	// Image is the key passed to the image loader.
	Image string
	// Color tints the layer; nil means white.
	Color color.Color
	// Depth affects the layer's scroll speed and render order.
	Depth Depth
	// Offset positions the layer such that it is centered in the camera
	// view when the camera sits at this point. Offset flags tune it
	// further.
	Offset common.Vec2
	Flags  Flags
}

var LayerComponent = ecs.NewComponent[*Layer]()

// layerData is the resolved per-layer record. depth always carries a
// world depth and factor by the time the motion pass reads it; offset is
// written once during placement and read-only after.
type layerData struct {
	depth    Depth
	offset   common.Vec2
	flags    Flags
	material *Material
}

var layerDataComponent = ecs.NewComponent[*layerData]()

// SpawnCamera creates the parallax camera entity at the origin.
func SpawnCamera(w *ecs.World, halfWidth, halfHeight float64) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, CameraComponent, &Camera{HalfWidth: halfWidth, HalfHeight: halfHeight})
	ecs.Add(w, e, TransformComponent, &Transform{ScaleX: 1, ScaleY: 1})
	return e
}

// SpawnLayer creates an entity carrying a Layer component for the
// placement pass to pick up.
func SpawnLayer(w *ecs.World, layer Layer) ecs.Entity {
	e := w.CreateEntity()
	l := layer
	ecs.Add(w, e, LayerComponent, &l)
	return e
}
