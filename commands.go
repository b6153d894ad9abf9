package parallax

import (
	"math"

	"github.com/milk9111/parallax2d/ecs"
)

// DespawnFrontLayer queues removal of the front-most parallax layer,
// the one with the greatest resolved depth. Ties keep the first layer
// encountered; with no placed layers the command is a no-op.
func DespawnFrontLayer(w *ecs.World) {
	w.Commands().Defer(despawnFrontLayer)
}

// DespawnBackLayer queues removal of the back-most parallax layer, the
// one with the least resolved depth. Ties keep the first layer
// encountered; with no placed layers the command is a no-op.
func DespawnBackLayer(w *ecs.World) {
	w.Commands().Defer(despawnBackLayer)
}

func despawnFrontLayer(w *ecs.World) {
	var front ecs.Entity
	minDepth := FromWorld(-math.MaxFloat64, 1)
	ecs.Each(w, layerDataComponent, func(e ecs.Entity, data *layerData) {
		if cmp, ok := data.depth.Compare(minDepth); ok && cmp > 0 {
			front, minDepth = e, data.depth
		}
	})
	if front.Valid() {
		w.DestroyEntity(front)
	}
}

func despawnBackLayer(w *ecs.World) {
	var back ecs.Entity
	maxDepth := FromWorld(math.MaxFloat64, 1)
	ecs.Each(w, layerDataComponent, func(e ecs.Entity, data *layerData) {
		if cmp, ok := data.depth.Compare(maxDepth); ok && cmp < 0 {
			back, maxDepth = e, data.depth
		}
	})
	if back.Valid() {
		w.DestroyEntity(back)
	}
}
