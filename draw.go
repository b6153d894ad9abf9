package parallax

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax2d/ecs"
)

// DrawLayers draws every placed layer to screen, back to front,
// positioned relative to the camera. World Y grows up while screen Y
// grows down, so the vertical axis flips here.
func DrawLayers(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	cameraPos, _ := cameraView(w)

	type item struct {
		transform *Transform
		material  *Material
	}
	items := make([]item, 0, ecs.Count(w, layerDataComponent))
	ecs.Each(w, layerDataComponent, func(e ecs.Entity, data *layerData) {
		t, ok := ecs.Get(w, e, TransformComponent)
		if !ok || data.material == nil {
			return
		}
		items = append(items, item{transform: t, material: data.material})
	})

	// smaller Z is further back and draws first
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].transform.Z < items[j].transform.Z
	})

	bounds := screen.Bounds()
	centerX := float64(bounds.Dx()) / 2
	centerY := float64(bounds.Dy()) / 2

	for _, it := range items {
		t := it.transform
		x := t.X - cameraPos.X + centerX - t.ScaleX/2
		y := cameraPos.Y - t.Y + centerY - t.ScaleY/2
		if err := it.material.Draw(screen, x, y, t.ScaleX, t.ScaleY, cameraPos); err != nil {
			log.Printf("parallax: draw layer: %v", err)
		}
	}
}
