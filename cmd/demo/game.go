package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	parallax "github.com/milk9111/parallax2d"
	"github.com/milk9111/parallax2d/ecs"
	"github.com/milk9111/parallax2d/prefabs"
)

const (
	baseWidth  = 640
	baseHeight = 360

	cameraMoveSpeed = 5.0
)

// skyColor matches the original demo's clear color.
var skyColor = color.RGBA{R: 0x29, G: 0xAD, B: 0xFF, A: 0xFF}

type Game struct {
	world     *ecs.World
	camera    ecs.Entity
	layers    []ecs.Entity
	scenePath string
	watcher   *prefabs.Watcher
}

func NewGame(scenePath string, watch bool) (*Game, error) {
	registerDemoImages()

	g := &Game{
		world:     ecs.NewWorld(),
		scenePath: scenePath,
	}

	var plugin *parallax.Plugin
	var scene *prefabs.SceneSpec
	if scenePath != "" {
		var err error
		scene, err = prefabs.LoadScene(scenePath)
		if err != nil {
			return nil, err
		}
		plugin, err = scene.Parallax.Plugin()
		if err != nil {
			return nil, err
		}
	} else {
		plugin = parallax.Default()
	}
	plugin.Install(g.world)

	g.camera = parallax.SpawnCamera(g.world, baseWidth/2, baseHeight/2)

	if scene != nil {
		layers, err := scene.Spawn(g.world)
		if err != nil {
			return nil, err
		}
		g.layers = layers
	} else {
		g.layers = spawnMountainScene(g.world)
	}

	if watch && scenePath != "" {
		watcher, err := prefabs.NewWatcher(filepath.Dir(scenePath))
		if err != nil {
			return nil, err
		}
		g.watcher = watcher
	}

	return g, nil
}

// spawnMountainScene is the built-in scene: four horizontally repeating
// layers from distant mountains to nearby bushes.
func spawnMountainScene(w *ecs.World) []ecs.Entity {
	specs := []parallax.Layer{
		{Image: "mountains_background.png", Depth: parallax.FromParallax(84), Flags: parallax.FlagDefault},
		{Image: "back_trees_background.png", Depth: parallax.FromParallax(70), Flags: parallax.FlagDefault},
		{Image: "trees_background.png", Depth: parallax.FromParallax(55), Flags: parallax.FlagDefault},
		{Image: "bushes_background.png", Depth: parallax.FromParallax(40), Flags: parallax.FlagDefault},
	}
	entities := make([]ecs.Entity, 0, len(specs))
	for _, layer := range specs {
		entities = append(entities, parallax.SpawnLayer(w, layer))
	}
	return entities
}

func (g *Game) Update() error {
	g.pollSceneReload()
	g.moveCamera()
	g.world.Update()
	return nil
}

func (g *Game) moveCamera() {
	t, ok := ecs.Get(g.world, g.camera, parallax.TransformComponent)
	if !ok {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		t.X -= cameraMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		t.X += cameraMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		t.Y += cameraMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		t.Y -= cameraMoveSpeed
	}
}

// pollSceneReload respawns the layers when the watched scene file
// changes. The plugin configuration is fixed at install time; only
// layer changes hot-reload.
func (g *Game) pollSceneReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if path != g.scenePath {
			return
		}
		scene, err := prefabs.LoadScene(g.scenePath)
		if err != nil {
			log.Printf("demo: reload scene: %v", err)
			return
		}
		for _, e := range g.layers {
			g.world.DestroyEntity(e)
		}
		layers, err := scene.Spawn(g.world)
		if err != nil {
			log.Printf("demo: respawn layers: %v", err)
		}
		g.layers = layers
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("demo: watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	parallax.DrawLayers(g.world, screen)

	if t, ok := ecs.Get(g.world, g.camera, parallax.TransformComponent); ok {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Camera: (%.0f, %.0f)    FPS: %.2f", t.X, t.Y, ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
