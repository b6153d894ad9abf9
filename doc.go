// Package parallax provides simple 2D parallax scrolling layers on top
// of the ecs world.
//
// In this package:
//
//   - Plugin installs the placement and motion passes.
//   - Camera marks the single parallax camera.
//   - Layer creates a parallax layer.
//   - Flags define a layer's repeat, lock, and anchoring.
//   - Depth holds a layer's depth, in author space or resolved world space.
//
// A minimal setup:
//
//	world := ecs.NewWorld()
//	parallax.Default().Install(world)
//	parallax.SpawnCamera(world, 320, 180)
//	parallax.SpawnLayer(world, parallax.Layer{
//		Image: "main_background.png",
//		Depth: parallax.FromParallax(80),
//		Flags: parallax.FlagRepeatX | parallax.FlagRepeatY,
//	})
//
// Each frame, world.Update runs both passes and parallax.DrawLayers
// renders the result relative to the camera.
package parallax
