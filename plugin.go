package parallax

import (
	"github.com/milk9111/parallax2d/ecs"
	"github.com/milk9111/parallax2d/render"
)

// Plugin configures the parallax system and installs its passes into a
// world.
//
//	plugin := parallax.New(-5, 5).SetNeutralDepth(2).SetScale(2)
//	plugin.Install(world)
type Plugin struct {
	cfg    Config
	loader ImageLoader
}

// Default returns a plugin with the default configuration.
func Default() *Plugin {
	return &Plugin{cfg: DefaultConfig()}
}

// New creates a plugin with the given near and far depths. The neutral
// depth starts at their mid-point.
//
// Panics if nearDepth is not less than farDepth; an inverted range has
// no sensible interpretation.
func New(nearDepth, farDepth float64) *Plugin {
	if nearDepth >= farDepth {
		panic("parallax: near depth should be less than far depth")
	}
	cfg := DefaultConfig()
	cfg.NearDepth = nearDepth
	cfg.NeutralDepth = (nearDepth + farDepth) / 2
	cfg.FarDepth = farDepth
	return &Plugin{cfg: cfg}
}

// SetNeutralDepth sets the depth with no parallax effect; a layer there
// appears stationary with respect to the world.
func (p *Plugin) SetNeutralDepth(neutralDepth float64) *Plugin {
	p.cfg.NeutralDepth = neutralDepth
	return p
}

// SetScale sets the global multiplier applied to every depth factor.
func (p *Plugin) SetScale(scale float64) *Plugin {
	p.cfg.Scale = scale
	return p
}

// SetImageLoader overrides how layer image keys resolve to pixel data.
// The default is the render package's cache-backed loader.
func (p *Plugin) SetImageLoader(loader ImageLoader) *Plugin {
	p.loader = loader
	return p
}

// Config returns the configuration as currently set, in author space.
func (p *Plugin) Config() Config {
	return p.cfg
}

// Install builds the immutable context and registers the placement and
// motion passes, in that order, on the world. It returns the context so
// callers can resolve depths themselves.
func (p *Plugin) Install(w *ecs.World) *Context {
	loader := p.loader
	if loader == nil {
		loader = render.Load
	}
	ctx := NewContext(p.cfg)
	w.AddSystem(NewPlacementSystem(ctx, loader))
	w.AddSystem(NewMotionSystem())
	return ctx
}
