package parallax

// Config is the parallax configuration in author space.
type Config struct {
	// Scale multiplies every layer's depth factor.
	Scale float64
	// NearDepth is the plane at which scrolling speed caps out.
	NearDepth float64
	// NeutralDepth is the plane with no parallax effect, interpreted as
	// the 0-plane.
	NeutralDepth float64
	// FarDepth is the plane at and beyond which layers are locked to
	// the world.
	FarDepth float64
}

// DefaultConfig returns the default parallax configuration.
func DefaultConfig() Config {
	return Config{
		Scale:        1.0,
		NearDepth:    -10.0,
		NeutralDepth: 0.0,
		FarDepth:     100.0,
	}
}

// convertDepth converts a depth between parallax depth and world depth.
//
// For the parallax depth, NeutralDepth is interpreted as the 0-plane, a
// negative value is in front, and a positive value is behind. The camera
// depth is reversed from this so we translate it as -depth. We also want
// the depth relative to the 0-plane; resulting in neutral - depth.
func convertDepth(cfg Config, depth float64) float64 {
	return cfg.NeutralDepth - depth
}

// Context holds the parallax configuration, normalized into world space.
// It is immutable after construction and shared by every layer.
type Context struct {
	cfg Config
}

const (
	// FactorMin is the depth factor at and beyond the far plane.
	FactorMin = 0.0
	// FactorMax is the depth factor at and within the near plane.
	FactorMax = 100.0
)

// NewContext builds a context from a configuration. When the bounds
// still look like author-space values (near < far) they are converted to
// world space once; already converted bounds pass through untouched.
func NewContext(cfg Config) *Context {
	if cfg.NearDepth < cfg.FarDepth {
		cfg.NearDepth = convertDepth(cfg, cfg.NearDepth)
		cfg.FarDepth = convertDepth(cfg, cfg.FarDepth)
	}
	return &Context{cfg: cfg}
}

// ConvertDepth converts a given depth between parallax depth and world
// depth.
func (c *Context) ConvertDepth(depth float64) float64 {
	return convertDepth(c.cfg, depth)
}

// Scale returns the configured global factor multiplier.
func (c *Context) Scale() float64 {
	return c.cfg.Scale
}

// CalculateDepthFactor maps a world depth to its scroll speed factor.
// The factor is FactorMin at and beyond the far plane, FactorMax at and
// within the near plane, and near / (near - depth) in between, giving
// exactly 1.0 at the converted neutral plane. The result is always
// multiplied by the configured scale.
func (c *Context) CalculateDepthFactor(worldDepth float64) float64 {
	var factor float64
	switch {
	case worldDepth <= c.cfg.FarDepth:
		factor = FactorMin
	case worldDepth >= c.cfg.NearDepth:
		factor = FactorMax
	default:
		factor = c.cfg.NearDepth / (c.cfg.NearDepth - worldDepth)
	}
	return factor * c.cfg.Scale
}
