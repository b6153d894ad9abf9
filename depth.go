package parallax

type depthKind uint8

const (
	// depthParallax is a user-space depth, not yet resolved.
	depthParallax depthKind = iota
	// depthWorldWithFactor is the depth used in the parallax system.
	depthWorldWithFactor
)

// Depth of a parallax layer.
//
// The depth is relative to the neutral depth defined in the Plugin. In
// parallax depth space; a depth value less than the neutral depth renders
// the layer in front, while a greater value renders it behind.
//
// The zero value is the parallax depth 0. To manually set a world-space
// depth and scroll speed factor see FromWorld.
type Depth struct {
	kind   depthKind
	value  float64
	factor float64
}

// FromParallax creates a Depth from a parallax depth value.
func FromParallax(depth float64) Depth {
	return Depth{kind: depthParallax, value: depth}
}

// FromWorld creates a Depth from custom depth and factor values,
// bypassing the context entirely.
//
// In world-space; the depth is the z-position of the parallax layer. The
// factor should be the ratio neutral depth / depth, meaning 1.0 at the
// neutral plane, 0.0 at the far depth, and a large value at the near
// depth. A negative factor is allowed and produces a counter-scrolling
// background.
//
// The factor does not get multiplied by the scale defined in the plugin.
func FromWorld(depth, factor float64) Depth {
	return Depth{kind: depthWorldWithFactor, value: depth, factor: factor}
}

// Value returns the stored depth regardless of representation. For a
// resolved depth this is the render-order z value.
func (d Depth) Value() float64 {
	return d.value
}

// Factor returns the scroll speed factor. ok is false while the depth is
// still in parallax space.
func (d Depth) Factor() (factor float64, ok bool) {
	if d.kind != depthWorldWithFactor {
		return 0, false
	}
	return d.factor, true
}

// Resolved reports whether the depth carries a world depth and factor.
func (d Depth) Resolved() bool {
	return d.kind == depthWorldWithFactor
}

// Resolve translates a parallax depth to a world depth with a factor
// using the given context. Resolving an already resolved depth returns
// it unchanged, so the call is idempotent.
func (d Depth) Resolve(ctx *Context) Depth {
	if d.kind == depthWorldWithFactor {
		return d
	}
	depth := ctx.ConvertDepth(d.value)
	return Depth{
		kind:   depthWorldWithFactor,
		value:  depth,
		factor: ctx.CalculateDepthFactor(depth),
	}
}

// Equal reports whether two depths share a representation and a depth
// value. A resolved and an unresolved depth are never equal, whatever
// their numbers.
func (d Depth) Equal(o Depth) bool {
	return d.kind == o.kind && d.value == o.value
}

// Compare orders two depths of the same representation by depth value.
// Depths of different representations are incomparable and ok is false.
func (d Depth) Compare(o Depth) (cmp int, ok bool) {
	if d.kind != o.kind {
		return 0, false
	}
	switch {
	case d.value < o.value:
		return -1, true
	case d.value > o.value:
		return 1, true
	case d.value == o.value:
		return 0, true
	}
	// NaN on either side
	return 0, false
}
