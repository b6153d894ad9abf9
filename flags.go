package parallax

// Flags describe per-layer parallax behavior as a bit-set.
//
//   - Repeat stretches the layer with correct tiling along an axis.
//   - Lock freezes the layer's translation along an axis.
//   - Offset flags anchor the layer's offset to a camera boundary.
type Flags uint8

// FlagNone has no bits set.
const FlagNone Flags = 0

const (
	// FlagRepeatX repeats the layer along the X axis.
	FlagRepeatX Flags = 1 << iota
	// FlagRepeatY repeats the layer along the Y axis.
	FlagRepeatY
	// FlagLockedX locks the layer's translation along the X axis.
	FlagLockedX
	// FlagLockedY locks the layer's translation along the Y axis.
	FlagLockedY
	// FlagOffsetToCamera offsets the layer relative to the camera.
	FlagOffsetToCamera
	// FlagHorizontalOffset selects a horizontal offset (unset means vertical).
	FlagHorizontalOffset
	// FlagPositiveOffset selects right/top (unset means left/bottom).
	FlagPositiveOffset
)

const (
	// FlagOffsetCameraLeft anchors the layer to the camera's left edge.
	FlagOffsetCameraLeft = FlagOffsetToCamera | FlagHorizontalOffset
	// FlagOffsetCameraRight anchors the layer to the camera's right edge.
	FlagOffsetCameraRight = FlagOffsetCameraLeft | FlagPositiveOffset
	// FlagOffsetCameraBottom anchors the layer to the camera's bottom edge.
	FlagOffsetCameraBottom = FlagOffsetToCamera
	// FlagOffsetCameraTop anchors the layer to the camera's top edge.
	FlagOffsetCameraTop = FlagOffsetCameraBottom | FlagPositiveOffset

	// FlagDefault repeats along X and offsets to the camera's bottom.
	FlagDefault = FlagRepeatX | FlagOffsetCameraBottom
)

// Contains reports whether every bit of o is set in f.
func (f Flags) Contains(o Flags) bool {
	return f&o == o
}

// Intersects reports whether any bit of o is set in f.
func (f Flags) Intersects(o Flags) bool {
	return f&o != 0
}
