package parallax

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax2d/common"
)

// materialShaderSrc tiles or clamps each axis independently and shifts
// the sampled UVs by the camera-relative parallax term.
const materialShaderSrc = `//kage:unit pixels

package main

var Tint vec4
var Camera vec2
var Offset vec2
var Depth vec2
var RepeatScale vec2
var TileMode vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()

	uv := (src - origin) / size
	uv = uv*RepeatScale + (Camera-Offset)*Depth

	wrapped := fract(uv)
	clamped := clamp(uv, vec2(0), vec2(1))
	uv = mix(clamped, wrapped, TileMode)

	return imageSrc0At(origin+uv*size) * Tint
}
`

var (
	shaderOnce     sync.Once
	materialShader *ebiten.Shader
	shaderErr      error
)

func loadMaterialShader() (*ebiten.Shader, error) {
	shaderOnce.Do(func() {
		materialShader, shaderErr = ebiten.NewShader([]byte(materialShaderSrc))
	})
	return materialShader, shaderErr
}

// Material holds a layer's image and the tiling parameters the
// placement pass derives: repeat scale, normalized per-axis depth
// factor, and screen offset.
type Material struct {
	image       *ebiten.Image
	tint        [4]float32
	repeatScale common.Vec2
	depth       common.Vec2
	offset      common.Vec2
	repeatX     bool
	repeatY     bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewMaterial creates a material for an image. A nil tint means white.
func NewMaterial(img *ebiten.Image, tint color.Color) *Material {
	m := &Material{
		image:       img,
		tint:        [4]float32{1, 1, 1, 1},
		repeatScale: common.V2(1, 1),
	}
	if tint != nil {
		r, g, b, a := tint.RGBA()
		m.tint = [4]float32{
			float32(r) / 0xffff,
			float32(g) / 0xffff,
			float32(b) / 0xffff,
			float32(a) / 0xffff,
		}
	}
	return m
}

// Image returns the layer image.
func (m *Material) Image() *ebiten.Image {
	return m.image
}

// SetRepeat selects per-axis tiling: repeat wraps, clamp pins the edge.
func (m *Material) SetRepeat(x, y bool) *Material {
	m.repeatX = x
	m.repeatY = y
	return m
}

// SetRepeatScale sets the rendered-size / native-size ratio per axis.
func (m *Material) SetRepeatScale(scale common.Vec2) *Material {
	m.repeatScale = scale
	return m
}

// SetDepth sets the per-axis depth factor normalized by rendered size.
func (m *Material) SetDepth(depth common.Vec2) *Material {
	m.depth = depth
	return m
}

// SetOffset sets the layer's screen offset.
func (m *Material) SetOffset(offset common.Vec2) *Material {
	m.offset = offset
	return m
}

// Draw renders the material as a quad at (x, y) with size (w, h),
// sampling through the tiling shader with the current camera position.
func (m *Material) Draw(dst *ebiten.Image, x, y, w, h float64, cameraPos common.Vec2) error {
	shader, err := loadMaterialShader()
	if err != nil {
		return err
	}

	bounds := m.image.Bounds()
	sx0 := float32(bounds.Min.X)
	sy0 := float32(bounds.Min.Y)
	sx1 := float32(bounds.Max.X)
	sy1 := float32(bounds.Max.Y)

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	m.vertices = append(m.vertices[:0],
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: sx0, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: sx1, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: sx0, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: sx1, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	)
	m.indices = append(m.indices[:0], 0, 1, 2, 1, 3, 2)

	tileMode := func(repeat bool) float32 {
		if repeat {
			return 1
		}
		return 0
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = m.image
	op.Uniforms = map[string]any{
		"Tint":        []float32{m.tint[0], m.tint[1], m.tint[2], m.tint[3]},
		"Camera":      []float32{float32(cameraPos.X), float32(cameraPos.Y)},
		"Offset":      []float32{float32(m.offset.X), float32(m.offset.Y)},
		"Depth":       []float32{float32(m.depth.X), float32(m.depth.Y)},
		"RepeatScale": []float32{float32(m.repeatScale.X), float32(m.repeatScale.Y)},
		"TileMode":    []float32{tileMode(m.repeatX), tileMode(m.repeatY)},
	}
	dst.DrawTrianglesShader(m.vertices, m.indices, shader, op)
	return nil
}
