// Package prefabs loads parallax scenes from YAML spec files.
package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	parallax "github.com/milk9111/parallax2d"
	"github.com/milk9111/parallax2d/common"
	"github.com/milk9111/parallax2d/ecs"
)

// SceneSpec is a whole parallax scene: the plugin configuration plus
// its layers.
type SceneSpec struct {
	Parallax ConfigSpec  `yaml:"parallax"`
	Layers   []LayerSpec `yaml:"layers"`
}

// ConfigSpec mirrors the plugin configuration. Omitted neutral depth
// and scale fall back to the plugin constructor's defaults.
type ConfigSpec struct {
	NearDepth    float64  `yaml:"near_depth"`
	FarDepth     float64  `yaml:"far_depth"`
	NeutralDepth *float64 `yaml:"neutral_depth"`
	Scale        *float64 `yaml:"scale"`
}

// WorldDepthSpec sets a layer's depth directly in world space with an
// explicit factor, bypassing resolution.
type WorldDepthSpec struct {
	Depth  float64 `yaml:"depth"`
	Factor float64 `yaml:"factor"`
}

// OffsetSpec is a layer's authored offset.
type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayerSpec describes one parallax layer. Depth and WorldDepth are
// mutually exclusive; omitting the flags list entirely selects the
// default flags, while an explicit empty list selects none.
type LayerSpec struct {
	Image      string          `yaml:"image"`
	Depth      *float64        `yaml:"depth"`
	WorldDepth *WorldDepthSpec `yaml:"world_depth"`
	Offset     OffsetSpec      `yaml:"offset"`
	Color      *YAMLColor      `yaml:"color"`
	Flags      []string        `yaml:"flags"`
}

// LoadScene reads and parses a scene spec file.
func LoadScene(filename string) (*SceneSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseScene(data)
}

// ParseScene parses a scene spec document.
func ParseScene(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	for i := range spec.Layers {
		l := &spec.Layers[i]
		if l.Image == "" {
			return nil, fmt.Errorf("prefabs: layer %d: missing image", i)
		}
		if l.Depth != nil && l.WorldDepth != nil {
			return nil, fmt.Errorf("prefabs: layer %d: depth and world_depth are mutually exclusive", i)
		}
		if _, err := ParseFlags(l.Flags); err != nil {
			return nil, fmt.Errorf("prefabs: layer %d: %w", i, err)
		}
	}
	return &spec, nil
}

// Plugin builds the parallax plugin for this configuration. A spec with
// no depth bounds gets the default plugin.
func (s ConfigSpec) Plugin() (*parallax.Plugin, error) {
	var p *parallax.Plugin
	switch {
	case s.NearDepth == 0 && s.FarDepth == 0:
		p = parallax.Default()
	case s.NearDepth >= s.FarDepth:
		return nil, fmt.Errorf("prefabs: near depth %v should be less than far depth %v", s.NearDepth, s.FarDepth)
	default:
		p = parallax.New(s.NearDepth, s.FarDepth)
	}
	if s.NeutralDepth != nil {
		p = p.SetNeutralDepth(*s.NeutralDepth)
	}
	if s.Scale != nil {
		p = p.SetScale(*s.Scale)
	}
	return p, nil
}

// Layer builds the author component for this layer spec.
func (s LayerSpec) Layer() (parallax.Layer, error) {
	flags, err := ParseFlags(s.Flags)
	if err != nil {
		return parallax.Layer{}, err
	}

	depth := parallax.Depth{}
	if s.Depth != nil {
		depth = parallax.FromParallax(*s.Depth)
	} else if s.WorldDepth != nil {
		depth = parallax.FromWorld(s.WorldDepth.Depth, s.WorldDepth.Factor)
	}

	var tint color.Color
	if s.Color != nil {
		tint = s.Color.Color
	}

	return parallax.Layer{
		Image:  s.Image,
		Color:  tint,
		Depth:  depth,
		Offset: common.V2(s.Offset.X, s.Offset.Y),
		Flags:  flags,
	}, nil
}

// Spawn creates one entity per layer in the world.
func (s *SceneSpec) Spawn(w *ecs.World) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, len(s.Layers))
	for i, spec := range s.Layers {
		layer, err := spec.Layer()
		if err != nil {
			return entities, fmt.Errorf("prefabs: layer %d: %w", i, err)
		}
		entities = append(entities, parallax.SpawnLayer(w, layer))
	}
	return entities, nil
}

var flagNames = map[string]parallax.Flags{
	"none":                 parallax.FlagNone,
	"repeat_x":             parallax.FlagRepeatX,
	"repeat_y":             parallax.FlagRepeatY,
	"locked_x":             parallax.FlagLockedX,
	"locked_y":             parallax.FlagLockedY,
	"offset_to_camera":     parallax.FlagOffsetToCamera,
	"horizontal_offset":    parallax.FlagHorizontalOffset,
	"positive_offset":      parallax.FlagPositiveOffset,
	"offset_camera_left":   parallax.FlagOffsetCameraLeft,
	"offset_camera_right":  parallax.FlagOffsetCameraRight,
	"offset_camera_bottom": parallax.FlagOffsetCameraBottom,
	"offset_camera_top":    parallax.FlagOffsetCameraTop,
	"default":              parallax.FlagDefault,
}

// ParseFlags combines a list of flag names, case-insensitively. A nil
// list means the default flags; an empty one means none.
func ParseFlags(names []string) (parallax.Flags, error) {
	if names == nil {
		return parallax.FlagDefault, nil
	}
	flags := parallax.FlagNone
	for _, name := range names {
		f, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return parallax.FlagNone, fmt.Errorf("unknown flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa" scalars.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
