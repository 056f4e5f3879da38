// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Anchor      YAMLPoint         `yaml:"anchor"`
	Projectiles []string          `yaml:"projectiles,omitempty"`
	Bodies      []YAMLBody        `yaml:"bodies"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a position in world units.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLBody is one scene body. Circles set r, rectangles set w and h.
type YAMLBody struct {
	Kind   string  `yaml:"kind"`
	Shape  string  `yaml:"shape,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w,omitempty"`
	H      float64 `yaml:"h,omitempty"`
	R      float64 `yaml:"r,omitempty"`
	Static *bool   `yaml:"static,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// Body is a parsed body with its shape resolved.
type Body struct {
	Kind   string
	Circle bool
	X, Y   float64
	W, H   float64
	R      float64
	Static *bool
	Color  string
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID          string
	Name        string
	AnchorX     float64
	AnchorY     float64
	Projectiles []string
	Bodies      []Body
	Metadata    map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		AnchorX:     yl.Anchor.X,
		AnchorY:     yl.Anchor.Y,
		Projectiles: yl.Projectiles,
		Bodies:      make([]Body, 0, len(yl.Bodies)),
		Metadata:    yl.Metadata,
	}

	for i, b := range yl.Bodies {
		circle, err := resolveShape(b)
		if err != nil {
			return Level{}, fmt.Errorf("body %d (%s): %w", i, b.Kind, err)
		}
		level.Bodies = append(level.Bodies, Body{
			Kind:   b.Kind,
			Circle: circle,
			X:      b.X,
			Y:      b.Y,
			W:      b.W,
			H:      b.H,
			R:      b.R,
			Static: b.Static,
			Color:  b.Color,
		})
	}

	return level, nil
}

func resolveShape(b YAMLBody) (bool, error) {
	switch b.Shape {
	case "circle":
		if b.R <= 0 {
			return false, fmt.Errorf("circle needs a positive r")
		}
		return true, nil
	case "rect":
		if b.W <= 0 || b.H <= 0 {
			return false, fmt.Errorf("rect needs positive w and h")
		}
		return false, nil
	case "":
		if b.R > 0 {
			return true, nil
		}
		if b.W > 0 && b.H > 0 {
			return false, nil
		}
		return false, fmt.Errorf("body needs r or w and h")
	default:
		return false, fmt.Errorf("unknown shape %q", b.Shape)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
