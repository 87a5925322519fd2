package foils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// A sheet is a YAML document declaring named gradients:
//
//	presets:
//	  ember:
//	    type: linear
//	    start: {x: 0, y: 1}
//	    end: {x: 1, y: 0}
//	    stops:
//	      - {position: 0, color: "#FF4500"}
//	      - {position: 1, color: gold}
//	  halo:
//	    type: radial
//	    center: {x: 0.5, y: 0.5}
//	    radius: 0.8
//	    stops:
//	      - {position: 0, color: white}
//	      - {position: 1, color: "#00FFFFFF"}
//
// Colors are CSS names or #RRGGBB / #AARRGGBB hex.

type sheetDoc struct {
	Presets map[string]presetDoc `yaml:"presets"`
}

type presetDoc struct {
	Type       string    `yaml:"type"`
	Start      *pointDoc `yaml:"start,omitempty"`
	End        *pointDoc `yaml:"end,omitempty"`
	Center     *pointDoc `yaml:"center,omitempty"`
	Radius     float64   `yaml:"radius,omitempty"`
	StartAngle float64   `yaml:"startAngle,omitempty"`
	EndAngle   float64   `yaml:"endAngle,omitempty"`
	Stops      []stopDoc `yaml:"stops"`
}

type pointDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type stopDoc struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

// LoadSheet reads and parses a sheet file.
func LoadSheet(path string) (map[string]graphics.Gradient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return ParseSheet(data)
}

// LoadSheetOptional reads a sheet file if present; a missing file is
// an empty sheet, not an error.
func LoadSheetOptional(path string) (map[string]graphics.Gradient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]graphics.Gradient{}, nil
		}
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return ParseSheet(data)
}

// ParseSheet parses a sheet document and validates every gradient.
func ParseSheet(data []byte) (map[string]graphics.Gradient, error) {
	var doc sheetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sheet: %w", err)
	}

	out := make(map[string]graphics.Gradient, len(doc.Presets))
	for name, preset := range doc.Presets {
		gradient, err := preset.build()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if !gradient.IsValid() {
			return nil, fmt.Errorf("preset %q: gradient is invalid", name)
		}
		out[name] = gradient
	}
	return out, nil
}

func (p presetDoc) build() (graphics.Gradient, error) {
	stops := make([]graphics.GradientStop, len(p.Stops))
	for i, stop := range p.Stops {
		c, err := parseColor(stop.Color)
		if err != nil {
			return graphics.Gradient{}, err
		}
		stops[i] = graphics.GradientStop{Position: stop.Position, Color: c}
	}

	switch p.Type {
	case "linear":
		start, end := graphics.Offset{}, graphics.Offset{X: 1, Y: 1}
		if p.Start != nil {
			start = graphics.Offset{X: p.Start.X, Y: p.Start.Y}
		}
		if p.End != nil {
			end = graphics.Offset{X: p.End.X, Y: p.End.Y}
		}
		return graphics.NewLinearGradient(start, end, stops), nil
	case "radial":
		center := graphics.Offset{X: 0.5, Y: 0.5}
		if p.Center != nil {
			center = graphics.Offset{X: p.Center.X, Y: p.Center.Y}
		}
		return graphics.NewRadialGradient(center, p.Radius, stops), nil
	case "sweep":
		center := graphics.Offset{X: 0.5, Y: 0.5}
		if p.Center != nil {
			center = graphics.Offset{X: p.Center.X, Y: p.Center.Y}
		}
		return graphics.NewSweepGradient(center, p.StartAngle, p.EndAngle, stops), nil
	default:
		return graphics.Gradient{}, fmt.Errorf("unknown gradient type %q", p.Type)
	}
}

// parseColor accepts a CSS color name or #RRGGBB / #AARRGGBB hex.
func parseColor(value string) (graphics.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty color")
	}
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		switch len(hex) {
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("bad hex color %q: %w", value, err)
			}
			return graphics.Color(0xFF000000 | uint32(v)), nil
		case 8:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("bad hex color %q: %w", value, err)
			}
			return graphics.Color(uint32(v)), nil
		default:
			return 0, fmt.Errorf("bad hex color %q: want #RRGGBB or #AARRGGBB", value)
		}
	}
	c, ok := colornames.Map[strings.ToLower(value)]
	if !ok {
		return 0, fmt.Errorf("unknown color name %q", value)
	}
	return graphics.RGBA8(c.R, c.G, c.B, c.A), nil
}
