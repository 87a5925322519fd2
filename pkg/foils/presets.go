// Package foils ships a catalog of ready-made decorative gradients and
// a YAML loader for user-defined ones.
package foils

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// named resolves a CSS color name through the SVG 1.1 palette.
// Unknown names come back white so preset construction never fails.
func named(name string) graphics.Color {
	c, ok := colornames.Map[name]
	if !ok {
		return graphics.ColorWhite
	}
	return graphics.RGBA8(c.R, c.G, c.B, c.A)
}

// evenStops spreads colors evenly across [0, 1].
func evenStops(colors ...graphics.Color) []graphics.GradientStop {
	stops := make([]graphics.GradientStop, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		stops[i] = graphics.GradientStop{Position: float64(i) / last, Color: c}
	}
	return stops
}

// Rainbow runs the full spectrum corner to corner.
func Rainbow() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{},
		graphics.Offset{X: 1, Y: 1},
		evenStops(
			named("red"), named("orange"), named("yellow"),
			named("green"), named("blue"), named("indigo"), named("violet"),
		),
	)
}

// LinearRainbow is Rainbow with a horizontal axis, for banded shimmer
// on wide surfaces.
func LinearRainbow() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{},
		graphics.Offset{X: 1},
		evenStops(
			named("red"), named("orange"), named("yellow"),
			named("green"), named("blue"), named("indigo"), named("violet"),
		),
	)
}

// LinearLooping doubles the spectrum so a crawling translation loops
// seamlessly.
func LinearLooping() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{},
		graphics.Offset{X: 1, Y: 1},
		evenStops(
			named("red"), named("yellow"), named("green"), named("blue"),
			named("violet"), named("red"), named("yellow"), named("green"),
			named("blue"), named("violet"), named("red"),
		),
	)
}

// Oilslick is the iridescent pastel sheen of oil on water.
func Oilslick() graphics.Gradient {
	return graphics.NewRadialGradient(
		graphics.Offset{X: 0.5, Y: 0.5},
		1.2,
		evenStops(
			graphics.RGBA8(0xAA, 0xCC, 0xBB, 0xCC),
			graphics.RGBA8(0x88, 0x77, 0xCC, 0xCC),
			graphics.RGBA8(0xCC, 0x88, 0xAA, 0xCC),
			graphics.RGBA8(0x77, 0xCC, 0xCC, 0xCC),
			graphics.RGBA8(0xCC, 0xBB, 0x88, 0xCC),
			graphics.RGBA8(0xAA, 0xCC, 0xBB, 0xCC),
		),
	)
}

// Silver is a tight metallic band of grays.
func Silver() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{},
		graphics.Offset{X: 1, Y: 0.4},
		evenStops(
			named("silver"), named("white"), named("gray"),
			named("white"), named("silver"),
		),
	)
}

// Stonewashed is a muted denim fade.
func Stonewashed() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{Y: 1},
		graphics.Offset{X: 1},
		evenStops(
			named("lightsteelblue"), named("slategray"),
			named("steelblue"), named("lightslategray"),
		),
	)
}

// SitAndSpin sweeps the spectrum a full turn around the center.
func SitAndSpin() graphics.Gradient {
	return graphics.NewSweepGradient(
		graphics.Offset{X: 0.5, Y: 0.5},
		0,
		2*math.Pi,
		evenStops(
			named("red"), named("orange"), named("yellow"),
			named("green"), named("blue"), named("violet"), named("red"),
		),
	)
}

// GymClass spins the bold primary-color parachute.
func GymClass() graphics.Gradient {
	return graphics.NewSweepGradient(
		graphics.Offset{X: 0.5, Y: 0.5},
		0,
		2*math.Pi,
		evenStops(
			named("red"), named("gold"), named("royalblue"),
			named("limegreen"), named("red"),
		),
	)
}

// Catalog maps preset names, as accepted by the demo and sheet
// overrides, to their constructors.
func Catalog() map[string]func() graphics.Gradient {
	return map[string]func() graphics.Gradient{
		"rainbow":        Rainbow,
		"linear-rainbow": LinearRainbow,
		"linear-looping": LinearLooping,
		"oilslick":       Oilslick,
		"silver":         Silver,
		"stonewashed":    Stonewashed,
		"sit-and-spin":   SitAndSpin,
		"gym-class":      GymClass,
	}
}
