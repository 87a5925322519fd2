package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
	// GradientTypeSweep indicates a sweep (angular) gradient.
	GradientTypeSweep
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	case GradientTypeSweep:
		return "sweep"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
//
// Start and End are expressed in unit coordinates relative to the
// surface the gradient is painted on: (0,0) is the top-left corner and
// (1,1) the bottom-right. The compositor maps them to pixels.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point, in the same
// unit coordinate space as LinearGradient. Radius 1 spans the shorter
// surface axis.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// SweepGradient defines an angular gradient around a center point.
// Angles are in radians; the gradient sweeps from StartAngle to
// EndAngle clockwise.
type SweepGradient struct {
	Center     Offset
	StartAngle float64
	EndAngle   float64
	Stops      []GradientStop
}

// Gradient describes a linear, radial, or sweep gradient. Gradients are
// value types: two gradients with the same type, geometry, and stops
// are interchangeable, and that structural equality is what decides
// whether a gradient change starts a new interpolation.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
	Sweep  SweepGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) Gradient {
	return Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) Gradient {
	return Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
	}
}

// NewSweepGradient constructs a sweep gradient definition.
func NewSweepGradient(center Offset, startAngle, endAngle float64, stops []GradientStop) Gradient {
	return Gradient{
		Type: GradientTypeSweep,
		Sweep: SweepGradient{
			Center:     center,
			StartAngle: startAngle,
			EndAngle:   endAngle,
			Stops:      cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g Gradient) Stops() []GradientStop {
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	case GradientTypeSweep:
		return g.Sweep.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g Gradient) IsValid() bool {
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	if g.Type == GradientTypeSweep && g.Sweep.EndAngle <= g.Sweep.StartAngle {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Equal reports structural equality: same type, same geometry, and the
// same ordered stops.
func (g Gradient) Equal(other Gradient) bool {
	if g.Type != other.Type {
		return false
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Start == other.Linear.Start &&
			g.Linear.End == other.Linear.End &&
			stopsEqual(g.Linear.Stops, other.Linear.Stops)
	case GradientTypeRadial:
		return g.Radial.Center == other.Radial.Center &&
			g.Radial.Radius == other.Radial.Radius &&
			stopsEqual(g.Radial.Stops, other.Radial.Stops)
	case GradientTypeSweep:
		return g.Sweep.Center == other.Sweep.Center &&
			g.Sweep.StartAngle == other.Sweep.StartAngle &&
			g.Sweep.EndAngle == other.Sweep.EndAngle &&
			stopsEqual(g.Sweep.Stops, other.Sweep.Stops)
	default:
		return true
	}
}

// ScaleAlpha returns a copy of the gradient with every stop's alpha
// multiplied by factor. Used by the cross-fade interpolation fallback.
func (g Gradient) ScaleAlpha(factor float64) Gradient {
	out := g
	scaled := make([]GradientStop, len(g.Stops()))
	for i, stop := range g.Stops() {
		scaled[i] = GradientStop{Position: stop.Position, Color: stop.Color.ScaleAlpha(factor)}
	}
	switch g.Type {
	case GradientTypeLinear:
		out.Linear.Stops = scaled
	case GradientTypeRadial:
		out.Radial.Stops = scaled
	case GradientTypeSweep:
		out.Sweep.Stops = scaled
	}
	return out
}

func stopsEqual(a, b []GradientStop) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

// ColorAt samples the gradient's stop ramp at position t in [0,1],
// interpolating between the two surrounding stops. Positions outside
// the stop range clamp to the nearest stop. This is how software
// rasterizers (such as the terminal demo) resolve the gradient without
// a shader backend.
func (g Gradient) ColorAt(t float64) Color {
	stops := g.Stops()
	if len(stops) == 0 {
		return ColorTransparent
	}
	t = clamp01(t)
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Position {
			continue
		}
		prev := stops[i-1]
		span := stops[i].Position - prev.Position
		if span <= 0 {
			return stops[i].Color
		}
		return LerpColor(prev.Color, stops[i].Color, (t-prev.Position)/span)
	}
	return last.Color
}

// unitPosition maps a pixel coordinate on a surface of the given size
// into the gradient's scalar ramp position.
func (g Gradient) unitPosition(point Offset, size Size) float64 {
	switch g.Type {
	case GradientTypeLinear:
		start := Offset{X: g.Linear.Start.X * size.Width, Y: g.Linear.Start.Y * size.Height}
		end := Offset{X: g.Linear.End.X * size.Width, Y: g.Linear.End.Y * size.Height}
		dx, dy := end.X-start.X, end.Y-start.Y
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return 0
		}
		return ((point.X-start.X)*dx + (point.Y-start.Y)*dy) / lenSq
	case GradientTypeRadial:
		center := Offset{X: g.Radial.Center.X * size.Width, Y: g.Radial.Center.Y * size.Height}
		short := math.Min(size.Width, size.Height)
		radius := g.Radial.Radius * short
		if radius <= 0 {
			return 0
		}
		return math.Hypot(point.X-center.X, point.Y-center.Y) / radius
	case GradientTypeSweep:
		center := Offset{X: g.Sweep.Center.X * size.Width, Y: g.Sweep.Center.Y * size.Height}
		angle := math.Atan2(point.Y-center.Y, point.X-center.X)
		span := g.Sweep.EndAngle - g.Sweep.StartAngle
		if span <= 0 {
			return 0
		}
		frac := math.Mod(angle-g.Sweep.StartAngle, 2*math.Pi)
		if frac < 0 {
			frac += 2 * math.Pi
		}
		return frac / span
	default:
		return 0
	}
}

// Sample resolves the gradient's color at a pixel coordinate on a
// surface of the given size, after shifting the gradient by translation
// (in pixels).
func (g Gradient) Sample(point Offset, size Size, translation Offset) Color {
	return g.ColorAt(g.unitPosition(point.Sub(translation), size))
}
