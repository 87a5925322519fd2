// Package sensors converts raw pointer input into the bounded signal
// the shimmer pipeline consumes: a per-axis value in [-1, 1], scaled by
// a per-axis multiplier, delivered through a change callback.
package sensors

import (
	"fmt"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// PointerPhase identifies the kind of pointer event.
type PointerPhase int

const (
	// PhaseDown is the initial contact of a press.
	PhaseDown PointerPhase = iota
	// PhaseMove is movement while in contact.
	PhaseMove
	// PhaseUp is the release of a press.
	PhaseUp
	// PhaseHover is movement while not in contact.
	PhaseHover
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseHover:
		return "hover"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent carries one pointer transition in absolute surface
// coordinates. The event source is abstract; any host that can report
// positions and press state can feed a sensor.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
}

// Scalar is a per-axis multiplier applied to the normalized signal
// before it leaves the sensor. Values are not clamped after scaling:
// a scalar above 1 deliberately pushes the signal outside [-1, 1] and
// downstream consumers interpret the overshoot.
type Scalar struct {
	Horizontal float64
	Vertical   float64
}

// ScalarIdentity leaves the signal unscaled.
var ScalarIdentity = Scalar{Horizontal: 1, Vertical: 1}

// orIdentity treats the zero value as "unset" so literal configs can
// omit the field.
func (s Scalar) orIdentity() Scalar {
	if s == (Scalar{}) {
		return ScalarIdentity
	}
	return s
}

// Apply multiplies a normalized pair by the scalar.
func (s Scalar) Apply(x, y float64) (float64, float64) {
	s = s.orIdentity()
	return x * s.Horizontal, y * s.Vertical
}
