package sensors

import (
	"fmt"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// Mode selects how raw positions map to the normalized signal.
type Mode int

const (
	// Relative measures movement from the point of initial contact;
	// the first press defines the origin.
	Relative Mode = iota
	// Absolute measures position against the surface bounds, with the
	// surface center as the origin.
	Absolute
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State tracks where the sensor is in its contact lifecycle.
type State int

const (
	// StateIdle means no contact; hover events report, moves do not.
	StateIdle State = iota
	// StateContact means a press has landed but not yet moved.
	StateContact
	// StateTracking means the press is moving.
	StateTracking
)

// String returns a human-readable representation of the sensor state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateContact:
		return "contact"
	case StateTracking:
		return "tracking"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PointerSensor normalizes raw pointer positions into a bounded 2D
// signal. Each qualifying event produces one OnChange callback with a
// pair clamped to [-1, 1] per axis and then multiplied by Scale.
//
// Qualifying events: a press, a move while in contact, and a hover
// while not in contact. Hover during contact and move outside contact
// are suppressed. Release returns the sensor to idle but leaves the
// last reported signal in place rather than forcing it back to zero;
// the press defines an origin, the release deliberately does not
// restore a neutral state. An optional reset on release exists in
// spirit only and is intentionally not implemented, so consumers keep
// the frozen shimmer where the finger left it.
type PointerSensor struct {
	// Mode selects relative or absolute normalization.
	Mode Mode

	// Scale is applied after clamping. The zero value means identity.
	Scale Scalar

	// Disabled suppresses all input processing, including callbacks.
	Disabled bool

	// OnChange receives the normalized, scaled signal.
	OnChange func(nx, ny float64)

	state     State
	initial   graphics.Offset
	hasOrigin bool
	lastX     float64
	lastY     float64
}

// CurrentState returns the current contact state.
func (s *PointerSensor) CurrentState() State {
	return s.state
}

// Last returns the most recently reported signal pair.
func (s *PointerSensor) Last() (nx, ny float64) {
	return s.lastX, s.lastY
}

// Handle processes one pointer event against the surface's current
// size. If the surface has no geometry yet (zero or negative size) the
// update is skipped without error; the next event retries with fresh
// geometry.
func (s *PointerSensor) Handle(event PointerEvent, size graphics.Size) {
	if s.Disabled {
		return
	}
	if size.IsEmpty() {
		return
	}

	switch event.Phase {
	case PhaseDown:
		s.initial = event.Position
		s.hasOrigin = true
		s.state = StateContact
		s.report(event.Position, size)
	case PhaseMove:
		if s.state != StateContact && s.state != StateTracking {
			return
		}
		s.state = StateTracking
		s.report(event.Position, size)
	case PhaseHover:
		if s.state != StateIdle {
			return
		}
		s.report(event.Position, size)
	case PhaseUp:
		s.state = StateIdle
	}
}

func (s *PointerSensor) report(position graphics.Offset, size graphics.Size) {
	var nx, ny float64
	// A relative sensor that has never seen a press has no origin to
	// measure from; hovers fall back to center-origin normalization
	// until the first contact.
	if s.Mode == Relative && s.hasOrigin {
		delta := position.Sub(s.initial)
		nx = clampSigned(delta.X / (size.Width / 2))
		ny = clampSigned(delta.Y / (size.Height / 2))
	} else {
		nx = clampSigned(position.X/size.Width*2 - 1)
		ny = clampSigned(position.Y/size.Height*2 - 1)
	}
	nx, ny = s.Scale.Apply(nx, ny)
	s.lastX, s.lastY = nx, ny
	if s.OnChange != nil {
		s.OnChange(nx, ny)
	}
}

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
