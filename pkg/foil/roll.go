package foil

import (
	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
)

// Roll is an animation scope: it owns the one oscillator its member
// pipelines share. Many Foils can reference a single Roll; they read
// the oscillator value through listeners but never start, stop, or
// reconfigure it. The Roll is handed to each Foil explicitly at
// construction, so the relationship is visible in the call site rather
// than resolved through an ambient lookup; a Foil without a Roll
// simply runs pointer-only.
//
// The scope's owner calls Dispose exactly once when the scope
// unmounts. Disposal tears the controller down after dropping its
// listeners, so no member pipeline receives a callback afterwards.
type Roll struct {
	crinkle    Crinkle
	controller *animation.RollController
}

// NewRoll validates the crinkle and, when it is animated, builds and
// starts the shared oscillator.
func NewRoll(crinkle Crinkle) (*Roll, error) {
	if err := crinkle.Validate(); err != nil {
		return nil, err
	}
	roll := &Roll{crinkle: crinkle}
	if crinkle.IsAnimated {
		controller, err := animation.NewRollController(
			crinkle.Min, crinkle.Max, crinkle.Period, crinkle.Reverse)
		if err != nil {
			return nil, err
		}
		controller.Start()
		roll.controller = controller
	}
	return roll, nil
}

// Crinkle returns the scope's configuration.
func (r *Roll) Crinkle() Crinkle {
	return r.crinkle
}

// Controller returns the shared oscillator, or nil when the crinkle is
// not animated. Callers treat it as read-only.
func (r *Roll) Controller() *animation.RollController {
	return r.controller
}

// Transform returns the scope's gradient transform, falling back to
// PercentTranslate.
func (r *Roll) Transform() GradientTransform {
	if r.crinkle.Transform != nil {
		return r.crinkle.Transform
	}
	return PercentTranslate
}

// Dispose stops the oscillator and detaches every member pipeline's
// listener. Safe to call on an inert scope.
func (r *Roll) Dispose() {
	if r.controller != nil {
		r.controller.Dispose()
		r.controller = nil
	}
}
