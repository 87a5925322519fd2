package foil

import (
	"fmt"
	"time"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
	"github.com/ArcaneArts/nonsense-foil/pkg/sensors"
)

// GradientTransform maps the roll contribution of one frame to a
// gradient translation in percent of the surface size. The default
// translates directly by percentage; custom transforms can swirl,
// quantize, or otherwise reshape the motion.
type GradientTransform func(rollX, rollY float64) graphics.Offset

// PercentTranslate is the default gradient transform: the roll pair is
// read as a fraction of the surface size per axis.
func PercentTranslate(rollX, rollY float64) graphics.Offset {
	return graphics.Offset{X: rollX, Y: rollY}
}

// Crinkle configures the background oscillation of a roll scope: how
// far, how fast, and in what wave shape the gradient drifts on its own
// with no pointer involved.
type Crinkle struct {
	// Min and Max bound the oscillator value.
	Min float64
	Max float64

	// Period is the duration of one full oscillation cycle.
	Period time.Duration

	// Reverse selects a triangle wave (ping-pong) instead of a
	// sawtooth restart.
	Reverse bool

	// IsAnimated gates the whole oscillation. When false no driver is
	// created and the roll contribution downstream is zero.
	IsAnimated bool

	// Scale multiplies the oscillator value per axis before it enters
	// a pipeline's roll channels. The zero value means identity.
	Scale sensors.Scalar

	// Transform overrides PercentTranslate for pipelines in this
	// scope.
	Transform GradientTransform
}

// Validate rejects configurations that would oscillate undefined.
// An inert crinkle (IsAnimated false) is always valid since its bounds
// and period are never consulted.
func (c Crinkle) Validate() error {
	if !c.IsAnimated {
		return nil
	}
	if c.Min > c.Max {
		return fmt.Errorf("foil: crinkle min %v greater than max %v", c.Min, c.Max)
	}
	if c.Period <= 0 {
		return fmt.Errorf("foil: crinkle period must be positive, got %v", c.Period)
	}
	return nil
}

// SmoothCrinkle drifts the gradient gently back and forth. A good
// default for large surfaces.
func SmoothCrinkle() Crinkle {
	return Crinkle{
		Min:        -2,
		Max:        2,
		Period:     6 * time.Second,
		Reverse:    true,
		IsAnimated: true,
	}
}

// TwinkleCrinkle keeps the motion tight and quick, for small accents.
func TwinkleCrinkle() Crinkle {
	return Crinkle{
		Min:        -0.2,
		Max:        0.2,
		Period:     2 * time.Second,
		Reverse:    true,
		IsAnimated: true,
	}
}

// CrawlCrinkle sweeps steadily in one direction and snaps back,
// like a looping marquee.
func CrawlCrinkle() Crinkle {
	return Crinkle{
		Min:        -5,
		Max:        5,
		Period:     20 * time.Second,
		IsAnimated: true,
	}
}
