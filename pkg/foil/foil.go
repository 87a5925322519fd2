package foil

import (
	"fmt"
	"time"

	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
	"github.com/ArcaneArts/nonsense-foil/pkg/sensors"
)

// Default stage durations. Speed paces the positional channels,
// Duration paces gradient identity changes; they are deliberately
// separate so color transitions and motion can run at different
// cadences.
const (
	DefaultSpeed    = 150 * time.Millisecond
	DefaultDuration = 500 * time.Millisecond
)

// Config describes one shimmer pipeline.
type Config struct {
	// Gradient is the initial gradient identity. Must be valid.
	Gradient graphics.Gradient

	// Blend composites the gradient over the child visual. Nil selects
	// src_atop, which keys the shimmer to the child's own alpha; any
	// explicit mode, including clear, is honored.
	Blend *graphics.BlendMode

	// UseSensor shifts the mask window with the pointer signal. When
	// false the mask stays pinned to the origin and the pointer
	// channels, though still tracked, have no visible effect.
	UseSensor bool

	// SensorMode selects relative or absolute pointer normalization.
	SensorMode sensors.Mode

	// Scale multiplies the pointer signal per axis. Zero value means
	// identity.
	Scale sensors.Scalar

	// Aggressive selects index-wise gradient interpolation across
	// structurally dissimilar gradients instead of the cross-fade
	// fallback.
	Aggressive bool

	// Perceptual blends gradient colors in a perceptual color space
	// instead of channel-wise RGB.
	Perceptual bool

	// Speed is the positional tween duration (stage B). Zero selects
	// DefaultSpeed.
	Speed time.Duration

	// Duration is the gradient identity tween duration (stage A).
	// Zero selects DefaultDuration.
	Duration time.Duration

	// Curve eases both stages. Nil selects animation.Ease.
	Curve animation.Curve

	// Roll optionally joins this pipeline to a shared oscillation
	// scope. Nil means pointer-only.
	Roll *Roll
}

// Foil is one shimmer pipeline bound to a Surface. It owns its four
// positional channels and its gradient tween privately; the only
// shared resource is the optional Roll, which it references without
// owning.
//
// Per frame the host calls Tick then Composite; pointer input arrives
// through HandlePointer whenever the host receives it. All calls are
// single-threaded.
type Foil struct {
	surface   Surface
	blend     graphics.BlendMode
	useSensor bool
	speed     time.Duration
	duration  time.Duration
	curve     animation.Curve
	lerp      func(a, b graphics.Gradient, t float64) graphics.Gradient

	roll       *Roll
	removeRoll func()
	sensor     *sensors.PointerSensor

	// Stage A: gradient identity.
	target   graphics.Gradient
	tween    *animation.Tween[graphics.Gradient]
	progress *animation.Channel

	// Stage B: four independently retargeted positional channels.
	rollX    *animation.Channel
	rollY    *animation.Channel
	pointerX *animation.Channel
	pointerY *animation.Channel

	last     PaintCommand
	hasLast  bool
	disposed bool
}

// NewFoil builds a pipeline over the given surface. The surface and a
// valid gradient are required; everything else has working defaults.
func NewFoil(surface Surface, cfg Config) (*Foil, error) {
	if surface == nil {
		return nil, fmt.Errorf("foil: surface is required")
	}
	if !cfg.Gradient.IsValid() {
		return nil, fmt.Errorf("foil: initial gradient is invalid")
	}

	speed := cfg.Speed
	if speed == 0 {
		speed = DefaultSpeed
	}
	duration := cfg.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	curve := cfg.Curve
	if curve == nil {
		curve = animation.Ease
	}
	blend := graphics.BlendModeSrcATop
	if cfg.Blend != nil {
		blend = *cfg.Blend
	}

	colorLerp := graphics.ColorLerp(graphics.LerpColor)
	if cfg.Perceptual {
		colorLerp = graphics.LerpColorPerceptual
	}
	var lerp func(a, b graphics.Gradient, t float64) graphics.Gradient
	if cfg.Aggressive {
		lerp = func(a, b graphics.Gradient, t float64) graphics.Gradient {
			return graphics.LerpGradientAggressive(a, b, t, colorLerp)
		}
	} else {
		lerp = func(a, b graphics.Gradient, t float64) graphics.Gradient {
			return graphics.LerpGradientWith(a, b, t, colorLerp)
		}
	}

	f := &Foil{
		surface:   surface,
		blend:     blend,
		useSensor: cfg.UseSensor,
		speed:     speed,
		duration:  duration,
		curve:     curve,
		lerp:      lerp,
		roll:      cfg.Roll,
		target:    cfg.Gradient,
		tween:     animation.TweenGradient(cfg.Gradient, cfg.Gradient, lerp),
		progress:  animation.NewChannel(1, duration, curve),
		rollX:     animation.NewChannel(0, speed, curve),
		rollY:     animation.NewChannel(0, speed, curve),
		pointerX:  animation.NewChannel(0, speed, curve),
		pointerY:  animation.NewChannel(0, speed, curve),
	}

	f.sensor = &sensors.PointerSensor{
		Mode:  cfg.SensorMode,
		Scale: cfg.Scale,
		OnChange: func(nx, ny float64) {
			f.pointerX.SetTarget(nx)
			f.pointerY.SetTarget(ny)
		},
	}

	if cfg.Roll != nil {
		if controller := cfg.Roll.Controller(); controller != nil {
			scale := cfg.Roll.Crinkle().Scale
			f.removeRoll = controller.AddListener(func() {
				x, y := scale.Apply(controller.Value(), controller.Value())
				f.rollX.SetTarget(x)
				f.rollY.SetTarget(y)
			})
		}
	}

	return f, nil
}

// HandlePointer feeds one pointer event into the sensor, against the
// surface's current geometry. Before layout (zero size) the event is
// dropped and retried naturally on the next one.
func (f *Foil) HandlePointer(event sensors.PointerEvent) {
	if f.disposed {
		return
	}
	f.sensor.Handle(event, f.surface.Size())
}

// Sensor exposes the pipeline's signal normalizer, mainly so hosts can
// toggle Disabled.
func (f *Foil) Sensor() *sensors.PointerSensor {
	return f.sensor
}

// SetGradient retargets the gradient identity. Structural equality
// with the current target is the trigger guard: re-supplying an equal
// gradient does nothing, while a genuine change restarts stage A from
// the currently evaluated blend, never from the stale begin value.
// An invalid gradient is ignored; the pipeline keeps its current
// target.
func (f *Foil) SetGradient(gradient graphics.Gradient) {
	if f.disposed || !gradient.IsValid() || gradient.Equal(f.target) {
		return
	}
	current := f.Gradient()
	f.target = gradient
	f.tween = animation.TweenGradient(current, gradient, f.lerp)
	f.progress = animation.NewChannel(0, f.duration, f.curve)
	f.progress.SetTarget(1)
}

// SetBlend changes the compositing mode for subsequent frames.
func (f *Foil) SetBlend(blend graphics.BlendMode) {
	f.blend = blend
}

// SetUseSensor toggles whether the pointer signal moves the mask
// window.
func (f *Foil) SetUseSensor(useSensor bool) {
	f.useSensor = useSensor
}

// Gradient returns the currently evaluated gradient blend.
func (f *Foil) Gradient() graphics.Gradient {
	return f.tween.Evaluate(f.progress.Value())
}

// Tick advances both interpolation stages by dt. The stages are not
// synchronized with each other: each positional channel and the
// gradient progress run against their own elapsed time.
func (f *Foil) Tick(dt time.Duration) {
	if f.disposed {
		return
	}
	f.progress.Tick(dt)
	f.rollX.Tick(dt)
	f.rollY.Tick(dt)
	f.pointerX.Tick(dt)
	f.pointerY.Tick(dt)
}

// Frame snapshots the pipeline's current outputs. The frame is
// ephemeral: rebuilt on every call, no persisted identity.
func (f *Foil) Frame() CompositionFrame {
	frame := CompositionFrame{
		Gradient:  f.Gradient(),
		RollX:     f.rollX.Value(),
		RollY:     f.rollY.Value(),
		PointerX:  f.pointerX.Value(),
		PointerY:  f.pointerY.Value(),
		Blend:     f.blend,
		UseSensor: f.useSensor,
		Direction: f.surface.Directionality(),
		Size:      f.surface.Size(),
	}
	if f.roll != nil {
		frame.Transform = f.roll.Transform()
	}
	return frame
}

// Composite builds this frame's paint command and issues it to the
// surface, unless it would repaint the previous frame's exact pixels.
// Returns whether a paint was issued. A surface without geometry is a
// soft skip.
func (f *Foil) Composite() bool {
	if f.disposed {
		return false
	}
	size := f.surface.Size()
	if size.IsEmpty() {
		return false
	}
	command := Compose(f.Frame())
	if f.hasLast && command.Equal(f.last) {
		return false
	}
	f.surface.Paint(command)
	f.last = command
	f.hasLast = true
	return true
}

// Dispose detaches the pipeline from its roll scope and stops all
// further ticks, paints, and sensor callbacks. Synchronous: once it
// returns nothing fires.
func (f *Foil) Dispose() {
	if f.disposed {
		return
	}
	if f.removeRoll != nil {
		f.removeRoll()
		f.removeRoll = nil
	}
	f.sensor.Disabled = true
	f.disposed = true
}
