package foil_test

import (
	"math"
	"testing"
	"time"

	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
	"github.com/ArcaneArts/nonsense-foil/pkg/foil"
	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
	"github.com/ArcaneArts/nonsense-foil/pkg/sensors"
)

// fakeSurface records every paint command it receives.
type fakeSurface struct {
	size      graphics.Size
	direction foil.TextDirection
	commands  []foil.PaintCommand
}

func (s *fakeSurface) Size() graphics.Size                { return s.size }
func (s *fakeSurface) Directionality() foil.TextDirection { return s.direction }
func (s *fakeSurface) Paint(command foil.PaintCommand) {
	s.commands = append(s.commands, command)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func withFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	fake := &fakeClock{now: time.Unix(1000, 0)}
	prev := animation.SetClock(fake)
	t.Cleanup(func() { animation.SetClock(prev) })
	return fake
}

func grayscale() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{}, graphics.Offset{X: 1},
		[]graphics.GradientStop{
			{Position: 0, Color: graphics.ColorBlack},
			{Position: 1, Color: graphics.ColorWhite},
		},
	)
}

func redToBlue() graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{}, graphics.Offset{X: 1},
		[]graphics.GradientStop{
			{Position: 0, Color: graphics.ColorRed},
			{Position: 1, Color: graphics.ColorBlue},
		},
	)
}

func newTestFoil(t *testing.T, surface *fakeSurface, cfg foil.Config) *foil.Foil {
	t.Helper()
	if !cfg.Gradient.IsValid() {
		cfg.Gradient = grayscale()
	}
	f, err := foil.NewFoil(surface, cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(f.Dispose)
	return f
}

func TestNewFoil_Validation(t *testing.T) {
	if _, err := foil.NewFoil(nil, foil.Config{Gradient: grayscale()}); err == nil {
		t.Error("expected error for nil surface")
	}
	surface := &fakeSurface{size: graphics.Size{Width: 10, Height: 10}}
	if _, err := foil.NewFoil(surface, foil.Config{}); err == nil {
		t.Error("expected error for invalid gradient")
	}
}

func TestComposite_PaintsOnceThenShortCircuits(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{})

	if !f.Composite() {
		t.Fatal("first composite should paint")
	}
	if f.Composite() {
		t.Error("identical frame should not repaint")
	}
	f.Tick(16 * time.Millisecond)
	if f.Composite() {
		t.Error("a tick with no channel activity should not repaint")
	}
	if len(surface.commands) != 1 {
		t.Fatalf("expected exactly 1 paint, got %d", len(surface.commands))
	}
}

func TestComposite_SkipsWithoutGeometry(t *testing.T) {
	surface := &fakeSurface{}
	f := newTestFoil(t, surface, foil.Config{})

	if f.Composite() {
		t.Error("composite against unsized surface should soft-skip")
	}

	surface.size = graphics.Size{Width: 50, Height: 50}
	if !f.Composite() {
		t.Error("composite should succeed once geometry arrives")
	}
}

func TestPointerMovesMaskWhenSensorEnabled(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 200, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{
		UseSensor:  true,
		SensorMode: sensors.Absolute,
		Speed:      100 * time.Millisecond,
		Curve:      animation.LinearCurve,
	})

	f.HandlePointer(sensors.PointerEvent{
		Phase:    sensors.PhaseDown,
		Position: graphics.Offset{X: 150, Y: 75},
	})
	f.Tick(200 * time.Millisecond) // run the tween to completion
	f.Composite()

	command := surface.commands[len(surface.commands)-1]
	if math.Abs(command.MaskRect.Left-100) > 1e-6 {
		t.Errorf("mask x = %v, want 200*0.5 = 100", command.MaskRect.Left)
	}
	if math.Abs(command.MaskRect.Top-50) > 1e-6 {
		t.Errorf("mask y = %v, want 100*0.5 = 50", command.MaskRect.Top)
	}
	if w := command.MaskRect.Width(); math.Abs(w-200) > 1e-6 {
		t.Errorf("mask width = %v, want surface width", w)
	}
}

func TestMaskPinnedWithoutSensor(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 200, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{
		UseSensor:  false,
		SensorMode: sensors.Absolute,
		Speed:      50 * time.Millisecond,
	})

	f.HandlePointer(sensors.PointerEvent{
		Phase:    sensors.PhaseDown,
		Position: graphics.Offset{X: 150, Y: 75},
	})
	f.Tick(100 * time.Millisecond)
	f.Composite()

	command := surface.commands[len(surface.commands)-1]
	if command.MaskRect.Left != 0 || command.MaskRect.Top != 0 {
		t.Errorf("mask should pin to origin without sensor, got (%v, %v)",
			command.MaskRect.Left, command.MaskRect.Top)
	}
}

func TestRollContributionTranslatesGradient(t *testing.T) {
	clock := withFakeClock(t)
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}

	roll, err := foil.NewRoll(foil.Crinkle{
		Min: 0, Max: 1, Period: time.Second, IsAnimated: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer roll.Dispose()

	f := newTestFoil(t, surface, foil.Config{
		Roll:  roll,
		Speed: 100 * time.Millisecond,
		Curve: animation.LinearCurve,
	})

	clock.advance(500 * time.Millisecond)
	animation.StepTickers() // oscillator at 0.5, retargets the roll channels
	f.Tick(200 * time.Millisecond)
	f.Composite()

	command := surface.commands[len(surface.commands)-1]
	if math.Abs(command.Translation.X-50) > 1e-6 {
		t.Errorf("translation x = %v, want 100*0.5 = 50", command.Translation.X)
	}
	if math.Abs(command.Translation.Y-50) > 1e-6 {
		t.Errorf("translation y = %v, want 100*0.5 = 50", command.Translation.Y)
	}
}

func TestInertCrinkleContributesNothing(t *testing.T) {
	clock := withFakeClock(t)
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}

	roll, err := foil.NewRoll(foil.Crinkle{IsAnimated: false})
	if err != nil {
		t.Fatal(err)
	}
	defer roll.Dispose()
	if roll.Controller() != nil {
		t.Fatal("inert crinkle should not build a controller")
	}

	f := newTestFoil(t, surface, foil.Config{Roll: roll})

	clock.advance(time.Second)
	animation.StepTickers()
	f.Tick(time.Second)
	f.Composite()

	command := surface.commands[len(surface.commands)-1]
	if command.Translation != (graphics.Offset{}) {
		t.Errorf("inert roll should contribute identity, got %+v", command.Translation)
	}
}

func TestSetGradient_EqualTargetIsNoOp(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{Gradient: grayscale()})

	f.SetGradient(grayscale()) // structurally equal: no restart
	f.Composite()
	f.Tick(time.Millisecond)
	if f.Composite() {
		t.Error("equal gradient should not start an interpolation")
	}
}

func TestSetGradient_InterpolatesTowardTarget(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{
		Gradient: grayscale(),
		Duration: 100 * time.Millisecond,
		Curve:    animation.LinearCurve,
	})

	f.SetGradient(redToBlue())

	if !f.Gradient().Equal(grayscale()) {
		t.Error("interpolation should start at the outgoing gradient")
	}
	f.Tick(50 * time.Millisecond)
	mid := f.Gradient()
	want := graphics.LerpColor(graphics.ColorBlack, graphics.ColorRed, 0.5)
	if mid.Stops()[0].Color != want {
		t.Errorf("midpoint stop 0 = %08X, want %08X",
			uint32(mid.Stops()[0].Color), uint32(want))
	}
	f.Tick(50 * time.Millisecond)
	if !f.Gradient().Equal(redToBlue()) {
		t.Error("interpolation should finish at the target gradient")
	}
}

func TestSetGradient_IgnoresInvalidGradient(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{
		Gradient:   grayscale(),
		Aggressive: true,
		Duration:   100 * time.Millisecond,
	})

	f.SetGradient(graphics.Gradient{})
	if !f.Gradient().Equal(grayscale()) {
		t.Error("an invalid gradient must not replace the current target")
	}
	f.Tick(50 * time.Millisecond)
	if !f.Composite() {
		t.Error("pipeline should keep painting after rejecting the gradient")
	}
	if !f.Gradient().Equal(grayscale()) {
		t.Error("evaluation after the rejected change should be unchanged")
	}
}

func TestSetGradient_InterruptedTweenRestartsFromBlend(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{
		Gradient: grayscale(),
		Duration: 100 * time.Millisecond,
		Curve:    animation.LinearCurve,
	})

	f.SetGradient(redToBlue())
	f.Tick(50 * time.Millisecond)
	halfway := f.Gradient()

	// Interrupt: retargeting back starts from the evaluated blend, not
	// from redToBlue.
	f.SetGradient(grayscale())
	if !f.Gradient().Equal(halfway) {
		t.Error("interrupted stage A should restart from the evaluated blend")
	}
}

func TestDispose_StopsPaintsAndDetachesRoll(t *testing.T) {
	clock := withFakeClock(t)
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}

	roll, err := foil.NewRoll(foil.Crinkle{
		Min: 0, Max: 1, Period: time.Second, IsAnimated: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer roll.Dispose()

	f, err := foil.NewFoil(surface, foil.Config{Gradient: grayscale(), Roll: roll})
	if err != nil {
		t.Fatal(err)
	}
	f.Composite()
	painted := len(surface.commands)

	f.Dispose()

	clock.advance(700 * time.Millisecond)
	animation.StepTickers()
	f.Tick(time.Second)
	f.HandlePointer(sensors.PointerEvent{Phase: sensors.PhaseDown, Position: graphics.Offset{X: 10, Y: 10}})
	if f.Composite() {
		t.Error("disposed pipeline must not paint")
	}
	if len(surface.commands) != painted {
		t.Errorf("disposed pipeline issued %d extra paints", len(surface.commands)-painted)
	}
}

func TestConfigBlendSelection(t *testing.T) {
	surface := &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	f := newTestFoil(t, surface, foil.Config{})
	f.Composite()
	if got := surface.commands[0].Blend; got != graphics.BlendModeSrcATop {
		t.Errorf("unset blend should default to src_atop, got %v", got)
	}

	surface = &fakeSurface{size: graphics.Size{Width: 100, Height: 100}}
	clear := graphics.BlendModeClear
	f = newTestFoil(t, surface, foil.Config{Blend: &clear})
	f.Composite()
	if got := surface.commands[0].Blend; got != graphics.BlendModeClear {
		t.Errorf("explicit clear blend should be honored, got %v", got)
	}
}

func TestCrinkleValidate(t *testing.T) {
	bad := foil.Crinkle{Min: 1, Max: 0, Period: time.Second, IsAnimated: true}
	if bad.Validate() == nil {
		t.Error("expected error for min > max")
	}
	bad = foil.Crinkle{Min: 0, Max: 1, IsAnimated: true}
	if bad.Validate() == nil {
		t.Error("expected error for zero period")
	}
	inert := foil.Crinkle{Min: 1, Max: 0}
	if inert.Validate() != nil {
		t.Error("inert crinkle should validate regardless of bounds")
	}
	if _, err := foil.NewRoll(foil.Crinkle{Min: 0, Max: 1, IsAnimated: true}); err == nil {
		t.Error("NewRoll should reject an invalid animated crinkle")
	}
}
