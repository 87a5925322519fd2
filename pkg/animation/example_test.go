package animation_test

import (
	"fmt"
	"time"

	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// This example shows how a channel smooths a stream of target changes.
func ExampleChannel() {
	c := animation.NewChannel(0, 100*time.Millisecond, animation.LinearCurve)

	// A new target starts a tween from the current value.
	c.SetTarget(10)
	fmt.Printf("start: %.1f\n", c.Value())
	fmt.Printf("half:  %.1f\n", c.Tick(50*time.Millisecond))

	// Retargeting mid-flight continues from where the tween is now.
	c.SetTarget(0)
	fmt.Printf("turn:  %.1f\n", c.Value())
	fmt.Printf("done:  %.1f\n", c.Tick(100*time.Millisecond))

	// Output:
	// start: 0.0
	// half:  5.0
	// turn:  5.0
	// done:  0.0
}

// This example shows how to run the shared oscillator.
func ExampleRollController() {
	roll, err := animation.NewRollController(-1, 1, 2*time.Second, true)
	if err != nil {
		panic(err)
	}

	// Listen for value changes; the host frame loop calls
	// animation.StepTickers() once per frame.
	remove := roll.AddListener(func() {
		_ = roll.Value()
	})

	roll.Start()

	// Clean up when the scope unmounts.
	remove()
	roll.Dispose()
}

// This example shows how to interpolate gradients with a tween.
func ExampleTweenGradient() {
	a := graphics.NewLinearGradient(
		graphics.Offset{}, graphics.Offset{X: 1},
		[]graphics.GradientStop{
			{Position: 0, Color: graphics.ColorBlack},
			{Position: 1, Color: graphics.ColorWhite},
		},
	)
	b := graphics.NewLinearGradient(
		graphics.Offset{}, graphics.Offset{X: 1},
		[]graphics.GradientStop{
			{Position: 0, Color: graphics.ColorWhite},
			{Position: 1, Color: graphics.ColorBlack},
		},
	)

	tween := animation.TweenGradient(a, b, graphics.LerpGradient)
	mid := tween.Evaluate(0.5)
	fmt.Println(mid.Stops()[0].Color == mid.Stops()[1].Color)

	// Output:
	// true
}
