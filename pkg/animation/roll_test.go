package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
)

// fakeClock drives tickers deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func withFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	fake := &fakeClock{now: time.Unix(1000, 0)}
	prev := animation.SetClock(fake)
	t.Cleanup(func() { animation.SetClock(prev) })
	return fake
}

func TestNewRollController_RejectsBadConfig(t *testing.T) {
	if _, err := animation.NewRollController(1, -1, time.Second, false); err == nil {
		t.Error("expected error for min > max")
	}
	if _, err := animation.NewRollController(0, 1, 0, false); err == nil {
		t.Error("expected error for zero period")
	}
	if _, err := animation.NewRollController(0, 1, -time.Second, false); err == nil {
		t.Error("expected error for negative period")
	}
}

func TestRollController_SawtoothResetsEveryPeriod(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(0, 1, time.Second, false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Start()

	step := func(d time.Duration) float64 {
		clock.advance(d)
		animation.StepTickers()
		return c.Value()
	}

	if got := step(250 * time.Millisecond); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("at 0.25s got %v, want 0.25", got)
	}
	if got := step(500 * time.Millisecond); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("at 0.75s got %v, want 0.75", got)
	}
	// Crossing the period boundary restarts at min.
	if got := step(250 * time.Millisecond); math.Abs(got) > 1e-9 {
		t.Errorf("at 1.0s got %v, want reset to 0", got)
	}
	if got := step(100 * time.Millisecond); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("at 1.1s got %v, want 0.1", got)
	}
}

func TestRollController_TriangleWavePingPongs(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(-1, 1, 2*time.Second, true)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Start()

	step := func(d time.Duration) float64 {
		clock.advance(d)
		animation.StepTickers()
		return c.Value()
	}

	// Ascending through zero, peak at half period, descending back.
	if got := step(500 * time.Millisecond); math.Abs(got) > 1e-9 {
		t.Errorf("at 0.5s got %v, want 0", got)
	}
	if got := step(500 * time.Millisecond); math.Abs(got-1) > 1e-9 {
		t.Errorf("at 1.0s got %v, want 1", got)
	}
	if got := step(500 * time.Millisecond); math.Abs(got) > 1e-9 {
		t.Errorf("at 1.5s got %v, want 0", got)
	}
	if got := step(500 * time.Millisecond); math.Abs(got-(-1)) > 1e-9 {
		t.Errorf("at 2.0s got %v, want -1", got)
	}
}

func TestRollController_TriangleContinuousAtTurningPoint(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(0, 1, time.Second, true)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Start()

	var prev float64
	first := true
	for i := 0; i < 40; i++ {
		clock.advance(50 * time.Millisecond)
		animation.StepTickers()
		v := c.Value()
		if !first {
			if jump := math.Abs(v - prev); jump > 0.11 {
				t.Fatalf("discontinuity: %v -> %v", prev, v)
			}
		}
		prev, first = v, false
	}
}

func TestRollController_ListenersObserveSameTick(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(0, 1, time.Second, false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Start()

	var seen []float64
	for i := 0; i < 3; i++ {
		c.AddListener(func() { seen = append(seen, c.Value()) })
	}

	clock.advance(300 * time.Millisecond)
	animation.StepTickers()

	if len(seen) != 3 {
		t.Fatalf("expected 3 listener calls, got %d", len(seen))
	}
	for _, v := range seen {
		if v != seen[0] {
			t.Errorf("listeners observed different tick values: %v", seen)
		}
	}
}

func TestRollController_RemoveListener(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(0, 1, time.Second, false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Start()

	calls := 0
	remove := c.AddListener(func() { calls++ })

	clock.advance(100 * time.Millisecond)
	animation.StepTickers()
	remove()
	clock.advance(100 * time.Millisecond)
	animation.StepTickers()

	if calls != 1 {
		t.Errorf("expected 1 call after removal, got %d", calls)
	}
}

func TestRollController_NoCallbacksAfterDispose(t *testing.T) {
	clock := withFakeClock(t)
	c, err := animation.NewRollController(0, 1, time.Second, false)
	if err != nil {
		t.Fatal(err)
	}
	c.Start()

	calls := 0
	c.AddListener(func() { calls++ })
	c.Dispose()

	clock.advance(time.Second)
	animation.StepTickers()

	if calls != 0 {
		t.Errorf("expected no callbacks after dispose, got %d", calls)
	}
	if c.IsAnimating() {
		t.Error("disposed controller should not be animating")
	}
	if animation.HasActiveTickers() {
		t.Error("disposed controller should release its ticker")
	}
}
