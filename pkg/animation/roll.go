package animation

import (
	"fmt"
	"math"
	"time"
)

// RollController is the cyclic driver: a continuously oscillating
// scalar shared by every shimmer pipeline inside one roll scope,
// independent of user input.
//
// The value oscillates between Min and Max over Period. With Reverse
// false the wave is a sawtooth that restarts at Min each period; with
// Reverse true it is a triangle wave that ping-pongs Min to Max and
// back within one period, continuous at the turning points.
//
// The controller accumulates elapsed time without bound and maps it
// into [Min, Max] on every tick, so long-running oscillations never
// drift. Listeners are notified after the value is updated; within one
// frame every listener observes the same tick value.
//
// The owning scope calls Start once, and Dispose exactly once when the
// scope unmounts. Dispose releases the clock subscription and drops
// all listeners; no callback fires afterwards. Children reading the
// value must not start, stop, or reconfigure the controller.
type RollController struct {
	min     float64
	max     float64
	period  time.Duration
	reverse bool

	value     float64
	ticker    *Ticker
	listeners []rollListener
	nextID    int
	disposed  bool
}

type rollListener struct {
	id int
	fn func()
}

// NewRollController validates the oscillation bounds and period.
// Min greater than Max or a non-positive period is a configuration
// error, rejected here rather than producing undefined oscillation at
// runtime.
func NewRollController(min, max float64, period time.Duration, reverse bool) (*RollController, error) {
	if min > max {
		return nil, fmt.Errorf("animation: roll min %v greater than max %v", min, max)
	}
	if period <= 0 {
		return nil, fmt.Errorf("animation: roll period must be positive, got %v", period)
	}
	return &RollController{
		min:     min,
		max:     max,
		period:  period,
		reverse: reverse,
		value:   min,
	}, nil
}

// Start begins oscillating. Starting an already-running or disposed
// controller is a no-op.
func (c *RollController) Start() {
	if c.disposed || c.ticker != nil {
		return
	}
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

// Stop halts the oscillation at the current value. The controller can
// be started again; the wave restarts from phase zero.
func (c *RollController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Dispose stops the controller and detaches every listener. Further
// ticks and notifications are guaranteed not to fire.
func (c *RollController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.disposed = true
}

// Value returns the current oscillator value in [Min, Max].
func (c *RollController) Value() float64 {
	return c.value
}

// Min returns the lower oscillation bound.
func (c *RollController) Min() float64 { return c.min }

// Max returns the upper oscillation bound.
func (c *RollController) Max() float64 { return c.max }

// Period returns the oscillation period.
func (c *RollController) Period() time.Duration { return c.period }

// IsAnimating reports whether the controller is currently running.
func (c *RollController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener registers a callback fired after each tick updates the
// value. Returns an unsubscribe function. Listeners fire in
// registration order.
func (c *RollController) AddListener(fn func()) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, rollListener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *RollController) tick(elapsed time.Duration) {
	c.value = c.valueAt(elapsed)
	for _, l := range c.listeners {
		l.fn()
	}
}

// valueAt maps unbounded elapsed time into [min, max].
func (c *RollController) valueAt(elapsed time.Duration) float64 {
	frac := math.Mod(float64(elapsed)/float64(c.period), 1)
	if frac < 0 {
		frac += 1
	}
	if c.reverse {
		// Triangle wave: up the first half period, back down the second.
		frac = 1 - math.Abs(2*frac-1)
	}
	return c.min + (c.max-c.min)*frac
}
