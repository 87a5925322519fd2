package animation

import "time"

// Channel is a retargetable scalar tween: one positional lane of the
// shimmer pipeline. It holds a begin value, an end value, and the
// elapsed portion of its duration, and evaluates as
//
//	begin + (end-begin) * curve(clamp(elapsed/total, 0, 1))
//
// Retargeting a channel mid-flight restarts the tween from the
// instantaneous evaluated value rather than the previous target, so an
// interrupted animation never jumps. Channels are plain state holders
// decoupled from any host lifecycle: the owner calls SetTarget when an
// input changes and Tick once per frame.
type Channel struct {
	begin   float64
	end     float64
	elapsed time.Duration
	total   time.Duration
	curve   Curve
}

// NewChannel creates a channel seeded at the given initial value. The
// seed is a zero-length no-op tween: begin and end both equal initial
// and the channel reports done until the first retarget.
func NewChannel(initial float64, total time.Duration, curve Curve) *Channel {
	if curve == nil {
		curve = LinearCurve
	}
	return &Channel{
		begin:   initial,
		end:     initial,
		elapsed: total,
		total:   total,
		curve:   curve,
	}
}

// SetTarget retargets the channel. The tween restarts from the current
// evaluated value with elapsed reset to zero. Setting the target the
// channel already has is a no-op, so feeding an unchanged input every
// frame does not hold the channel at its begin value forever.
func (c *Channel) SetTarget(target float64) {
	if target == c.end {
		return
	}
	c.begin = c.Value()
	c.end = target
	c.elapsed = 0
}

// Tick advances the channel by dt and returns the evaluated value.
// A dormant channel (elapsed >= total) holds its end value.
func (c *Channel) Tick(dt time.Duration) float64 {
	if c.elapsed < c.total {
		c.elapsed += dt
		if c.elapsed > c.total {
			c.elapsed = c.total
		}
	}
	return c.Value()
}

// Value evaluates the channel at its current elapsed time without
// advancing it.
func (c *Channel) Value() float64 {
	if c.total <= 0 || c.elapsed >= c.total {
		return c.end
	}
	t := clampUnit(float64(c.elapsed) / float64(c.total))
	return c.begin + (c.end-c.begin)*c.curve(t)
}

// Target returns the value the channel is tweening toward.
func (c *Channel) Target() float64 {
	return c.end
}

// Done reports whether the channel has reached its target.
func (c *Channel) Done() bool {
	return c.total <= 0 || c.elapsed >= c.total
}

// SetDuration changes the tween duration for subsequent retargets.
// The in-flight tween keeps its progress fraction so the change does
// not cause a visible jump.
func (c *Channel) SetDuration(total time.Duration) {
	if total == c.total {
		return
	}
	if c.total > 0 && c.elapsed < c.total {
		frac := float64(c.elapsed) / float64(c.total)
		c.elapsed = time.Duration(frac * float64(total))
	} else {
		c.elapsed = total
	}
	c.total = total
}

// SetCurve changes the easing curve. A nil curve resets to linear.
func (c *Channel) SetCurve(curve Curve) {
	if curve == nil {
		curve = LinearCurve
	}
	c.curve = curve
}
