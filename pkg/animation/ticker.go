// Package animation provides the timing primitives behind the shimmer
// pipeline: a frame-driven ticker registry, easing curves, retargetable
// tween channels, and the shared roll oscillator.
//
// Everything here is single-threaded by contract. Tickers fire from
// [StepTickers], which the host calls once per frame; all state
// transitions happen inside that call or inside the caller's own event
// handling, never concurrently.
package animation

import "time"

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [RollController]
// and by hosts driving [Channel] updates. The callback receives the
// elapsed time since Start was called. Tickers are driven by the host
// frame loop via [StepTickers], which delivers callbacks in Start
// order; a ticker stopped mid-frame receives no further callbacks,
// including later in the same frame.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// activeTickers holds running tickers in Start order. Registration
// order is part of the clock contract: listeners observe frames in the
// order they subscribed.
var activeTickers []*Ticker

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	activeTickers = append(activeTickers, t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	for i, active := range activeTickers {
		if active == t {
			activeTickers = append(activeTickers[:i], activeTickers[i+1:]...)
			break
		}
	}
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers against a single time sample,
// so every listener of one frame observes the same instant. Called once
// per frame by the host.
func StepTickers() {
	if len(activeTickers) == 0 {
		return
	}
	now := Now()
	// Callbacks may start or stop tickers; iterate over a snapshot and
	// re-check activity so a ticker stopped earlier in the frame stays
	// silent.
	snapshot := make([]*Ticker, len(activeTickers))
	copy(snapshot, activeTickers)
	for _, ticker := range snapshot {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	return len(activeTickers) > 0
}
