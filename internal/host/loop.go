// Package host drives a simulation engine against wall-clock time. It
// owns the drawing surface, applies resize observations strictly between
// ticks, and enforces the capped-delta tick discipline, independent of
// whichever shell (TUI, GUI, headless CLI) supplies the cadence.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/superliangbot/simlab/internal/engine"
)

// MaxDelta caps the per-tick time step so a stalled frame (backgrounded
// terminal, slow redraw) cannot inject a destabilizing jump of simulated
// time.
const MaxDelta = 50 * time.Millisecond

// State names the loop's lifecycle phase.
type State int

const (
	// Unbound: no engine attached; ticks are no-ops.
	Unbound State = iota
	// Initialized: engine bound, Init and the initial Resize done,
	// waiting for Start.
	Initialized
	// Running: update/render pairs fire on every tick.
	Running
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	default:
		return "unbound"
	}
}

type pendingResize struct {
	w, h int
}

// Loop is the host tick driver. It is single-goroutine by construction:
// the caller owns the cadence, so exactly one update/render pair is ever
// in flight and resizes never interleave with a tick.
type Loop struct {
	logger *log.Logger

	state   State
	eng     engine.Engine
	surface engine.Surface
	params  engine.Params

	paused  bool
	ticked  bool
	last    time.Time
	elapsed float64

	resize *pendingResize

	ticks   uint64
	updates uint64
	renders uint64
}

// New creates an unbound loop. A nil logger silences diagnostics.
func New(logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{logger: logger}
}

// Bind attaches an engine to a surface: Init, then one Resize with the
// surface's current dimensions. A previously bound engine is destroyed
// first, so swapping simulations never leaks an instance.
func (l *Loop) Bind(eng engine.Engine, s engine.Surface) {
	if l.state != Unbound {
		l.Close()
	}
	l.eng = eng
	l.surface = s
	if l.params == nil {
		l.params = engine.Params{}
	}
	eng.Init(s)
	w, h := s.Size()
	eng.Resize(w, h)
	l.state = Initialized
	l.ticked = false
	l.elapsed = 0
	l.logger.Debug("engine bound", "surface", [2]int{w, h})
}

// Start moves the loop into Running. The next Tick is treated as the
// first: its delta is zero regardless of wall-clock history.
func (l *Loop) Start() {
	if l.state != Initialized {
		return
	}
	l.state = Running
	l.ticked = false
}

// Tick advances one frame. The delta is the wall-clock gap since the
// previous tick, clamped to MaxDelta; the first tick after Start uses
// zero. A queued resize is applied before the update/render pair. While
// paused, Update is skipped but Render still runs so presentation stays
// live.
func (l *Loop) Tick(now time.Time) {
	if l.state != Running {
		return
	}

	var dt float64
	if l.ticked {
		dt = now.Sub(l.last).Seconds()
		if dt < 0 {
			dt = 0
		}
		if limit := MaxDelta.Seconds(); dt > limit {
			dt = limit
		}
	}
	l.ticked = true
	l.last = now

	if r := l.resize; r != nil {
		l.resize = nil
		l.eng.Resize(r.w, r.h)
	}

	if !l.paused {
		l.eng.Update(dt, l.params)
		l.elapsed += dt
		l.updates++
	}
	l.eng.Render()
	l.renders++
	l.ticks++
}

// NotifyResize queues new surface dimensions, to be applied strictly
// between ticks. Observations arriving while Unbound are dropped; Bind
// always performs the initial resize itself, so Init precedes the first
// Resize.
func (l *Loop) NotifyResize(w, h int) {
	if l.state == Unbound {
		return
	}
	if w < 1 || h < 1 {
		return
	}
	l.resize = &pendingResize{w: w, h: h}
}

// SetParams replaces the parameter snapshot handed to Update each tick.
// The map is copied; the caller keeps ownership of its own map.
func (l *Loop) SetParams(p engine.Params) {
	l.params = p.Clone()
}

// Params returns the loop's current snapshot (a copy).
func (l *Loop) Params() engine.Params {
	return l.params.Clone()
}

// SetPaused freezes or resumes simulated time. Pausing never leaves the
// Running state.
func (l *Loop) SetPaused(v bool) { l.paused = v }

// TogglePause flips the pause flag and reports the new value.
func (l *Loop) TogglePause() bool {
	l.paused = !l.paused
	return l.paused
}

// Reset restores the bound engine to initial conditions and zeroes the
// loop's elapsed-time accumulator.
func (l *Loop) Reset() {
	if l.state == Unbound {
		return
	}
	l.eng.Reset()
	l.elapsed = 0
}

// Close cancels the tick loop and destroys the bound engine exactly
// once. Safe to call repeatedly.
func (l *Loop) Close() {
	if l.state == Unbound {
		return
	}
	l.eng.Destroy()
	l.eng = nil
	l.surface = nil
	l.resize = nil
	l.params = nil
	l.state = Unbound
	l.logger.Debug("engine destroyed")
}

// Advance drives the bound engine headlessly: fixed steps of step
// seconds until duration has elapsed, then a single render. Used by the
// CLI describe/snapshot paths where no frame callback exists.
func (l *Loop) Advance(duration, step float64) {
	if l.state == Unbound || step <= 0 || duration < 0 {
		return
	}
	if limit := MaxDelta.Seconds(); step > limit {
		step = limit
	}
	for t := 0.0; t < duration; t += step {
		d := step
		if rem := duration - t; rem < d {
			d = rem
		}
		l.eng.Update(d, l.params)
		l.elapsed += d
		l.updates++
	}
	l.eng.Render()
	l.renders++
}

// Describe proxies the engine's state description; empty while Unbound.
func (l *Loop) Describe() string {
	if l.state == Unbound {
		return ""
	}
	return l.eng.StateDescription()
}

func (l *Loop) State() State     { return l.state }
func (l *Loop) Paused() bool     { return l.paused }
func (l *Loop) Elapsed() float64 { return l.elapsed }
func (l *Loop) Ticks() uint64    { return l.ticks }
func (l *Loop) Updates() uint64  { return l.updates }
func (l *Loop) Renders() uint64  { return l.renders }
