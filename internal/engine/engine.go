package engine

// Params is the per-tick snapshot of slider values, keyed by the
// parameter keys a simulation declares in its Schema. The map is handed
// to Update by value each tick; engines must not retain or mutate it.
type Params map[string]float64

// Clone returns an independent copy of the snapshot.
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Engine is the lifecycle contract of one running simulation.
//
// The lifecycle is strictly Init → Resize* → (Update → Render)* → Destroy,
// with Reset usable any number of times between Init and Destroy. All
// methods are total over their documented domain: an engine degrades
// gracefully (clamping, ignoring) rather than returning errors, because
// there is no error channel back to the host.
type Engine interface {
	// Init binds the engine to its drawing surface and allocates internal
	// buffers sized to the surface's current dimensions. Called exactly
	// once per instance, before any other method.
	Init(s Surface)

	// Resize updates layout-dependent state to the new pixel dimensions.
	// Simulated time and user-visible state survive a resize; purely
	// decorative random elements may be regenerated.
	Resize(width, height int)

	// Update advances simulated state by dt seconds using the given
	// parameter snapshot. dt is non-negative and pre-clamped upstream.
	// Missing keys fall back to the declared defaults; out-of-range
	// values are clamped. No drawing happens here.
	Update(dt float64, p Params)

	// Render draws the current state to the bound surface. The host does
	// not clear the surface between frames, so Render repaints fully (or
	// manages its own persistence effects). No state mutation.
	Render()

	// Reset restores initial conditions as if freshly initialized,
	// without rebinding the surface.
	Reset()

	// Destroy releases retained buffers. The instance is unusable
	// afterwards.
	Destroy()

	// StateDescription returns a human-readable summary of the current
	// simulation state (values, derived quantities, regime labels) for
	// external consumption. Safe to call any time after Init.
	StateDescription() string
}
