package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// OrbitSchema declares the two-body controls.
var OrbitSchema = engine.Schema{
	{Key: "centralMass", Label: "Central mass", Min: 0.5, Max: 5, Step: 0.1, Default: 1, Unit: "M☉"},
	{Key: "startRadius", Label: "Start radius", Min: 0.4, Max: 3, Step: 0.05, Default: 1, Unit: "AU"},
	{Key: "velocityFactor", Label: "Velocity factor", Min: 0.4, Max: 1.5, Step: 0.05, Default: 1},
}

// Orbit integrates a planet around a fixed star with semi-implicit
// Euler in units where G*M☉ = 4π² (AU, years). A velocity factor of 1
// launches a circular orbit; less makes it elliptical, more escapes.
type Orbit struct {
	surface engine.Surface
	w, h    int

	t      float64
	x, y   float64
	vx, vy float64

	mass, r0, vf float64

	trail []point
}

// NewOrbit returns a fresh two-body engine.
func NewOrbit() engine.Engine {
	return &Orbit{}
}

const gm0 = 4 * math.Pi * math.Pi // G*M in AU³/yr² for one solar mass

func (s *Orbit) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.mass = OrbitSchema.Value(nil, "centralMass")
	s.r0 = OrbitSchema.Value(nil, "startRadius")
	s.vf = OrbitSchema.Value(nil, "velocityFactor")
	s.launch()
	s.trail = make([]point, 0, 600)
}

// launch places the planet at (r0, 0) with a tangential velocity vf
// times the local circular speed.
func (s *Orbit) launch() {
	s.x, s.y = s.r0, 0
	vCirc := math.Sqrt(gm0 * s.mass / s.r0)
	s.vx, s.vy = 0, s.vf*vCirc
}

func (s *Orbit) Resize(w, h int) {
	s.w, s.h = w, h
	s.trail = s.trail[:0]
}

func (s *Orbit) Update(dt float64, p engine.Params) {
	s.mass = OrbitSchema.Value(p, "centralMass")
	s.r0 = OrbitSchema.Value(p, "startRadius")
	s.vf = OrbitSchema.Value(p, "velocityFactor")

	// Slow the clock: one simulated second is a fraction of a year.
	dt *= 0.3

	r := math.Hypot(s.x, s.y)
	if r < 0.02 {
		r = 0.02
	}
	a := gm0 * s.mass / (r * r)
	s.vx += -a * s.x / r * dt
	s.vy += -a * s.y / r * dt
	s.x += s.vx * dt
	s.y += s.vy * dt
	s.t += dt

	px, py := s.planet()
	s.trail = append(s.trail, point{px, py})
	if len(s.trail) > 600 {
		s.trail = s.trail[1:]
	}
}

// planet returns the planet's pixel position for the current layout.
func (s *Orbit) planet() (int, int) {
	scale := fit(minI(s.w, s.h), 4*s.r0)
	return s.w/2 + int(s.x*scale), s.h/2 - int(s.y*scale)
}

// Radius returns the current orbital distance in AU.
func (s *Orbit) Radius() float64 {
	return math.Hypot(s.x, s.y)
}

// Speed returns the current orbital speed in AU/yr.
func (s *Orbit) Speed() float64 {
	return math.Hypot(s.vx, s.vy)
}

// SpecificEnergy returns v²/2 - GM/r; negative means bound.
func (s *Orbit) SpecificEnergy() float64 {
	v := s.Speed()
	return v*v/2 - gm0*s.mass/s.Radius()
}

func (s *Orbit) Render() {
	s.surface.Clear()

	cx, cy := s.w/2, s.h/2
	px, py := s.planet()

	for _, pt := range s.trail {
		s.surface.Set(pt.x, pt.y)
	}

	engine.Dot(s.surface, cx, cy, 2) // the star
	engine.Dot(s.surface, px, py, 1)
}

func (s *Orbit) Reset() {
	s.t = 0
	s.launch()
	s.trail = s.trail[:0]
}

func (s *Orbit) Destroy() {
	s.surface = nil
	s.trail = nil
}

func (s *Orbit) StateDescription() string {
	e := s.SpecificEnergy()
	regime := "bound (elliptical)"
	if e >= 0 {
		regime = "unbound (escaping)"
	} else if math.Abs(s.vf-1) < 0.02 {
		regime = "near-circular"
	}
	desc := fmt.Sprintf(
		"Planet orbiting a %.1f solar-mass star: distance %.2f AU, speed %.2f AU/yr "+
			"after %.2f yr. Specific orbital energy %.2f (v²/2 − GM/r): the orbit is %s.",
		s.mass, s.Radius(), s.Speed(), s.t, e, regime)
	if e < 0 {
		sma := -gm0 * s.mass / (2 * e)
		period := 2 * math.Pi * math.Sqrt(sma*sma*sma/(gm0*s.mass))
		desc += fmt.Sprintf(" Semi-major axis %.2f AU gives a Kepler period of %.2f yr "+
			"(T² ∝ a³).", sma, period)
	}
	return desc
}
