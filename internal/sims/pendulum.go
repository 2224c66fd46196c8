package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// PendulumSchema declares the pendulum controls.
var PendulumSchema = engine.Schema{
	{Key: "length", Label: "Length", Min: 0.2, Max: 3, Step: 0.05, Default: 1, Unit: "m"},
	{Key: "gravity", Label: "Gravity", Min: 1, Max: 25, Step: 0.1, Default: 9.81, Unit: "m/s²"},
	{Key: "damping", Label: "Damping", Min: 0, Max: 1, Step: 0.01, Default: 0.1},
	{Key: "initialAngle", Label: "Release angle", Min: 5, Max: 170, Step: 1, Default: 30, Unit: "deg"},
}

// Pendulum integrates the full (non-small-angle) pendulum equation with
// semi-implicit Euler and traces the bob's path.
type Pendulum struct {
	surface engine.Surface
	w, h    int

	t     float64
	theta float64
	omega float64

	length, g, damping, release float64

	trail []point
}

type point struct{ x, y int }

// NewPendulum returns a fresh pendulum engine.
func NewPendulum() engine.Engine {
	return &Pendulum{}
}

func (s *Pendulum) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.length = PendulumSchema.Value(nil, "length")
	s.g = PendulumSchema.Value(nil, "gravity")
	s.damping = PendulumSchema.Value(nil, "damping")
	s.release = PendulumSchema.Value(nil, "initialAngle")
	s.theta = deg2rad(s.release)
	s.trail = make([]point, 0, 128)
}

func (s *Pendulum) Resize(w, h int) {
	s.w, s.h = w, h
	s.trail = s.trail[:0] // trail coordinates are layout-dependent
}

func (s *Pendulum) Update(dt float64, p engine.Params) {
	s.length = PendulumSchema.Value(p, "length")
	s.g = PendulumSchema.Value(p, "gravity")
	s.damping = PendulumSchema.Value(p, "damping")

	// A new release angle takes effect on Reset, not mid-swing.
	s.release = PendulumSchema.Value(p, "initialAngle")

	alpha := -s.g/s.length*math.Sin(s.theta) - s.damping*s.omega
	s.omega += alpha * dt
	s.theta += s.omega * dt
	s.t += dt

	bx, by := s.bob()
	s.trail = append(s.trail, point{bx, by})
	if len(s.trail) > 128 {
		s.trail = s.trail[1:]
	}
}

// bob returns the bob's pixel position for the current angle.
func (s *Pendulum) bob() (int, int) {
	cx, cy := s.w/2, 4
	armLen := float64(s.h) * 0.7
	return cx + int(armLen*math.Sin(s.theta)), cy + int(armLen*math.Cos(s.theta))
}

// Period returns the small-angle period 2*pi*sqrt(L/g).
func (s *Pendulum) Period() float64 {
	return 2 * math.Pi * math.Sqrt(s.length/s.g)
}

// Energy returns the total mechanical energy per unit mass.
func (s *Pendulum) Energy() float64 {
	v := s.length * s.omega
	return 0.5*v*v + s.g*s.length*(1-math.Cos(s.theta))
}

func (s *Pendulum) Render() {
	s.surface.Clear()

	cx, cy := s.w/2, 4
	bx, by := s.bob()

	for _, pt := range s.trail {
		s.surface.Set(pt.x, pt.y)
	}

	engine.Dot(s.surface, cx, cy, 1)
	s.surface.Line(cx, cy, bx, by)
	engine.Dot(s.surface, bx, by, 2)
}

func (s *Pendulum) Reset() {
	s.t = 0
	s.theta = deg2rad(s.release)
	s.omega = 0
	s.trail = s.trail[:0]
}

func (s *Pendulum) Destroy() {
	s.surface = nil
	s.trail = nil
}

func (s *Pendulum) StateDescription() string {
	regime := "small-angle (simple harmonic)"
	if math.Abs(s.theta) > deg2rad(30) {
		regime = "large-angle (anharmonic)"
	}
	return fmt.Sprintf(
		"Pendulum of length %.2f m under g=%.2f m/s² with damping %.2f, released "+
			"from %.0f deg. Current angle %.1f deg, angular velocity %.2f rad/s, "+
			"mechanical energy %.2f J/kg, elapsed %.1f s. Small-angle period "+
			"2*pi*sqrt(L/g) = %.2f s; the swing is currently in the %s regime.",
		s.length, s.g, s.damping, s.release,
		rad2deg(s.theta), s.omega, s.Energy(), s.t, s.Period(), regime)
}
