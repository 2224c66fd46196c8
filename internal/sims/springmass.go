package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// SpringMassSchema declares the oscillator controls.
var SpringMassSchema = engine.Schema{
	{Key: "mass", Label: "Mass", Min: 0.1, Max: 10, Step: 0.1, Default: 1, Unit: "kg"},
	{Key: "stiffness", Label: "Spring constant", Min: 1, Max: 100, Step: 1, Default: 20, Unit: "N/m"},
	{Key: "damping", Label: "Damping", Min: 0, Max: 20, Step: 0.1, Default: 0.2, Unit: "N·s/m"},
	{Key: "initialStretch", Label: "Initial stretch", Min: 0.1, Max: 2, Step: 0.05, Default: 1, Unit: "m"},
}

// SpringMass is a damped harmonic oscillator drawn as a coiled spring
// anchored to a wall, with a position trace underneath.
type SpringMass struct {
	surface engine.Surface
	w, h    int

	t    float64
	x, v float64

	m, k, c, stretch float64

	history []float64
}

// NewSpringMass returns a fresh oscillator engine.
func NewSpringMass() engine.Engine {
	return &SpringMass{}
}

func (s *SpringMass) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.m = SpringMassSchema.Value(nil, "mass")
	s.k = SpringMassSchema.Value(nil, "stiffness")
	s.c = SpringMassSchema.Value(nil, "damping")
	s.stretch = SpringMassSchema.Value(nil, "initialStretch")
	s.x = s.stretch
	s.history = make([]float64, 0, 256)
}

func (s *SpringMass) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *SpringMass) Update(dt float64, p engine.Params) {
	s.m = SpringMassSchema.Value(p, "mass")
	s.k = SpringMassSchema.Value(p, "stiffness")
	s.c = SpringMassSchema.Value(p, "damping")
	s.stretch = SpringMassSchema.Value(p, "initialStretch")

	a := (-s.k*s.x - s.c*s.v) / s.m
	s.v += a * dt
	s.x += s.v * dt
	s.t += dt

	s.history = append(s.history, s.x)
	if len(s.history) > 256 {
		s.history = s.history[1:]
	}
}

// Frequency returns the natural frequency sqrt(k/m)/(2*pi) in Hz.
func (s *SpringMass) Frequency() float64 {
	return math.Sqrt(s.k/s.m) / (2 * math.Pi)
}

// DampingRatio returns c / (2*sqrt(k*m)).
func (s *SpringMass) DampingRatio() float64 {
	return s.c / (2 * math.Sqrt(s.k*s.m))
}

func (s *SpringMass) Render() {
	s.surface.Clear()

	wallX := 4
	midY := s.h / 3
	restX := s.w / 2
	scale := fit(s.w/2, 2*s.stretch)
	massX := restX + int(s.x*scale)
	massX = clampI(massX, wallX+10, s.w-6)

	// Wall and spring coils.
	s.surface.Line(wallX, midY-8, wallX, midY+8)
	coils := 9
	span := massX - wallX - 4
	px, py := wallX, midY
	for i := 1; i <= coils; i++ {
		cx := wallX + span*i/coils
		cy := midY - 4
		if i%2 == 0 {
			cy = midY + 4
		}
		s.surface.Line(px, py, cx, cy)
		px, py = cx, cy
	}
	s.surface.Line(px, py, massX-3, midY)
	engine.Dot(s.surface, massX, midY, 3)

	// Position trace.
	traceY := s.h * 3 / 4
	if len(s.history) > 1 {
		step := float64(s.w-4) / float64(cap(s.history))
		hScale := fit(s.h/3, 2*s.stretch)
		qx, qy := 2, traceY-int(s.history[0]*hScale)
		for i := 1; i < len(s.history); i++ {
			nx := 2 + int(float64(i)*step)
			ny := traceY - int(s.history[i]*hScale)
			s.surface.Line(qx, qy, nx, ny)
			qx, qy = nx, ny
		}
	}
}

func (s *SpringMass) Reset() {
	s.t = 0
	s.x = s.stretch
	s.v = 0
	s.history = s.history[:0]
}

func (s *SpringMass) Destroy() {
	s.surface = nil
	s.history = nil
}

func (s *SpringMass) StateDescription() string {
	zeta := s.DampingRatio()
	regime := "underdamped (oscillating)"
	if zeta >= 1 {
		regime = "overdamped (no oscillation)"
	} else if zeta > 0.9 {
		regime = "near critically damped"
	}
	return fmt.Sprintf(
		"Spring-mass oscillator: m=%.1f kg, k=%.0f N/m, damping c=%.2f N·s/m. "+
			"Displacement %.3f m, velocity %.3f m/s after %.1f s. Natural frequency "+
			"%.2f Hz, damping ratio %.2f: the motion is %s.",
		s.m, s.k, s.c, s.x, s.v, s.t, s.Frequency(), zeta, regime)
}
