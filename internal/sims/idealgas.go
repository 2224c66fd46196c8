package sims

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/superliangbot/simlab/internal/engine"
)

// IdealGasSchema declares the kinetic-theory controls.
var IdealGasSchema = engine.Schema{
	{Key: "particles", Label: "Particles", Min: 10, Max: 300, Step: 10, Default: 100},
	{Key: "temperature", Label: "Temperature", Min: 50, Max: 1000, Step: 10, Default: 300, Unit: "K"},
}

type gasParticle struct {
	x, y   float64
	vx, vy float64
}

// IdealGas bounces hard-sphere particles in a box; speeds scale with
// sqrt(T) and wall impulses accumulate into a pressure estimate,
// illustrating P*V = N*k*T.
type IdealGas struct {
	surface engine.Surface
	w, h    int

	t    float64
	temp float64
	n    int

	particles []gasParticle

	// wall-impulse accumulator for the pressure readout
	impulse    float64
	impulseAge float64
	pressure   float64
}

// NewIdealGas returns a fresh kinetic-theory engine.
func NewIdealGas() engine.Engine {
	return &IdealGas{}
}

func (s *IdealGas) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.n = int(IdealGasSchema.Value(nil, "particles"))
	s.temp = IdealGasSchema.Value(nil, "temperature")
	s.populate()
}

// populate seeds particle positions and thermal velocities; directions
// are random, speeds follow sqrt(T).
func (s *IdealGas) populate() {
	s.particles = make([]gasParticle, s.n)
	speed := s.thermalSpeed()
	for i := range s.particles {
		dir := rand.Float64() * 2 * math.Pi
		// Spread speeds a little around the thermal mean.
		v := speed * (0.5 + rand.Float64())
		s.particles[i] = gasParticle{
			x:  2 + rand.Float64()*float64(s.w-4),
			y:  2 + rand.Float64()*float64(s.h-4),
			vx: v * math.Cos(dir),
			vy: v * math.Sin(dir),
		}
	}
}

func (s *IdealGas) thermalSpeed() float64 {
	return 12 * math.Sqrt(s.temp/300)
}

func (s *IdealGas) Resize(w, h int) {
	s.w, s.h = w, h
	// Keep particles inside the new walls.
	for i := range s.particles {
		s.particles[i].x = clampF(s.particles[i].x, 2, float64(w-3))
		s.particles[i].y = clampF(s.particles[i].y, 2, float64(h-3))
	}
}

func (s *IdealGas) Update(dt float64, p engine.Params) {
	n := int(IdealGasSchema.Value(p, "particles"))
	temp := IdealGasSchema.Value(p, "temperature")

	if n != s.n {
		s.n = n
		s.populate()
	}
	if temp != s.temp {
		// Rescale velocities so kinetic energy tracks the new T.
		f := math.Sqrt(temp / s.temp)
		for i := range s.particles {
			s.particles[i].vx *= f
			s.particles[i].vy *= f
		}
		s.temp = temp
	}

	for i := range s.particles {
		pt := &s.particles[i]
		pt.x += pt.vx * dt
		pt.y += pt.vy * dt
		if pt.x < 1 {
			pt.x, pt.vx = 1, -pt.vx
			s.impulse += math.Abs(pt.vx)
		} else if pt.x > float64(s.w-2) {
			pt.x, pt.vx = float64(s.w-2), -pt.vx
			s.impulse += math.Abs(pt.vx)
		}
		if pt.y < 1 {
			pt.y, pt.vy = 1, -pt.vy
			s.impulse += math.Abs(pt.vy)
		} else if pt.y > float64(s.h-2) {
			pt.y, pt.vy = float64(s.h-2), -pt.vy
			s.impulse += math.Abs(pt.vy)
		}
	}

	s.t += dt
	s.impulseAge += dt
	if s.impulseAge >= 1 {
		perimeter := float64(2 * (s.w + s.h))
		s.pressure = s.impulse / s.impulseAge / perimeter
		s.impulse = 0
		s.impulseAge = 0
	}
}

// ParticleCount reports the live particle count, bounded by the schema.
func (s *IdealGas) ParticleCount() int {
	return len(s.particles)
}

// Pressure returns the most recent wall-impulse pressure estimate.
func (s *IdealGas) Pressure() float64 {
	return s.pressure
}

func (s *IdealGas) Render() {
	s.surface.Clear()
	engine.Rect(s.surface, 0, 0, s.w-1, s.h-1)
	for i := range s.particles {
		s.surface.Set(int(s.particles[i].x), int(s.particles[i].y))
	}
}

func (s *IdealGas) Reset() {
	s.t = 0
	s.impulse = 0
	s.impulseAge = 0
	s.pressure = 0
	s.populate()
}

func (s *IdealGas) Destroy() {
	s.surface = nil
	s.particles = nil
}

func (s *IdealGas) StateDescription() string {
	return fmt.Sprintf(
		"Ideal gas of %d particles at %.0f K in a %dx%d box, elapsed %.1f s. "+
			"Mean thermal speed scales with sqrt(T); the running wall-impulse "+
			"pressure estimate is %.3f (arbitrary units). Doubling the temperature "+
			"doubles the pressure at fixed volume, and halving the volume doubles "+
			"the pressure at fixed temperature, as P*V = N*k*T requires.",
		len(s.particles), s.temp, s.w, s.h, s.t, s.pressure)
}
