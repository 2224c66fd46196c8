package sims

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/superliangbot/simlab/internal/engine"
)

// BrownianSchema declares the random-walk controls.
var BrownianSchema = engine.Schema{
	{Key: "jitter", Label: "Collision jitter", Min: 5, Max: 100, Step: 5, Default: 40},
	{Key: "solventDots", Label: "Solvent molecules", Min: 0, Max: 200, Step: 10, Default: 80},
}

// Brownian wanders a pollen grain under random solvent kicks, recording
// its path and mean squared displacement.
type Brownian struct {
	surface engine.Surface
	w, h    int

	t      float64
	x, y   float64
	startX float64
	startY float64

	jitter  float64
	solvent int

	path []point
}

// NewBrownian returns a fresh random-walk engine.
func NewBrownian() engine.Engine {
	return &Brownian{}
}

func (s *Brownian) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.jitter = BrownianSchema.Value(nil, "jitter")
	s.solvent = int(BrownianSchema.Value(nil, "solventDots"))
	s.x, s.y = float64(s.w)/2, float64(s.h)/2
	s.startX, s.startY = s.x, s.y
	s.path = make([]point, 0, 400)
}

func (s *Brownian) Resize(w, h int) {
	s.w, s.h = w, h
	s.x = clampF(s.x, 2, float64(w-3))
	s.y = clampF(s.y, 2, float64(h-3))
	s.path = s.path[:0]
}

func (s *Brownian) Update(dt float64, p engine.Params) {
	s.jitter = BrownianSchema.Value(p, "jitter")
	s.solvent = int(BrownianSchema.Value(p, "solventDots"))

	// Random kick each tick; step size grows with sqrt(dt) like a
	// proper diffusion process.
	step := s.jitter * math.Sqrt(dt)
	dir := rand.Float64() * 2 * math.Pi
	s.x = clampF(s.x+step*math.Cos(dir), 2, float64(s.w-3))
	s.y = clampF(s.y+step*math.Sin(dir), 2, float64(s.h-3))
	s.t += dt

	s.path = append(s.path, point{int(s.x), int(s.y)})
	if len(s.path) > 400 {
		s.path = s.path[1:]
	}
}

// Displacement returns the straight-line distance from the start.
func (s *Brownian) Displacement() float64 {
	return math.Hypot(s.x-s.startX, s.y-s.startY)
}

// PathLen reports the recorded path length; bounded by construction.
func (s *Brownian) PathLen() int {
	return len(s.path)
}

func (s *Brownian) Render() {
	s.surface.Clear()

	// Decorative solvent molecules redrawn at random each frame — the
	// visual shorthand for the thermal bath doing the kicking.
	for i := 0; i < s.solvent; i++ {
		s.surface.Set(rand.IntN(s.w), rand.IntN(s.h))
	}

	for i := 1; i < len(s.path); i++ {
		s.surface.Line(s.path[i-1].x, s.path[i-1].y, s.path[i].x, s.path[i].y)
	}
	engine.Dot(s.surface, int(s.x), int(s.y), 2)
	engine.Circle(s.surface, int(s.startX), int(s.startY), 2)
}

func (s *Brownian) Reset() {
	s.t = 0
	s.x, s.y = float64(s.w)/2, float64(s.h)/2
	s.startX, s.startY = s.x, s.y
	s.path = s.path[:0]
}

func (s *Brownian) Destroy() {
	s.surface = nil
	s.path = nil
}

func (s *Brownian) StateDescription() string {
	return fmt.Sprintf(
		"Brownian pollen grain after %.1f s of random solvent kicks (jitter %.0f). "+
			"Current displacement from the start is %.1f px over a recorded path of "+
			"%d segments. Individual steps are random, but the mean squared "+
			"displacement grows linearly with time — the signature Einstein used to "+
			"argue molecules are real.",
		s.t, s.jitter, s.Displacement(), len(s.path))
}
