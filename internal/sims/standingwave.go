package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// StandingWaveSchema declares the vibrating-string controls.
var StandingWaveSchema = engine.Schema{
	{Key: "harmonic", Label: "Harmonic", Min: 1, Max: 8, Step: 1, Default: 2},
	{Key: "amplitude", Label: "Amplitude", Min: 0.1, Max: 1, Step: 0.05, Default: 0.8},
	{Key: "frequency", Label: "Base frequency", Min: 0.2, Max: 4, Step: 0.1, Default: 1, Unit: "Hz"},
}

// StandingWave vibrates a clamped string in its n-th normal mode:
// y(x,t) = A sin(n*pi*x/L) cos(n*omega*t).
type StandingWave struct {
	surface engine.Surface
	w, h    int

	t float64

	n    int
	amp  float64
	freq float64
}

// NewStandingWave returns a fresh string-mode engine.
func NewStandingWave() engine.Engine {
	return &StandingWave{}
}

func (s *StandingWave) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.n = int(StandingWaveSchema.Value(nil, "harmonic"))
	s.amp = StandingWaveSchema.Value(nil, "amplitude")
	s.freq = StandingWaveSchema.Value(nil, "frequency")
}

func (s *StandingWave) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *StandingWave) Update(dt float64, p engine.Params) {
	s.n = int(StandingWaveSchema.Value(p, "harmonic"))
	s.amp = StandingWaveSchema.Value(p, "amplitude")
	s.freq = StandingWaveSchema.Value(p, "frequency")
	s.t += dt
}

// Nodes returns the count of stationary points excluding the clamps.
func (s *StandingWave) Nodes() int {
	return s.n - 1
}

func (s *StandingWave) Render() {
	s.surface.Clear()

	midY := s.h / 2
	margin := 4
	length := s.w - 2*margin
	yScale := float64(s.h) * 0.38 * s.amp

	// Mode frequency scales linearly with the harmonic number.
	osc := math.Cos(2 * math.Pi * s.freq * float64(s.n) * s.t)

	px, py := margin, midY
	for i := 1; i <= length; i++ {
		frac := float64(i) / float64(length)
		y := math.Sin(float64(s.n)*math.Pi*frac) * osc
		qx := margin + i
		qy := midY - int(y*yScale)
		s.surface.Line(px, py, qx, qy)
		px, py = qx, qy
	}

	// Clamps and node markers.
	s.surface.Line(margin, midY-6, margin, midY+6)
	s.surface.Line(s.w-margin, midY-6, s.w-margin, midY+6)
	for i := 1; i < s.n; i++ {
		nx := margin + length*i/s.n
		engine.Circle(s.surface, nx, midY, 2)
	}
}

func (s *StandingWave) Reset() {
	s.t = 0
}

func (s *StandingWave) Destroy() {
	s.surface = nil
}

func (s *StandingWave) StateDescription() string {
	name := "fundamental"
	if s.n > 1 {
		name = fmt.Sprintf("%d%s harmonic", s.n, ordinal(s.n))
	}
	return fmt.Sprintf(
		"Clamped string vibrating in its %s (n=%d) at relative amplitude %.2f; "+
			"mode frequency %.1f Hz (n times the %.1f Hz fundamental), elapsed %.1f s. "+
			"The mode has %d interior nodes and %d antinodes; every point oscillates "+
			"in place, no energy travels along the string.",
		name, s.n, s.amp, s.freq*float64(s.n), s.freq, s.t, s.Nodes(), s.n)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
