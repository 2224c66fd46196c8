package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// FourierSchema declares the partial-sum controls.
var FourierSchema = engine.Schema{
	{Key: "terms", Label: "Harmonics", Min: 1, Max: 25, Step: 1, Default: 5},
	{Key: "frequency", Label: "Frequency", Min: 0.1, Max: 2, Step: 0.05, Default: 0.5, Unit: "Hz"},
}

// Fourier builds a square wave from its odd-harmonic partial sums,
// showing the Gibbs overshoot that never converges away.
type Fourier struct {
	surface engine.Surface
	w, h    int

	t float64

	terms int
	freq  float64
}

// NewFourier returns a fresh partial-sum engine.
func NewFourier() engine.Engine {
	return &Fourier{}
}

func (s *Fourier) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.terms = int(FourierSchema.Value(nil, "terms"))
	s.freq = FourierSchema.Value(nil, "frequency")
}

func (s *Fourier) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *Fourier) Update(dt float64, p engine.Params) {
	s.terms = int(FourierSchema.Value(p, "terms"))
	s.freq = FourierSchema.Value(p, "frequency")
	s.t += dt
}

// partialSum evaluates the first n odd harmonics of the square wave
// (4/pi) * sum sin((2k-1)x)/(2k-1).
func (s *Fourier) partialSum(x float64) float64 {
	sum := 0.0
	for k := 1; k <= s.terms; k++ {
		n := float64(2*k - 1)
		sum += math.Sin(n*x) / n
	}
	return 4 / math.Pi * sum
}

// HighestHarmonic returns the order of the last included harmonic.
func (s *Fourier) HighestHarmonic() int {
	return 2*s.terms - 1
}

func (s *Fourier) Render() {
	s.surface.Clear()

	midY := s.h / 2
	amp := float64(s.h) * 0.3
	phase := 2 * math.Pi * s.freq * s.t

	// Ideal square wave as the faint target.
	for x := 0; x < s.w; x += 3 {
		xx := 4*math.Pi*float64(x)/float64(s.w) + phase
		target := 1.0
		if math.Sin(xx) < 0 {
			target = -1.0
		}
		s.surface.Set(x, midY-int(target*amp))
	}

	// Partial sum.
	px, py := 0, midY-int(s.partialSum(phase)*amp)
	for x := 1; x < s.w; x++ {
		xx := 4*math.Pi*float64(x)/float64(s.w) + phase
		qy := midY - int(s.partialSum(xx)*amp)
		s.surface.Line(px, py, x, qy)
		px, py = x, qy
	}

	s.surface.Line(0, midY, s.w-1, midY)
}

func (s *Fourier) Reset() {
	s.t = 0
}

func (s *Fourier) Destroy() {
	s.surface = nil
}

func (s *Fourier) StateDescription() string {
	return fmt.Sprintf(
		"Square-wave Fourier synthesis using %d odd harmonics (up to order %d) "+
			"scrolling at %.2f Hz, elapsed %.1f s. Each added term sharpens the edges, "+
			"but the ~9%% Gibbs overshoot at each jump persists no matter how many "+
			"harmonics are included; it only narrows.",
		s.terms, s.HighestHarmonic(), s.freq, s.t)
}
