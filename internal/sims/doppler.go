package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// DopplerSchema declares the moving-source controls.
var DopplerSchema = engine.Schema{
	{Key: "sourceSpeed", Label: "Source speed", Min: 0, Max: 500, Step: 5, Default: 100, Unit: "m/s"},
	{Key: "waveSpeed", Label: "Wave speed", Min: 50, Max: 500, Step: 5, Default: 340, Unit: "m/s"},
	{Key: "emitPeriod", Label: "Emission period", Min: 0.2, Max: 2, Step: 0.05, Default: 0.5, Unit: "s"},
}

type wavefront struct {
	x, y  float64 // emission point in model meters
	birth float64
}

// Doppler shows wavefronts bunching ahead of a moving source, up to the
// Mach-cone regime when the source outruns its own waves.
type Doppler struct {
	surface engine.Surface
	w, h    int

	t        float64
	srcX     float64 // model meters, wraps around
	lastEmit float64
	fronts   []wavefront

	vs, c, period float64
}

// NewDoppler returns a fresh Doppler engine.
func NewDoppler() engine.Engine {
	return &Doppler{}
}

const dopplerSpan = 2000.0 // model width in meters

func (s *Doppler) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.vs = DopplerSchema.Value(nil, "sourceSpeed")
	s.c = DopplerSchema.Value(nil, "waveSpeed")
	s.period = DopplerSchema.Value(nil, "emitPeriod")
	s.fronts = make([]wavefront, 0, 32)
}

func (s *Doppler) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *Doppler) Update(dt float64, p engine.Params) {
	s.vs = DopplerSchema.Value(p, "sourceSpeed")
	s.c = DopplerSchema.Value(p, "waveSpeed")
	s.period = DopplerSchema.Value(p, "emitPeriod")

	s.t += dt
	s.srcX += s.vs * dt
	if s.srcX > dopplerSpan {
		s.srcX -= dopplerSpan
		s.fronts = s.fronts[:0] // wrapped fronts would draw nonsense
	}

	if s.t-s.lastEmit >= s.period {
		s.lastEmit = s.t
		s.fronts = append(s.fronts, wavefront{x: s.srcX, y: 0, birth: s.t})
		if len(s.fronts) > 24 {
			s.fronts = s.fronts[1:]
		}
	}
}

// Mach returns the source speed as a fraction of the wave speed.
func (s *Doppler) Mach() float64 {
	return s.vs / s.c
}

// FrontCount reports how many wavefronts are alive; bounded by design.
func (s *Doppler) FrontCount() int {
	return len(s.fronts)
}

func (s *Doppler) Render() {
	s.surface.Clear()

	scale := float64(s.w) / dopplerSpan
	midY := s.h / 2

	for _, f := range s.fronts {
		r := s.c * (s.t - f.birth) * scale
		engine.Circle(s.surface, int(f.x*scale), midY, int(r))
	}

	engine.Dot(s.surface, int(s.srcX*scale), midY, 1)
}

func (s *Doppler) Reset() {
	s.t = 0
	s.srcX = 0
	s.lastEmit = 0
	s.fronts = s.fronts[:0]
}

func (s *Doppler) Destroy() {
	s.surface = nil
	s.fronts = nil
}

func (s *Doppler) StateDescription() string {
	mach := s.Mach()
	ahead := s.c - s.vs
	var regime string
	switch {
	case mach < 0.999:
		fAhead := s.c / ahead
		regime = fmt.Sprintf("subsonic: wavefronts bunch ahead of the source, raising the "+
			"observed frequency ahead by a factor of %.2f (c/(c-vs))", fAhead)
	case mach <= 1.001:
		regime = "exactly sonic: wavefronts pile up on the source in a pressure wall"
	default:
		cone := rad2deg(math.Asin(1 / mach))
		regime = fmt.Sprintf("supersonic: the source outruns its waves, forming a Mach cone "+
			"of half-angle %.1f deg (asin(1/M))", cone)
	}
	return fmt.Sprintf(
		"Source moving at %.0f m/s emitting waves travelling at %.0f m/s every %.2f s "+
			"(Mach %.2f, %d live wavefronts, elapsed %.1f s). Regime is %s.",
		s.vs, s.c, s.period, mach, len(s.fronts), s.t, regime)
}
