package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// BeatsSchema declares the two-tone superposition controls.
var BeatsSchema = engine.Schema{
	{Key: "freq1", Label: "Frequency 1", Min: 1, Max: 20, Step: 0.1, Default: 8, Unit: "Hz"},
	{Key: "freq2", Label: "Frequency 2", Min: 1, Max: 20, Step: 0.1, Default: 9, Unit: "Hz"},
	{Key: "timeWindow", Label: "Time window", Min: 0.5, Max: 5, Step: 0.1, Default: 2, Unit: "s"},
}

// Beats superposes two near-equal tones and shows the slow amplitude
// envelope at the difference frequency.
type Beats struct {
	surface engine.Surface
	w, h    int

	t float64

	f1, f2, window float64
}

// NewBeats returns a fresh beats engine.
func NewBeats() engine.Engine {
	return &Beats{}
}

func (s *Beats) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.f1 = BeatsSchema.Value(nil, "freq1")
	s.f2 = BeatsSchema.Value(nil, "freq2")
	s.window = BeatsSchema.Value(nil, "timeWindow")
}

func (s *Beats) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *Beats) Update(dt float64, p engine.Params) {
	s.f1 = BeatsSchema.Value(p, "freq1")
	s.f2 = BeatsSchema.Value(p, "freq2")
	s.window = BeatsSchema.Value(p, "timeWindow")
	s.t += dt
}

// BeatFrequency returns |f1 - f2|.
func (s *Beats) BeatFrequency() float64 {
	return math.Abs(s.f1 - s.f2)
}

func (s *Beats) plotWave(baseY int, amp float64, f func(tt float64) float64) {
	px, py := 0, baseY-int(amp*f(s.t-s.window))
	for i := 1; i < s.w; i++ {
		tt := s.t - s.window + s.window*float64(i)/float64(s.w)
		qy := baseY - int(amp*f(tt))
		s.surface.Line(px, py, i, qy)
		px, py = i, qy
	}
}

func (s *Beats) Render() {
	s.surface.Clear()

	third := s.h / 3
	small := float64(third) * 0.35
	big := float64(third) * 0.42

	s.plotWave(third/2, small, func(tt float64) float64 {
		return math.Sin(2 * math.Pi * s.f1 * tt)
	})
	s.plotWave(third+third/2, small, func(tt float64) float64 {
		return math.Sin(2 * math.Pi * s.f2 * tt)
	})
	// Sum with its envelope at the difference frequency.
	s.plotWave(2*third+third/2, big, func(tt float64) float64 {
		return 0.5 * (math.Sin(2*math.Pi*s.f1*tt) + math.Sin(2*math.Pi*s.f2*tt))
	})
}

func (s *Beats) Reset() {
	s.t = 0
}

func (s *Beats) Destroy() {
	s.surface = nil
}

func (s *Beats) StateDescription() string {
	fb := s.BeatFrequency()
	var audible string
	if fb == 0 {
		audible = "the tones are identical, so no beating occurs"
	} else {
		audible = fmt.Sprintf("the loudness swells and fades %.1f times per second "+
			"(period %.2f s)", fb, 1/fb)
	}
	return fmt.Sprintf(
		"Two tones of %.1f Hz and %.1f Hz superposed over a %.1f s window, "+
			"elapsed %.1f s. The sum oscillates at the mean frequency %.1f Hz inside "+
			"an envelope at the beat frequency |f1-f2| = %.1f Hz: %s.",
		s.f1, s.f2, s.window, s.t, (s.f1+s.f2)/2, fb, audible)
}
