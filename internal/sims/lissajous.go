package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// LissajousSchema declares the curve controls.
var LissajousSchema = engine.Schema{
	{Key: "freqX", Label: "X frequency", Min: 1, Max: 9, Step: 1, Default: 3},
	{Key: "freqY", Label: "Y frequency", Min: 1, Max: 9, Step: 1, Default: 2},
	{Key: "phase", Label: "Phase offset", Min: 0, Max: 180, Step: 5, Default: 90, Unit: "deg"},
	{Key: "speed", Label: "Draw speed", Min: 0.1, Max: 3, Step: 0.1, Default: 1},
}

// Lissajous traces x = sin(a*t + phi), y = sin(b*t) with a fading tail.
type Lissajous struct {
	surface engine.Surface
	w, h    int

	t float64

	a, b  int
	phase float64
	speed float64

	tail []point
}

// NewLissajous returns a fresh curve engine.
func NewLissajous() engine.Engine {
	return &Lissajous{}
}

func (s *Lissajous) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.a = int(LissajousSchema.Value(nil, "freqX"))
	s.b = int(LissajousSchema.Value(nil, "freqY"))
	s.phase = LissajousSchema.Value(nil, "phase")
	s.speed = LissajousSchema.Value(nil, "speed")
	s.tail = make([]point, 0, 512)
}

func (s *Lissajous) Resize(w, h int) {
	s.w, s.h = w, h
	s.tail = s.tail[:0]
}

func (s *Lissajous) Update(dt float64, p engine.Params) {
	a := int(LissajousSchema.Value(p, "freqX"))
	b := int(LissajousSchema.Value(p, "freqY"))
	if a != s.a || b != s.b {
		s.tail = s.tail[:0] // old curve no longer matches the ratio
	}
	s.a, s.b = a, b
	s.phase = LissajousSchema.Value(p, "phase")
	s.speed = LissajousSchema.Value(p, "speed")
	s.t += dt

	x, y := s.pen()
	s.tail = append(s.tail, point{x, y})
	if len(s.tail) > 512 {
		s.tail = s.tail[1:]
	}
}

// pen returns the tracing point's pixel position for the current time.
func (s *Lissajous) pen() (int, int) {
	rx := float64(s.w) * 0.42
	ry := float64(s.h) * 0.42
	tt := s.t * s.speed
	x := s.w/2 + int(rx*math.Sin(float64(s.a)*tt+deg2rad(s.phase)))
	y := s.h/2 + int(ry*math.Sin(float64(s.b)*tt))
	return x, y
}

func (s *Lissajous) Render() {
	s.surface.Clear()

	x, y := s.pen()
	for i := 1; i < len(s.tail); i++ {
		s.surface.Line(s.tail[i-1].x, s.tail[i-1].y, s.tail[i].x, s.tail[i].y)
	}
	engine.Dot(s.surface, x, y, 1)
}

func (s *Lissajous) Reset() {
	s.t = 0
	s.tail = s.tail[:0]
}

func (s *Lissajous) Destroy() {
	s.surface = nil
	s.tail = nil
}

// gcd of the two frequencies decides whether the curve closes.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (s *Lissajous) StateDescription() string {
	g := gcd(s.a, s.b)
	return fmt.Sprintf(
		"Lissajous figure with frequency ratio %d:%d and phase offset %.0f deg, "+
			"drawn at speed %.1f for %.1f s. Reduced ratio %d:%d means the curve "+
			"closes after %d horizontal and %d vertical oscillations; the figure has "+
			"%d lobes across and %d lobes down.",
		s.a, s.b, s.phase, s.speed, s.t,
		s.a/g, s.b/g, s.a/g, s.b/g, s.a/g, s.b/g)
}
