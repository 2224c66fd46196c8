package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// TerminalVelocitySchema declares the falling-body controls.
var TerminalVelocitySchema = engine.Schema{
	{Key: "mass", Label: "Mass", Min: 1, Max: 200, Step: 1, Default: 80, Unit: "kg"},
	{Key: "dragCoefficient", Label: "Drag coefficient", Min: 0.05, Max: 2, Step: 0.05, Default: 0.27, Unit: "kg/m"},
	{Key: "gravity", Label: "Gravity", Min: 1, Max: 25, Step: 0.1, Default: 9.81, Unit: "m/s²"},
}

// TerminalVelocity drops a body through quadratic air drag and shows
// the velocity saturating at v_t = sqrt(mg/k). The closed form
// v(t) = v_t tanh(g t / v_t) is used so the curve is exact.
type TerminalVelocity struct {
	surface engine.Surface
	w, h    int

	t float64
	v float64
	y float64 // distance fallen, m

	m, k, g float64

	history []float64
}

// NewTerminalVelocity returns a fresh drag-fall engine.
func NewTerminalVelocity() engine.Engine {
	return &TerminalVelocity{}
}

func (s *TerminalVelocity) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.m = TerminalVelocitySchema.Value(nil, "mass")
	s.k = TerminalVelocitySchema.Value(nil, "dragCoefficient")
	s.g = TerminalVelocitySchema.Value(nil, "gravity")
	s.history = make([]float64, 0, 256)
}

// Terminal returns the terminal speed sqrt(mg/k).
func (s *TerminalVelocity) Terminal() float64 {
	return math.Sqrt(s.m * s.g / s.k)
}

// Speed returns the closed-form speed at time t from rest.
func (s *TerminalVelocity) Speed(t float64) float64 {
	vt := s.Terminal()
	return vt * math.Tanh(s.g*t/vt)
}

func (s *TerminalVelocity) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *TerminalVelocity) Update(dt float64, p engine.Params) {
	s.m = TerminalVelocitySchema.Value(p, "mass")
	s.k = TerminalVelocitySchema.Value(p, "dragCoefficient")
	s.g = TerminalVelocitySchema.Value(p, "gravity")

	s.t += dt
	prev := s.v
	s.v = s.Speed(s.t)
	s.y += (prev + s.v) / 2 * dt

	s.history = append(s.history, s.v)
	if len(s.history) > 256 {
		s.history = s.history[1:]
	}
}

func (s *TerminalVelocity) Render() {
	s.surface.Clear()

	vt := s.Terminal()

	// Falling body on the left, wrapping so the drop never ends.
	span := s.h - 8
	if span < 1 {
		span = 1
	}
	alt := int(s.y*2) % span
	bodyX := s.w / 8
	engine.Circle(s.surface, bodyX, 4+alt, 2)
	// Drag arrows grow with v².
	drag := int(clampF(s.v/vt, 0, 1) * 5)
	for i := 0; i < drag; i++ {
		s.surface.Set(bodyX, 4+alt-4-i*2)
	}

	// Velocity curve with the v_t asymptote dashed.
	left := s.w / 4
	baseY := s.h - 4
	plotH := s.h - 10
	asymY := baseY - plotH
	for x := left; x < s.w-2; x += 4 {
		s.surface.Set(x, asymY)
	}
	if len(s.history) > 1 {
		step := float64(s.w-left-4) / 256
		px, py := left, baseY-int(s.history[0]/vt*float64(plotH))
		for i := 1; i < len(s.history); i++ {
			x := left + int(float64(i)*step)
			y := baseY - int(clampF(s.history[i]/vt, 0, 1)*float64(plotH))
			s.surface.Line(px, py, x, y)
			px, py = x, y
		}
	}
}

func (s *TerminalVelocity) Reset() {
	s.t = 0
	s.v = 0
	s.y = 0
	s.history = s.history[:0]
}

func (s *TerminalVelocity) Destroy() {
	s.surface = nil
	s.history = nil
}

func (s *TerminalVelocity) StateDescription() string {
	vt := s.Terminal()
	pct := 0.0
	if vt > 0 {
		pct = 100 * s.v / vt
	}
	return fmt.Sprintf(
		"A %.0f kg body falls through quadratic drag (k=%.2f kg/m, g=%.2f m/s²). "+
			"After %.1f s it moves at %.1f m/s, %.0f%% of the terminal speed "+
			"v_t=√(mg/k)=%.1f m/s, having dropped %.0f m. Drag grows with v² until it "+
			"balances weight, so the velocity follows v_t·tanh(gt/v_t) and the "+
			"acceleration fades to zero.",
		s.m, s.k, s.g, s.t, s.v, pct, vt, s.y)
}
