package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// RCCircuitSchema declares the charging-circuit controls.
var RCCircuitSchema = engine.Schema{
	{Key: "resistance", Label: "Resistance", Min: 0.5, Max: 20, Step: 0.5, Default: 5, Unit: "kΩ"},
	{Key: "capacitance", Label: "Capacitance", Min: 10, Max: 1000, Step: 10, Default: 200, Unit: "µF"},
	{Key: "sourceVoltage", Label: "Source voltage", Min: 1, Max: 24, Step: 0.5, Default: 9, Unit: "V"},
}

// RCCircuit charges and discharges a capacitor through a resistor,
// cycling automatically once the capacitor is effectively full or
// empty, and plots V(t) against the exponential law.
type RCCircuit struct {
	surface engine.Surface
	w, h    int

	t        float64
	v        float64 // capacitor voltage
	charging bool
	cycles   int

	r, c, v0 float64

	history []float64
}

// NewRCCircuit returns a fresh RC engine.
func NewRCCircuit() engine.Engine {
	return &RCCircuit{}
}

func (s *RCCircuit) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.r = RCCircuitSchema.Value(nil, "resistance")
	s.c = RCCircuitSchema.Value(nil, "capacitance")
	s.v0 = RCCircuitSchema.Value(nil, "sourceVoltage")
	s.charging = true
	s.history = make([]float64, 0, 256)
}

// Tau returns the time constant R*C in seconds (kΩ * µF = ms, so /1000).
func (s *RCCircuit) Tau() float64 {
	return s.r * s.c / 1000
}

func (s *RCCircuit) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *RCCircuit) Update(dt float64, p engine.Params) {
	s.r = RCCircuitSchema.Value(p, "resistance")
	s.c = RCCircuitSchema.Value(p, "capacitance")
	s.v0 = RCCircuitSchema.Value(p, "sourceVoltage")

	// Exact exponential step so large dt never overshoots the rail.
	tau := s.Tau()
	decay := math.Exp(-dt / tau)
	if s.charging {
		s.v = s.v0 - (s.v0-s.v)*decay
		if s.v > 0.99*s.v0 {
			s.charging = false
			s.cycles++
		}
	} else {
		s.v *= decay
		if s.v < 0.01*s.v0 {
			s.charging = true
		}
	}
	s.t += dt

	s.history = append(s.history, s.v)
	if len(s.history) > 256 {
		s.history = s.history[1:]
	}
}

func (s *RCCircuit) Render() {
	s.surface.Clear()

	// Circuit sketch: battery, resistor zigzag, capacitor plates.
	topY := s.h / 5
	left, right := 6, s.w-6
	s.surface.Line(left, topY, right, topY)
	s.surface.Line(left, topY, left, topY+12)
	s.surface.Line(right, topY, right, topY+12)
	// Battery on the left leg.
	s.surface.Line(left-3, topY+5, left+3, topY+5)
	s.surface.Line(left-1, topY+8, left+1, topY+8)
	// Capacitor plates on the right leg, gap scaled by charge.
	s.surface.Line(right-4, topY+9, right+4, topY+9)
	s.surface.Line(right-4, topY+12, right+4, topY+12)
	// Resistor zigzag across the top.
	zig := (right - left) / 8
	for i := 0; i < 4; i++ {
		x0 := left + 2*zig + i*zig
		dy := 2
		if i%2 == 0 {
			dy = -2
		}
		s.surface.Line(x0, topY, x0+zig/2, topY+dy)
		s.surface.Line(x0+zig/2, topY+dy, x0+zig, topY)
	}

	// Voltage trace with the asymptote line.
	baseY := s.h - 4
	plotH := s.h / 2
	asymY := baseY - int(float64(plotH))
	for x := 2; x < s.w-2; x += 4 {
		s.surface.Set(x, asymY) // dashed V0 line
	}
	if len(s.history) > 1 {
		step := float64(s.w-4) / 256
		px, py := 2, baseY-int(s.history[0]/s.v0*float64(plotH))
		for i := 1; i < len(s.history); i++ {
			x := 2 + int(float64(i)*step)
			y := baseY - int(clampF(s.history[i]/s.v0, 0, 1)*float64(plotH))
			s.surface.Line(px, py, x, y)
			px, py = x, y
		}
	}
}

func (s *RCCircuit) Reset() {
	s.t = 0
	s.v = 0
	s.charging = true
	s.cycles = 0
	s.history = s.history[:0]
}

func (s *RCCircuit) Destroy() {
	s.surface = nil
	s.history = nil
}

func (s *RCCircuit) StateDescription() string {
	phase := "charging toward"
	if !s.charging {
		phase = "discharging from"
	}
	tau := s.Tau()
	return fmt.Sprintf(
		"RC circuit with R=%.1f kΩ and C=%.0f µF, %s V0=%.1f V. Capacitor voltage "+
			"%.2f V (%.0f%% of source) after %.1f s and %d complete cycles. Time "+
			"constant τ=RC=%.2f s: one τ charges to 63%%, five to over 99%%. Current "+
			"is highest when the capacitor is empty and falls as e^(−t/τ).",
		s.r, s.c, phase, s.v0, s.v, 100*s.v/s.v0, s.t, s.cycles, tau)
}
