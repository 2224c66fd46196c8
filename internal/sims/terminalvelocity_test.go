package sims

import (
	"math"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestTerminalSpeedFormula(t *testing.T) {
	v := NewTerminalVelocity().(*TerminalVelocity)
	v.Init(canvas.New(80, 30))
	v.Update(0, engine.Params{"mass": 90, "dragCoefficient": 0.25, "gravity": 10})

	// sqrt(90*10/0.25) = 60
	if vt := v.Terminal(); math.Abs(vt-60) > 1e-9 {
		t.Errorf("expected terminal speed 60 m/s, got %f", vt)
	}
}

func TestSpeedSaturatesAtTerminal(t *testing.T) {
	v := NewTerminalVelocity().(*TerminalVelocity)
	v.Init(canvas.New(80, 30))

	p := engine.Params{"mass": 80, "dragCoefficient": 0.27, "gravity": 9.81}
	for i := 0; i < 3000; i++ {
		v.Update(0.01, p)
	}
	vt := v.Terminal()
	if v.v > vt {
		t.Errorf("speed exceeded terminal: %f > %f", v.v, vt)
	}
	if v.v < 0.99*vt {
		t.Errorf("after 30 s the speed should be within 1%% of terminal, got %f of %f", v.v, vt)
	}
}

func TestTerminalVelocityRendersOnTinySurface(t *testing.T) {
	v := NewTerminalVelocity().(*TerminalVelocity)
	v.Init(canvas.New(40, 2)) // 80x8 pixels: wrap span would be zero unguarded
	v.Update(1, nil)
	v.Render()

	v.Resize(20, 4)
	v.Update(1, nil)
	v.Render()
}

func TestSpeedNeverExceedsTerminalEarly(t *testing.T) {
	v := NewTerminalVelocity().(*TerminalVelocity)
	v.Init(canvas.New(80, 30))
	v.Update(0, engine.Params{"mass": 80, "dragCoefficient": 0.27, "gravity": 9.81})

	vt := v.Terminal()
	for _, tt := range []float64{0.1, 1, 5, 20, 100} {
		if sp := v.Speed(tt); sp > vt || sp < 0 {
			t.Errorf("t=%.1f: speed %f outside [0, %f]", tt, sp, vt)
		}
	}
}
