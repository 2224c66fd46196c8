package sims

import (
	"math"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestSpringMassNaturalFrequency(t *testing.T) {
	s := NewSpringMass().(*SpringMass)
	s.Init(canvas.New(80, 30))
	s.Update(0, engine.Params{"mass": 1, "stiffness": 4 * math.Pi * math.Pi, "damping": 0})

	if f := s.Frequency(); math.Abs(f-1) > 1e-9 {
		t.Errorf("k=4pi^2, m=1 should oscillate at 1 Hz, got %f", f)
	}
}

func TestSpringMassDampingRegimes(t *testing.T) {
	s := NewSpringMass().(*SpringMass)
	s.Init(canvas.New(80, 30))

	s.Update(0, engine.Params{"mass": 1, "stiffness": 25, "damping": 1})
	if z := s.DampingRatio(); z >= 1 {
		t.Errorf("expected underdamped ratio, got %f", z)
	}
	s.Update(0, engine.Params{"mass": 1, "stiffness": 25, "damping": 10})
	if z := s.DampingRatio(); math.Abs(z-1) > 1e-9 {
		t.Errorf("c=2*sqrt(km) should be critical, got %f", z)
	}
}

func TestSpringMassDecays(t *testing.T) {
	s := NewSpringMass().(*SpringMass)
	s.Init(canvas.New(80, 30))

	p := engine.Params{"mass": 1, "stiffness": 20, "damping": 1, "initialStretch": 1}
	for i := 0; i < 3000; i++ {
		s.Update(0.01, p)
	}
	if amp := math.Hypot(s.x, s.v); amp > 0.05 {
		t.Errorf("damped oscillator should settle, residual amplitude %f", amp)
	}
}

func TestSpringMassDampingRangeCoversCritical(t *testing.T) {
	s := NewSpringMass().(*SpringMass)
	s.Init(canvas.New(80, 30))

	// The schema range must admit c >= 2*sqrt(k*m) without clamping,
	// otherwise the critical regime is unreachable from the sliders.
	s.Update(0, engine.Params{"mass": 1, "stiffness": 25, "damping": 10})
	if s.c != 10 {
		t.Errorf("damping 10 should pass through unclamped, got %f", s.c)
	}
	s.Update(0, engine.Params{"mass": 1, "stiffness": 4, "damping": 8})
	if z := s.DampingRatio(); z <= 1 {
		t.Errorf("expected overdamped ratio above 1, got %f", z)
	}
}
