package sims

import (
	"math"
	"strings"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestSnellsLawRefraction(t *testing.T) {
	s := NewSnellsLaw().(*SnellsLaw)
	s.Init(canvas.New(80, 30))

	s.Update(0, engine.Params{"n1": 1.0, "n2": 1.5, "incidentAngle": 30})

	if sin2 := s.SinTheta2(); math.Abs(sin2-1.0/3.0) > 1e-4 {
		t.Errorf("expected sin(theta2) near 0.3333, got %f", sin2)
	}
	if th2 := s.Theta2(); math.Abs(th2-19.47) > 0.01 {
		t.Errorf("expected refraction angle near 19.47 deg, got %f", th2)
	}
	if s.TotalInternalReflection() {
		t.Error("rare-to-dense passage must never reflect totally")
	}
}

func TestSnellsLawTotalInternalReflection(t *testing.T) {
	s := NewSnellsLaw().(*SnellsLaw)
	s.Init(canvas.New(80, 30))

	// Dense to rare past the critical angle asin(1/1.5) ≈ 41.8 deg.
	s.Update(0, engine.Params{"n1": 1.5, "n2": 1.0, "incidentAngle": 60})

	if !s.TotalInternalReflection() {
		t.Fatalf("expected total internal reflection, sin(theta2)=%f", s.SinTheta2())
	}
	if !math.IsNaN(s.Theta2()) {
		t.Errorf("refraction angle should be undefined under TIR, got %f", s.Theta2())
	}
	if desc := s.StateDescription(); !strings.Contains(desc, "total") {
		t.Errorf("description should mention total internal reflection: %s", desc)
	}
}

func TestSnellsLawCriticalBoundary(t *testing.T) {
	s := NewSnellsLaw().(*SnellsLaw)
	s.Init(canvas.New(80, 30))

	// Just below critical: the refracted ray grazes but exists.
	s.Update(0, engine.Params{"n1": 1.5, "n2": 1.0, "incidentAngle": 41})
	if s.TotalInternalReflection() {
		t.Error("41 deg is under the critical angle for 1.5 -> 1.0")
	}
	if th2 := s.Theta2(); th2 < 79 || th2 > 90 {
		t.Errorf("near-critical refraction should graze the interface, got %f deg", th2)
	}
}

func TestSnellsLawNormalIncidence(t *testing.T) {
	s := NewSnellsLaw().(*SnellsLaw)
	s.Init(canvas.New(80, 30))
	s.Update(0, engine.Params{"n1": 1.0, "n2": 2.4, "incidentAngle": 0})

	if th2 := s.Theta2(); math.Abs(th2) > 1e-9 {
		t.Errorf("normal incidence must pass straight through, got %f deg", th2)
	}
}
