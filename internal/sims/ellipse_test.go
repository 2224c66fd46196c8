package sims

import (
	"math"
	"strings"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestEllipseDerivedAxes(t *testing.T) {
	e := NewEllipse().(*Ellipse)
	e.Init(canvas.New(80, 30))

	e.Update(0, engine.Params{"semiMajor": 200, "eccentricity": 0.6})

	if b := e.SemiMinor(); math.Abs(b-160.0) > 1e-9 {
		t.Errorf("expected semi-minor axis 160.0, got %f", b)
	}
	if c := e.FocalDistance(); math.Abs(c-120.0) > 1e-9 {
		t.Errorf("expected focal distance 120.0, got %f", c)
	}
}

func TestEllipseFocalIdentity(t *testing.T) {
	e := NewEllipse().(*Ellipse)
	e.Init(canvas.New(80, 30))

	for _, ecc := range []float64{0, 0.3, 0.6, 0.9} {
		e.Update(0, engine.Params{"semiMajor": 250, "eccentricity": ecc})
		a, b, c := 250.0, e.SemiMinor(), e.FocalDistance()
		if math.Abs(c*c-(a*a-b*b)) > 1e-6 {
			t.Errorf("e=%.1f: c^2=%f but a^2-b^2=%f", ecc, c*c, a*a-b*b)
		}
	}
}

func TestEllipseCircleDegenerate(t *testing.T) {
	e := NewEllipse().(*Ellipse)
	e.Init(canvas.New(80, 30))
	e.Update(0, engine.Params{"semiMajor": 200, "eccentricity": 0})

	if b := e.SemiMinor(); math.Abs(b-200) > 1e-9 {
		t.Errorf("zero eccentricity should give b=a, got b=%f", b)
	}
	if c := e.FocalDistance(); c != 0 {
		t.Errorf("zero eccentricity should merge the foci, got c=%f", c)
	}
}

func TestEllipseDescriptionNarratesGeometry(t *testing.T) {
	e := NewEllipse().(*Ellipse)
	e.Init(canvas.New(80, 30))
	e.Update(0, engine.Params{"semiMajor": 200, "eccentricity": 0.6})

	desc := e.StateDescription()
	for _, want := range []string{"a=200.0", "e=0.60", "b=", "160.0", "c=", "120.0"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q: %s", want, desc)
		}
	}
}
