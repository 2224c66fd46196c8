package sims

import (
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

// The randomized engines are intentionally unseeded, so these tests
// pin down structure, not trajectories.

func TestBrownianStaysInBounds(t *testing.T) {
	b := NewBrownian().(*Brownian)
	surf := canvas.New(60, 20)
	b.Init(surf)

	for i := 0; i < 500; i++ {
		b.Update(1.0/30, nil)
	}
	w, h := surf.Size()
	if b.x < 0 || b.x >= float64(w) || b.y < 0 || b.y >= float64(h) {
		t.Errorf("walker escaped the raster: (%f, %f)", b.x, b.y)
	}
	if b.PathLen() > 400 {
		t.Errorf("path must stay bounded, got %d segments", b.PathLen())
	}
}

func TestBrownianResetReturnsToCenter(t *testing.T) {
	b := NewBrownian().(*Brownian)
	b.Init(canvas.New(60, 20))

	for i := 0; i < 200; i++ {
		b.Update(1.0/30, nil)
	}
	b.Reset()
	if d := b.Displacement(); d != 0 {
		t.Errorf("reset should zero the displacement, got %f", d)
	}
	if b.PathLen() != 0 {
		t.Errorf("reset should clear the path, got %d segments", b.PathLen())
	}
}

func TestIdealGasTracksParticleParam(t *testing.T) {
	g := NewIdealGas().(*IdealGas)
	g.Init(canvas.New(80, 30))

	g.Update(1.0/30, engine.Params{"particles": 50})
	if n := g.ParticleCount(); n != 50 {
		t.Errorf("expected 50 particles, got %d", n)
	}
	g.Update(1.0/30, engine.Params{"particles": 120})
	if n := g.ParticleCount(); n != 120 {
		t.Errorf("expected 120 particles after repopulation, got %d", n)
	}
}

func TestIdealGasPressureRisesWithTemperature(t *testing.T) {
	g := NewIdealGas().(*IdealGas)
	g.Init(canvas.New(80, 30))

	cold := engine.Params{"particles": 100, "temperature": 100}
	hot := engine.Params{"particles": 100, "temperature": 900}

	for i := 0; i < 300; i++ {
		g.Update(1.0/60, cold)
	}
	pCold := g.Pressure()

	g.Reset()
	for i := 0; i < 300; i++ {
		g.Update(1.0/60, hot)
	}
	pHot := g.Pressure()

	if pHot <= pCold {
		t.Errorf("hotter gas should push harder: cold %f, hot %f", pCold, pHot)
	}
}
