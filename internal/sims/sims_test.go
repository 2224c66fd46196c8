package sims

import (
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

var constructors = map[string]func() engine.Engine{
	"ellipse":           NewEllipse,
	"snells-law":        NewSnellsLaw,
	"half-life":         NewHalfLife,
	"projectile":        NewProjectile,
	"pendulum":          NewPendulum,
	"spring-mass":       NewSpringMass,
	"wave-interference": NewWaveInterference,
	"standing-wave":     NewStandingWave,
	"doppler":           NewDoppler,
	"beats":             NewBeats,
	"fourier":           NewFourier,
	"lissajous":         NewLissajous,
	"dipole-field":      NewDipoleField,
	"tidal-forces":      NewTidalForces,
	"ideal-gas":         NewIdealGas,
	"brownian":          NewBrownian,
	"orbit":             NewOrbit,
	"rc-circuit":        NewRCCircuit,
	"prism":             NewPrism,
	"terminal-velocity": NewTerminalVelocity,
}

// TestLifecycleContract runs every engine through the full contract on
// a real raster: init, many ticks, a mid-run resize, reset, more
// ticks, destroy. Nothing may panic and descriptions must narrate.
func TestLifecycleContract(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			surf := canvas.New(60, 20)
			eng := ctor()
			eng.Init(surf)

			for i := 0; i < 30; i++ {
				eng.Update(1.0/30, nil)
				eng.Render()
			}
			eng.Resize(44, 16)
			eng.Update(1.0/30, nil)
			eng.Render()

			if desc := eng.StateDescription(); len(desc) < 40 {
				t.Errorf("description too thin: %q", desc)
			}

			eng.Reset()
			eng.Update(1.0/30, nil)
			eng.Render()
			eng.Destroy()
		})
	}
}

// TestRenderLightsDots confirms each engine actually draws something.
func TestRenderLightsDots(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			surf := canvas.New(80, 30)
			eng := ctor()
			eng.Init(surf)
			for i := 0; i < 60; i++ {
				eng.Update(1.0/30, nil)
			}
			eng.Render()
			if surf.LitDots() == 0 {
				t.Error("render produced a blank raster")
			}
			eng.Destroy()
		})
	}
}

// TestResetRestoresDescription checks reset brings the narrated state
// back to its initial form for the deterministic engines.
func TestResetRestoresDescription(t *testing.T) {
	for _, name := range []string{"ellipse", "snells-law", "projectile", "beats", "fourier"} {
		t.Run(name, func(t *testing.T) {
			eng := constructors[name]()
			eng.Init(canvas.New(60, 20))

			before := eng.StateDescription()
			for i := 0; i < 90; i++ {
				eng.Update(1.0/30, nil)
			}
			eng.Reset()
			if after := eng.StateDescription(); after != before {
				t.Errorf("reset did not restore state:\n before %q\n after  %q", before, after)
			}
			eng.Destroy()
		})
	}
}

// TestRenderPreservesTrails pins the no-mutation half of the render
// contract for the trail-keeping engines: while the host is paused it
// keeps calling Render every tick, and the accumulated history must
// survive untouched instead of filling up with the current point.
func TestRenderPreservesTrails(t *testing.T) {
	pend := NewPendulum().(*Pendulum)
	orb := NewOrbit().(*Orbit)
	lis := NewLissajous().(*Lissajous)

	for name, tc := range map[string]struct {
		eng   engine.Engine
		trail func() []point
	}{
		"pendulum":  {pend, func() []point { return pend.trail }},
		"orbit":     {orb, func() []point { return orb.trail }},
		"lissajous": {lis, func() []point { return lis.tail }},
	} {
		t.Run(name, func(t *testing.T) {
			tc.eng.Init(canvas.New(60, 20))
			for i := 0; i < 200; i++ {
				tc.eng.Update(1.0/30, nil)
			}
			before := append([]point(nil), tc.trail()...)
			if len(before) == 0 {
				t.Fatal("expected a recorded trail after 200 updates")
			}
			for i := 0; i < 200; i++ {
				tc.eng.Render()
			}
			after := tc.trail()
			if len(after) != len(before) {
				t.Fatalf("render changed the trail length: %d -> %d", len(before), len(after))
			}
			for i := range before {
				if after[i] != before[i] {
					t.Fatalf("render rewrote trail entry %d: %v -> %v", i, before[i], after[i])
				}
			}
			tc.eng.Destroy()
		})
	}
}

func TestConstructorsIndependent(t *testing.T) {
	a := NewPendulum()
	b := NewPendulum()
	if a == b {
		t.Fatal("constructor returned a shared instance")
	}

	a.Init(canvas.New(60, 20))
	b.Init(canvas.New(60, 20))
	for i := 0; i < 30; i++ {
		a.Update(1.0/30, nil)
	}
	if a.StateDescription() == b.StateDescription() {
		t.Error("advancing one instance affected the other")
	}
}
