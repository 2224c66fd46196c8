package sims

import (
	"math"
	"strings"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestHalfLifeThreePeriods(t *testing.T) {
	h := NewHalfLife().(*HalfLife)
	h.Init(canvas.New(80, 30))

	p := engine.Params{"totalAtoms": 64, "halfLife": 5}
	h.Update(15, p)

	if periods := h.Periods(); math.Abs(periods-3) > 1e-9 {
		t.Errorf("expected 3 half-life periods, got %f", periods)
	}
	if remaining := h.Remaining(); math.Abs(remaining-8) > 1e-9 {
		t.Errorf("expected 8 surviving atoms, got %f", remaining)
	}
}

func TestHalfLifeHalvesEachPeriod(t *testing.T) {
	h := NewHalfLife().(*HalfLife)
	h.Init(canvas.New(80, 30))
	p := engine.Params{"totalAtoms": 128, "halfLife": 2}

	want := 128.0
	for i := 0; i < 5; i++ {
		h.Update(2, p)
		want /= 2
		if remaining := h.Remaining(); math.Abs(remaining-want) > 1e-6 {
			t.Errorf("after %d periods expected %.1f atoms, got %f", i+1, want, remaining)
		}
	}
}

func TestHalfLifeResetRestoresPopulation(t *testing.T) {
	h := NewHalfLife().(*HalfLife)
	h.Init(canvas.New(80, 30))
	p := engine.Params{"totalAtoms": 64, "halfLife": 5}

	h.Update(25, p)
	if h.Remaining() >= 64 {
		t.Fatal("population should have decayed")
	}
	h.Reset()
	if remaining := h.Remaining(); math.Abs(remaining-64) > 1e-9 {
		t.Errorf("reset should restore the full population, got %f", remaining)
	}
}

func TestHalfLifeDescriptionStatesLaw(t *testing.T) {
	h := NewHalfLife().(*HalfLife)
	h.Init(canvas.New(80, 30))
	h.Update(15, engine.Params{"totalAtoms": 64, "halfLife": 5})

	desc := h.StateDescription()
	for _, want := range []string{"64 atoms", "3.00 half-life periods", "8.0 atoms"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q: %s", want, desc)
		}
	}
}
