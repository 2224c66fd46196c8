package sims

import (
	"math"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/engine"
)

func TestProjectileClosedForms(t *testing.T) {
	pr := NewProjectile().(*Projectile)
	pr.Init(canvas.New(80, 30))
	pr.Update(0, engine.Params{"speed": 20, "angle": 45, "gravity": 10})

	if r := pr.Range(); math.Abs(r-40) > 1e-9 {
		t.Errorf("expected range 40 m at 45 deg, got %f", r)
	}
	if h := pr.MaxHeight(); math.Abs(h-10) > 1e-9 {
		t.Errorf("expected peak height 10 m, got %f", h)
	}
	if ft := pr.FlightTime(); math.Abs(ft-2*math.Sqrt2) > 1e-9 {
		t.Errorf("expected flight time 2*sqrt(2) s, got %f", ft)
	}
}

func TestProjectileComplementaryAngles(t *testing.T) {
	pr := NewProjectile().(*Projectile)
	pr.Init(canvas.New(80, 30))

	pr.Update(0, engine.Params{"speed": 30, "angle": 30, "gravity": 9.81})
	low := pr.Range()
	pr.Update(0, engine.Params{"speed": 30, "angle": 60, "gravity": 9.81})
	high := pr.Range()

	if math.Abs(low-high) > 1e-9 {
		t.Errorf("complementary angles should share a range: %f vs %f", low, high)
	}
}

func TestProjectileRelaunchesAfterLanding(t *testing.T) {
	pr := NewProjectile().(*Projectile)
	pr.Init(canvas.New(80, 30))

	p := engine.Params{"speed": 20, "angle": 45, "gravity": 10}
	pr.Update(0, p)
	ft := pr.FlightTime()
	for i := 0; i < 3; i++ {
		pr.Update(ft*1.01, p)
	}
	if pr.flights < 3 {
		t.Errorf("expected at least 3 completed flights, got %d", pr.flights)
	}
	if pr.t > ft {
		t.Errorf("flight clock should wrap at landing, got %f > %f", pr.t, ft)
	}
}
