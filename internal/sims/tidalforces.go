package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// TidalForcesSchema declares the tide-raising controls.
var TidalForcesSchema = engine.Schema{
	{Key: "moonDistance", Label: "Moon distance", Min: 20, Max: 100, Step: 1, Default: 60, Unit: "Earth radii"},
	{Key: "massRatio", Label: "Moon/Earth mass", Min: 0.001, Max: 0.1, Step: 0.001, Default: 0.0123},
	{Key: "orbitSpeed", Label: "Orbit speed", Min: 0, Max: 0.5, Step: 0.01, Default: 0.05, Unit: "rev/s"},
}

// TidalForces graphs the differential gravitational pull across Earth's
// diameter and draws the resulting double bulge facing a slowly
// orbiting moon.
type TidalForces struct {
	surface engine.Surface
	w, h    int

	t     float64
	angle float64

	dist, ratio, speed float64
}

// NewTidalForces returns a fresh tidal engine.
func NewTidalForces() engine.Engine {
	return &TidalForces{}
}

func (s *TidalForces) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.dist = TidalForcesSchema.Value(nil, "moonDistance")
	s.ratio = TidalForcesSchema.Value(nil, "massRatio")
	s.speed = TidalForcesSchema.Value(nil, "orbitSpeed")
}

func (s *TidalForces) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *TidalForces) Update(dt float64, p engine.Params) {
	s.dist = TidalForcesSchema.Value(p, "moonDistance")
	s.ratio = TidalForcesSchema.Value(p, "massRatio")
	s.speed = TidalForcesSchema.Value(p, "orbitSpeed")

	s.t += dt
	s.angle += 2 * math.Pi * s.speed * dt
}

// TidalStrength returns the relative tidal acceleration 2*m*r/d³ at the
// sub-lunar point, in units where Earth's surface gravity is 1.
func (s *TidalForces) TidalStrength() float64 {
	return 2 * s.ratio / (s.dist * s.dist * s.dist)
}

func (s *TidalForces) Render() {
	s.surface.Clear()

	// Top half: Earth with exaggerated tidal bulge plus the moon.
	cy := s.h / 3
	cx := s.w / 2
	r := minI(s.w, s.h) / 8
	bulge := 1 + 8000*s.TidalStrength() // purely visual exaggeration
	if bulge > 1.8 {
		bulge = 1.8
	}
	// The bulge axis points at the moon.
	steps := 90
	px0, py0 := 0, 0
	for i := 0; i <= steps; i++ {
		th := 2 * math.Pi * float64(i) / float64(steps)
		rad := float64(r) * (1 + (bulge-1)*math.Abs(math.Cos(th)))
		x := cx + int(rad*math.Cos(th+s.angle))
		y := cy + int(rad*math.Sin(th+s.angle)*0.999)
		if i > 0 {
			s.surface.Line(px0, py0, x, y)
		}
		px0, py0 = x, y
	}

	moonR := float64(minI(s.w, s.h)) * 0.4
	mx := cx + int(moonR*math.Cos(s.angle))
	my := cy + int(moonR*math.Sin(s.angle))
	engine.Circle(s.surface, mx, my, 2)

	// Bottom half: differential force along the Earth diameter facing
	// the moon, relative to the pull at the center.
	baseY := s.h * 3 / 4
	s.surface.Line(4, baseY, s.w-4, baseY)
	amp := float64(s.h) / 5
	px, py := 4, baseY
	for i := 0; i <= 60; i++ {
		// u in Earth radii along the axis, -1 near side .. +1 far side.
		u := -1 + 2*float64(i)/60
		near := 1/((s.dist-u)*(s.dist-u)) - 1/(s.dist*s.dist)
		norm := near / (2 / (s.dist * s.dist * s.dist)) // in units of the sub-lunar value
		x := 4 + (s.w-8)*i/60
		y := baseY - int(norm*amp/2)
		s.surface.Line(px, py, x, y)
		px, py = x, y
	}
}

func (s *TidalForces) Reset() {
	s.t = 0
	s.angle = 0
}

func (s *TidalForces) Destroy() {
	s.surface = nil
}

func (s *TidalForces) StateDescription() string {
	str := s.TidalStrength()
	return fmt.Sprintf(
		"Moon of %.4f Earth masses orbiting at %.0f Earth radii (angle %.0f deg, "+
			"elapsed %.1f s). The tidal acceleration at the sub-lunar point is "+
			"2*m*r/d³ ≈ %.2e of surface gravity; it falls off with the cube of "+
			"distance, which is why the nearer Moon out-tides the far more massive "+
			"Sun. The differential pull stretches Earth into two bulges, one facing "+
			"the moon and one opposite, giving two tides per day.",
		s.ratio, s.dist, math.Mod(rad2deg(s.angle), 360), s.t, str)
}
