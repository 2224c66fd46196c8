package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// SnellsLawSchema declares the refraction controls.
var SnellsLawSchema = engine.Schema{
	{Key: "n1", Label: "Index n1 (top)", Min: 1.0, Max: 2.5, Step: 0.01, Default: 1.0},
	{Key: "n2", Label: "Index n2 (bottom)", Min: 1.0, Max: 2.5, Step: 0.01, Default: 1.5},
	{Key: "incidentAngle", Label: "Incident angle", Min: 0, Max: 89, Step: 1, Default: 30, Unit: "deg"},
}

// SnellsLaw animates refraction at a plane interface, including the
// total-internal-reflection regime when n1 > n2.
type SnellsLaw struct {
	surface engine.Surface
	w, h    int

	t     float64
	pulse float64 // 0..1 position of the photon pulse along the ray path

	n1, n2, theta1 float64
}

// NewSnellsLaw returns a fresh refraction engine.
func NewSnellsLaw() engine.Engine {
	return &SnellsLaw{}
}

func (s *SnellsLaw) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.n1 = SnellsLawSchema.Value(nil, "n1")
	s.n2 = SnellsLawSchema.Value(nil, "n2")
	s.theta1 = SnellsLawSchema.Value(nil, "incidentAngle")
}

func (s *SnellsLaw) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *SnellsLaw) Update(dt float64, p engine.Params) {
	s.n1 = SnellsLawSchema.Value(p, "n1")
	s.n2 = SnellsLawSchema.Value(p, "n2")
	s.theta1 = SnellsLawSchema.Value(p, "incidentAngle")

	s.t += dt
	s.pulse += 0.6 * dt
	for s.pulse > 1 {
		s.pulse -= 1
	}
}

// SinTheta2 returns sin of the refraction angle, which exceeds 1 in the
// total-internal-reflection regime.
func (s *SnellsLaw) SinTheta2() float64 {
	return s.n1 * math.Sin(deg2rad(s.theta1)) / s.n2
}

// TotalInternalReflection reports whether no refracted ray exists.
func (s *SnellsLaw) TotalInternalReflection() bool {
	return s.SinTheta2() > 1
}

// Theta2 returns the refraction angle in degrees; NaN under total
// internal reflection.
func (s *SnellsLaw) Theta2() float64 {
	return rad2deg(math.Asin(s.SinTheta2()))
}

func (s *SnellsLaw) Render() {
	s.surface.Clear()

	cx, cy := s.w/2, s.h/2
	rayLen := float64(minI(s.w, s.h)) * 0.42

	// Interface and normal.
	s.surface.Line(0, cy, s.w-1, cy)
	for y := 4; y < s.h-4; y += 6 {
		s.surface.Set(cx, y) // dashed normal
	}

	inc := deg2rad(s.theta1)
	// Incident ray arrives from the upper left toward the interface point.
	ix := cx - int(rayLen*math.Sin(inc))
	iy := cy - int(rayLen*math.Cos(inc))
	s.surface.Line(ix, iy, cx, cy)

	if s.TotalInternalReflection() {
		// Reflected ray mirrors the incident one about the normal.
		rx := cx + int(rayLen*math.Sin(inc))
		ry := cy - int(rayLen*math.Cos(inc))
		s.surface.Line(cx, cy, rx, ry)
		s.drawPulse(ix, iy, rx, ry)
	} else {
		ref := math.Asin(s.SinTheta2())
		tx := cx + int(rayLen*math.Sin(ref))
		ty := cy + int(rayLen*math.Cos(ref))
		s.surface.Line(cx, cy, tx, ty)
		s.drawPulse(ix, iy, tx, ty)
	}
}

// drawPulse marks the travelling photon along the two-segment path
// entry → interface → exit.
func (s *SnellsLaw) drawPulse(ix, iy, ox, oy int) {
	cx, cy := s.w/2, s.h/2
	var px, py int
	if s.pulse < 0.5 {
		f := s.pulse * 2
		px = ix + int(f*float64(cx-ix))
		py = iy + int(f*float64(cy-iy))
	} else {
		f := (s.pulse - 0.5) * 2
		px = cx + int(f*float64(ox-cx))
		py = cy + int(f*float64(oy-cy))
	}
	engine.Dot(s.surface, px, py, 1)
}

func (s *SnellsLaw) Reset() {
	s.t = 0
	s.pulse = 0
}

func (s *SnellsLaw) Destroy() {
	s.surface = nil
}

func (s *SnellsLaw) StateDescription() string {
	if s.TotalInternalReflection() {
		crit := rad2deg(math.Asin(s.n2 / s.n1))
		return fmt.Sprintf(
			"Light hits the n1=%.2f / n2=%.2f interface at %.0f deg. "+
				"sin(theta2) = n1*sin(theta1)/n2 = %.4f > 1, so the ray undergoes total "+
				"internal reflection (critical angle %.2f deg): no refracted ray exists "+
				"and all light reflects back into the denser medium.",
			s.n1, s.n2, s.theta1, s.SinTheta2(), crit)
	}
	return fmt.Sprintf(
		"Light passes from n1=%.2f into n2=%.2f at an incident angle of %.0f deg. "+
			"Snell's law gives sin(theta2) = n1*sin(theta1)/n2 = %.4f, so the refracted "+
			"angle is %.2f deg. No total internal reflection occurs. The ray bends %s "+
			"the normal because the second medium is %s.",
		s.n1, s.n2, s.theta1, s.SinTheta2(), s.Theta2(),
		towardOrAway(s.n1 < s.n2), denserOrRarer(s.n1 < s.n2))
}

func towardOrAway(denser bool) string {
	if denser {
		return "toward"
	}
	return "away from"
}

func denserOrRarer(denser bool) string {
	if denser {
		return "optically denser"
	}
	return "optically rarer"
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}
