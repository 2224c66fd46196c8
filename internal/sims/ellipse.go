package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// EllipseSchema declares the ellipse-geometry controls.
var EllipseSchema = engine.Schema{
	{Key: "semiMajor", Label: "Semi-major axis", Min: 50, Max: 300, Step: 5, Default: 200, Unit: "px"},
	{Key: "eccentricity", Label: "Eccentricity", Min: 0, Max: 0.95, Step: 0.01, Default: 0.6},
	{Key: "orbitSpeed", Label: "Orbit speed", Min: 0, Max: 2, Step: 0.05, Default: 0.4, Unit: "rev/s"},
}

// Ellipse traces the geometry of an ellipse: semi-axes, foci, and a
// point sweeping the perimeter, illustrating b = a*sqrt(1-e^2) and
// c = a*e.
type Ellipse struct {
	surface engine.Surface
	w, h    int

	t     float64 // elapsed simulated time
	phase float64 // sweep angle of the orbiting point

	a, e float64 // last applied parameters
}

// NewEllipse returns a fresh ellipse-geometry engine.
func NewEllipse() engine.Engine {
	return &Ellipse{}
}

func (s *Ellipse) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.a = EllipseSchema.Value(nil, "semiMajor")
	s.e = EllipseSchema.Value(nil, "eccentricity")
}

func (s *Ellipse) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *Ellipse) Update(dt float64, p engine.Params) {
	s.a = EllipseSchema.Value(p, "semiMajor")
	s.e = EllipseSchema.Value(p, "eccentricity")
	speed := EllipseSchema.Value(p, "orbitSpeed")

	s.t += dt
	s.phase += 2 * math.Pi * speed * dt
	if s.phase > 2*math.Pi {
		s.phase -= 2 * math.Pi
	}
}

// SemiMinor returns b = a*sqrt(1-e^2) for the current parameters.
func (s *Ellipse) SemiMinor() float64 {
	return s.a * math.Sqrt(1-s.e*s.e)
}

// FocalDistance returns c = a*e for the current parameters.
func (s *Ellipse) FocalDistance() float64 {
	return s.a * s.e
}

func (s *Ellipse) Render() {
	s.surface.Clear()

	b := s.SemiMinor()
	c := s.FocalDistance()

	scale := math.Min(fit(s.w, 2*s.a), fit(s.h, 2*b))
	cx, cy := s.w/2, s.h/2
	rx := int(s.a * scale)
	ry := int(b * scale)
	fx := int(c * scale)

	engine.Ellipse(s.surface, cx, cy, rx, ry)

	// Foci and center.
	engine.Dot(s.surface, cx-fx, cy, 1)
	engine.Dot(s.surface, cx+fx, cy, 1)
	s.surface.Set(cx, cy)

	// Axes.
	s.surface.Line(cx-rx, cy, cx+rx, cy)
	s.surface.Line(cx, cy-ry, cx, cy+ry)

	// Orbiting point with its two focal radii.
	px := cx + int(float64(rx)*math.Cos(s.phase))
	py := cy + int(float64(ry)*math.Sin(s.phase))
	engine.Dot(s.surface, px, py, 1)
	s.surface.Line(cx-fx, cy, px, py)
	s.surface.Line(cx+fx, cy, px, py)
}

func (s *Ellipse) Reset() {
	s.t = 0
	s.phase = 0
}

func (s *Ellipse) Destroy() {
	s.surface = nil
}

func (s *Ellipse) StateDescription() string {
	b := s.SemiMinor()
	c := s.FocalDistance()
	return fmt.Sprintf(
		"Ellipse with semi-major axis a=%.1f px and eccentricity e=%.2f. "+
			"Derived semi-minor axis b=a*sqrt(1-e^2)=%.1f px, focal distance c=a*e=%.1f px "+
			"(checks c^2=a^2-b^2). A point is sweeping the perimeter at angle %.0f deg; "+
			"elapsed time %.1f s. The sum of its distances to the two foci stays 2a.",
		s.a, s.e, b, c, rad2deg(s.phase), s.t)
}
