package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// PrismSchema declares the dispersion controls.
var PrismSchema = engine.Schema{
	{Key: "apexAngle", Label: "Apex angle", Min: 30, Max: 80, Step: 1, Default: 60, Unit: "°"},
	{Key: "incidenceAngle", Label: "Incidence angle", Min: 20, Max: 70, Step: 1, Default: 45, Unit: "°"},
	{Key: "dispersionStrength", Label: "Dispersion", Min: 0, Max: 0.1, Step: 0.005, Default: 0.04},
}

type prismRay struct {
	name string
	n    float64 // refractive index for this color
	dev  float64 // total deviation, degrees
}

// Prism fans a white beam into a spectrum. Each color carries its own
// refractive index around a base of 1.52, spread by the dispersion
// strength, and the fan is drawn from the exit face.
type Prism struct {
	surface engine.Surface
	w, h    int

	apex, incidence, spread float64
	rays                    []prismRay
	sweep                   float64 // animated beam reveal, 0..1
}

var prismColors = []struct {
	name   string
	offset float64 // index offset in units of dispersion strength
}{
	{"red", -1.0},
	{"orange", -0.6},
	{"yellow", -0.2},
	{"green", 0.2},
	{"blue", 0.6},
	{"violet", 1.0},
}

// NewPrism returns a fresh dispersion engine.
func NewPrism() engine.Engine {
	return &Prism{}
}

func (s *Prism) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.apex = PrismSchema.Value(nil, "apexAngle")
	s.incidence = PrismSchema.Value(nil, "incidenceAngle")
	s.spread = PrismSchema.Value(nil, "dispersionStrength")
	s.trace()
}

// Deviation computes the total deviation through the prism for a given
// refractive index using the two-refraction construction.
func (s *Prism) Deviation(n float64) float64 {
	a := deg2rad(s.apex)
	i1 := deg2rad(s.incidence)
	r1 := math.Asin(math.Sin(i1) / n)
	r2 := a - r1
	sinI2 := n * math.Sin(r2)
	if sinI2 >= 1 {
		// Total internal reflection at the exit face: the ray never
		// leaves, report the grazing deviation instead.
		sinI2 = 1
	}
	i2 := math.Asin(sinI2)
	return rad2deg(i1 + i2 - a)
}

func (s *Prism) trace() {
	s.rays = s.rays[:0]
	for _, c := range prismColors {
		n := 1.52 + c.offset*s.spread
		s.rays = append(s.rays, prismRay{name: c.name, n: n, dev: s.Deviation(n)})
	}
}

// AngularSpread returns the fan width in degrees between the least and
// most deviated colors.
func (s *Prism) AngularSpread() float64 {
	if len(s.rays) == 0 {
		return 0
	}
	return s.rays[len(s.rays)-1].dev - s.rays[0].dev
}

func (s *Prism) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *Prism) Update(dt float64, p engine.Params) {
	s.apex = PrismSchema.Value(p, "apexAngle")
	s.incidence = PrismSchema.Value(p, "incidenceAngle")
	s.spread = PrismSchema.Value(p, "dispersionStrength")
	s.trace()
	s.sweep = clampF(s.sweep+dt/1.5, 0, 1)
}

func (s *Prism) Render() {
	s.surface.Clear()

	cx, cy := s.w/2, s.h/2
	half := deg2rad(s.apex / 2)
	side := float64(s.h) / 2.6

	// Triangle with the apex up.
	ax, ay := cx, cy-int(side*0.7)
	bx := cx - int(side*math.Sin(half))
	dx := cx + int(side*math.Sin(half))
	by := cy + int(side*0.5)
	s.surface.Line(ax, ay, bx, by)
	s.surface.Line(ax, ay, dx, by)
	s.surface.Line(bx, by, dx, by)

	// Incoming white beam, reveal animated by sweep.
	inLen := float64(cx-4) * s.sweep
	inAngle := deg2rad(s.incidence - 90)
	ex, ey := cx-int(side*math.Sin(half)/2), cy
	sx := ex - int(inLen*math.Cos(-inAngle/3))
	sy := ey - int(inLen*math.Sin(-inAngle/3))
	s.surface.Line(sx, sy, ex, ey)

	if s.sweep < 1 {
		return
	}

	// Exit fan: one ray per color, deviations exaggerated for visibility.
	fx, fy := cx+int(side*math.Sin(half)/2), cy
	fanLen := float64(s.w-fx) - 3
	base := s.rays[0].dev
	for _, r := range s.rays {
		ang := deg2rad(10 + (r.dev-base)*60/math.Max(s.AngularSpread(), 0.1))
		tx := fx + int(fanLen*math.Cos(ang))
		ty := fy + int(fanLen*math.Sin(ang))
		s.surface.Line(fx, fy, tx, ty)
	}
}

func (s *Prism) Reset() {
	s.sweep = 0
	s.trace()
}

func (s *Prism) Destroy() {
	s.surface = nil
	s.rays = nil
}

func (s *Prism) StateDescription() string {
	if len(s.rays) == 0 {
		s.trace()
	}
	red := s.rays[0]
	violet := s.rays[len(s.rays)-1]
	return fmt.Sprintf(
		"White light enters a %.0f° prism at %.0f° incidence. Each color sees a "+
			"slightly different refractive index, so red (n=%.3f) deviates %.1f° while "+
			"violet (n=%.3f) deviates %.1f°, fanning the beam across %.2f°. Shorter "+
			"wavelengths bend more because the glass is denser for them.",
		s.apex, s.incidence, red.n, red.dev, violet.n, violet.dev, s.AngularSpread())
}
