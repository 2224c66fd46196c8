package sims

import (
	"fmt"
	"math"

	"github.com/superliangbot/simlab/internal/engine"
)

// ProjectileSchema declares the launch controls.
var ProjectileSchema = engine.Schema{
	{Key: "speed", Label: "Launch speed", Min: 5, Max: 100, Step: 1, Default: 40, Unit: "m/s"},
	{Key: "angle", Label: "Launch angle", Min: 5, Max: 90, Step: 1, Default: 45, Unit: "deg"},
	{Key: "gravity", Label: "Gravity", Min: 1, Max: 25, Step: 0.1, Default: 9.81, Unit: "m/s²"},
}

// Projectile flies a ballistic arc from closed-form kinematics and
// relaunches when it lands, leaving the previous arc as a trail.
type Projectile struct {
	surface engine.Surface
	w, h    int

	t       float64 // time since launch
	total   float64 // accumulated simulated time
	v0      float64
	angle   float64
	g       float64
	flights int
}

// NewProjectile returns a fresh ballistic engine.
func NewProjectile() engine.Engine {
	return &Projectile{}
}

func (s *Projectile) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.v0 = ProjectileSchema.Value(nil, "speed")
	s.angle = ProjectileSchema.Value(nil, "angle")
	s.g = ProjectileSchema.Value(nil, "gravity")
}

func (s *Projectile) Resize(w, h int) {
	s.w, s.h = w, h
}

// FlightTime returns the closed-form time of flight 2*v0*sin(a)/g.
func (s *Projectile) FlightTime() float64 {
	return 2 * s.v0 * math.Sin(deg2rad(s.angle)) / s.g
}

// Range returns v0^2*sin(2a)/g.
func (s *Projectile) Range() float64 {
	return s.v0 * s.v0 * math.Sin(2*deg2rad(s.angle)) / s.g
}

// MaxHeight returns (v0*sin(a))^2 / (2g).
func (s *Projectile) MaxHeight() float64 {
	vy := s.v0 * math.Sin(deg2rad(s.angle))
	return vy * vy / (2 * s.g)
}

func (s *Projectile) Update(dt float64, p engine.Params) {
	s.v0 = ProjectileSchema.Value(p, "speed")
	s.angle = ProjectileSchema.Value(p, "angle")
	s.g = ProjectileSchema.Value(p, "gravity")

	s.total += dt
	s.t += dt
	if ft := s.FlightTime(); s.t > ft && ft > 0 {
		s.t -= ft
		s.flights++
	}
}

func (s *Projectile) at(t float64) (x, y float64) {
	a := deg2rad(s.angle)
	return s.v0 * math.Cos(a) * t, s.v0*math.Sin(a)*t - 0.5*s.g*t*t
}

func (s *Projectile) Render() {
	s.surface.Clear()

	groundY := s.h - 4
	s.surface.Line(0, groundY, s.w-1, groundY)

	sx := fit(s.w, s.Range())
	sy := fit(s.h, s.MaxHeight()*1.3)
	scale := math.Min(sx, sy)

	// Full arc as the backdrop.
	steps := 64
	ft := s.FlightTime()
	px, py := 2, groundY
	for i := 1; i <= steps; i++ {
		x, y := s.at(ft * float64(i) / float64(steps))
		qx := 2 + int(x*scale)
		qy := groundY - int(y*scale)
		s.surface.Line(px, py, qx, qy)
		px, py = qx, qy
	}

	// The projectile itself.
	x, y := s.at(s.t)
	engine.Dot(s.surface, 2+int(x*scale), groundY-int(y*scale), 1)
}

func (s *Projectile) Reset() {
	s.t = 0
	s.total = 0
	s.flights = 0
}

func (s *Projectile) Destroy() {
	s.surface = nil
}

func (s *Projectile) StateDescription() string {
	x, y := s.at(s.t)
	return fmt.Sprintf(
		"Projectile launched at %.0f m/s and %.0f deg under g=%.2f m/s². "+
			"Closed-form range %.1f m, peak height %.1f m, flight time %.2f s. "+
			"Currently %.2f s into flight %d at (%.1f, %.1f) m; total elapsed %.1f s. "+
			"Horizontal velocity is constant; only the vertical component changes.",
		s.v0, s.angle, s.g, s.Range(), s.MaxHeight(), s.FlightTime(),
		s.t, s.flights+1, x, y, s.total)
}
