package engine

import "math"

// Surface is the opaque raster target an engine draws into. Coordinates
// are integer pixels with the origin at the top-left; out-of-bounds
// writes are silently dropped. The host owns the surface and resizes it
// out-of-band, notifying the engine through Resize.
type Surface interface {
	Size() (width, height int)
	Clear()
	Set(x, y int)
	Line(x0, y0, x1, y1 int)
}

// Dot paints a filled square of radius r around (x, y). Leaves use it for
// point masses and markers.
func Dot(s Surface, x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			s.Set(x+dx, y+dy)
		}
	}
}

// Rect strokes an axis-aligned rectangle.
func Rect(s Surface, x0, y0, x1, y1 int) {
	s.Line(x0, y0, x1, y0)
	s.Line(x1, y0, x1, y1)
	s.Line(x1, y1, x0, y1)
	s.Line(x0, y1, x0, y0)
}

// Circle strokes a midpoint circle of radius r centered on (cx, cy).
func Circle(s Surface, cx, cy, r int) {
	if r <= 0 {
		s.Set(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		s.Set(cx+x, cy+y)
		s.Set(cx+y, cy+x)
		s.Set(cx-y, cy+x)
		s.Set(cx-x, cy+y)
		s.Set(cx-x, cy-y)
		s.Set(cx-y, cy-x)
		s.Set(cx+y, cy-x)
		s.Set(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// Ellipse strokes an axis-aligned ellipse with semi-axes (rx, ry).
func Ellipse(s Surface, cx, cy, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		s.Set(cx, cy)
		return
	}
	// Parametric sweep is plenty at raster resolution.
	steps := 4 * (rx + ry)
	px, py := cx+rx, cy
	for i := 1; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(float64(rx)*math.Cos(t))
		y := cy + int(float64(ry)*math.Sin(t))
		s.Line(px, py, x, y)
		px, py = x, y
	}
}
