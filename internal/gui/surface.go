package gui

// drawSurface buffers the primitives an engine emits during Render so
// the frame loop can replay them inside the raylib draw phase. One
// logical pixel maps to pixelScale screen pixels.
type drawSurface struct {
	w, h   int
	points [][2]int32
	lines  [][4]int32
}

func newDrawSurface(w, h int) *drawSurface {
	return &drawSurface{w: w, h: h}
}

func (s *drawSurface) Size() (int, int) {
	return s.w, s.h
}

func (s *drawSurface) Clear() {
	s.points = s.points[:0]
	s.lines = s.lines[:0]
}

func (s *drawSurface) Set(x, y int) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.points = append(s.points, [2]int32{int32(x), int32(y)})
}

func (s *drawSurface) Line(x0, y0, x1, y1 int) {
	s.lines = append(s.lines, [4]int32{int32(x0), int32(y0), int32(x1), int32(y1)})
}

func (s *drawSurface) resize(w, h int) {
	s.w, s.h = w, h
}

// activity is the frame's primitive count, fed to the sonifier.
func (s *drawSurface) activity() float64 {
	return float64(len(s.points) + 4*len(s.lines))
}
