package canvas

import (
	"strings"
	"testing"
)

func TestSetAndCell(t *testing.T) {
	c := New(4, 4)
	c.Set(0, 0)
	if c.Cell(0, 0) != 0x2801 {
		t.Errorf("expected dot 1 set, got %U", c.Cell(0, 0))
	}
	c.Set(1, 3)
	if c.Cell(0, 0)&0x80 == 0 {
		t.Error("expected dot 8 set in same cell")
	}
}

func TestOutOfBoundsDropped(t *testing.T) {
	c := New(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)
	if c.LitDots() != 0 {
		t.Errorf("out-of-bounds writes should be dropped, %d dots lit", c.LitDots())
	}
}

func TestUnsetRestoresBlank(t *testing.T) {
	c := New(2, 2)
	c.Set(1, 1)
	c.Unset(1, 1)
	if c.Cell(0, 0) != 0x2800 {
		t.Errorf("expected blank cell, got %U", c.Cell(0, 0))
	}
}

func TestLineEndpoints(t *testing.T) {
	c := New(10, 10)
	c.Line(0, 0, 19, 39)
	if c.Cell(0, 0) == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Cell(9, 9)&0x80 == 0 {
		t.Error("line end not drawn")
	}
}

func TestResizeBlanksAndReallocates(t *testing.T) {
	c := New(4, 4)
	c.Set(0, 0)
	c.Resize(8, 2)
	w, h := c.Size()
	if w != 16 || h != 8 {
		t.Errorf("expected 16x8 pixels, got %dx%d", w, h)
	}
	if c.LitDots() != 0 {
		t.Error("resize should blank the canvas")
	}

	// Same dimensions twice keeps the buffer bounded and blank.
	c.Set(3, 3)
	c.Resize(8, 2)
	c.Resize(8, 2)
	if c.LitDots() != 0 {
		t.Error("identical resize should still blank")
	}
}

func TestStringShape(t *testing.T) {
	c := New(3, 2)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, ln := range lines {
		if len([]rune(ln)) != 3 {
			t.Errorf("expected 3 cells per row, got %d", len([]rune(ln)))
		}
	}
}
