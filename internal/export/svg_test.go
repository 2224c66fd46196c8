package export

import (
	"strings"
	"testing"

	"github.com/superliangbot/simlab/internal/canvas"
)

func TestCanvasToSVG(t *testing.T) {
	c := canvas.New(10, 4)
	c.Set(0, 0)
	c.Set(5, 3)

	svg := CanvasToSVG(c, 2.0, "#ffcc00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML prologue")
	}
	if !strings.Contains(svg, `fill="#ffcc00"`) {
		t.Error("dot color not applied")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dot circles, got %d", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestCanvasToSVGDefaults(t *testing.T) {
	c := canvas.New(4, 2)
	c.Set(1, 1)

	svg := CanvasToSVG(c, 1.0, "")
	if !strings.Contains(svg, `fill="#00ff00"`) {
		t.Error("expected default dot color")
	}
	if CanvasToSVG(nil, 1.0, "") != "" {
		t.Error("nil canvas should yield an empty document")
	}
}
