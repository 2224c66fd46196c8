package tui

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

func (m *model) viewLive() string {
	var b strings.Builder
	s := m.styles
	cfg := m.selected

	status := s.Running.Render("● running")
	if m.loop.Paused() {
		status = s.Paused.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n",
		s.Title.Render(cfg.Title), status,
		s.Muted.Render(fmt.Sprintf("t=%.1fs  %d ticks", m.loop.Elapsed(), m.loop.Ticks()))))

	b.WriteString("  " + s.Plot.Render(strings.ReplaceAll(m.surf.String(), "\n", "\n  ")))
	b.WriteString("\n")

	b.WriteString(m.paramStrip())

	if m.showDesc {
		b.WriteString("\n" + m.descPanel())
	} else if len(m.trace) > 2 {
		b.WriteString("\n" + m.tracePanel())
	}

	b.WriteString("\n  " + s.Hint.Render("space pause  r reset  ←→ adjust  d describe  esc back  q quit") + "\n")
	return b.String()
}

// paramStrip shows the parameter under the cursor as a one-line slider
// so values can be nudged without leaving the live view.
func (m *model) paramStrip() string {
	s := m.styles
	schema := m.selected.Schema
	if len(schema) == 0 {
		return ""
	}
	p := schema[m.paramCur]
	cur := schema.Value(m.loop.Params(), p.Key)
	frac := 0.0
	if p.Max > p.Min {
		frac = (cur - p.Min) / (p.Max - p.Min)
	}
	value := fmt.Sprintf("%.2f", cur)
	if p.Unit != "" {
		value += " " + p.Unit
	}
	return fmt.Sprintf("  %s %s %s %s\n",
		s.Marker.Render(fmt.Sprintf("%d/%d", m.paramCur+1, len(schema))),
		s.Selected.Render(p.Label),
		s.slider(frac, 24),
		s.Value.Render(value))
}

// tracePanel plots the recent raster activity, a cheap universal
// observable that pulses with the simulation's motion.
func (m *model) tracePanel() string {
	width := m.width - 14
	if width < 20 {
		width = 20
	}
	graph := asciigraph.Plot(m.trace,
		asciigraph.Height(4),
		asciigraph.Width(width),
		asciigraph.Caption("raster activity"))
	return "  " + strings.ReplaceAll(m.styles.Muted.Render(graph), "\n", "\n  ") + "\n"
}

// descPanel renders the engine's tutoring narration in a bordered box.
func (m *model) descPanel() string {
	s := m.styles
	width := m.width - 8
	if width < 30 {
		width = 30
	}
	text := strings.Join(wrap(m.loop.Describe(), width-4), "\n")
	return "  " + strings.ReplaceAll(s.Panel.Render(text), "\n", "\n  ") + "\n"
}
