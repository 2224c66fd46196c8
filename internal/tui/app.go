// Package tui is the interactive terminal shell: a catalog menu, a
// per-simulation parameter screen, and a live braille-rendered view
// driven by the host loop.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/config"
	"github.com/superliangbot/simlab/internal/engine"
	"github.com/superliangbot/simlab/internal/host"
	"github.com/superliangbot/simlab/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenDetail
	screenLive
)

type model struct {
	cfg    *config.Config
	logger *log.Logger
	theme  Theme
	styles Styles

	screen screen
	slugs  []string
	cursor int

	selected *registry.SimulationConfig
	params   engine.Params
	paramCur int
	editing  bool
	input    textinput.Model
	notFound string

	loop     *host.Loop
	surf     *canvas.Canvas
	trace    []float64
	showDesc bool
	fps      int

	width  int
	height int
}

// NewApp builds the shell over the full catalog.
func NewApp(cfg *config.Config, logger *log.Logger) *model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := GetTheme(cfg.Theme)
	return &model{
		cfg:    cfg,
		logger: logger,
		theme:  theme,
		styles: NewStyles(theme),
		screen: screenMenu,
		slugs:  registry.Slugs(),
		loop:   host.New(logger),
		fps:    cfg.FPS,
		width:  80,
		height: 24,
	}
}

func (m *model) Init() tea.Cmd {
	if m.screen == screenLive {
		return tick(m.fps)
	}
	return nil
}

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.screen == screenLive && m.surf != nil {
			cols, rows := m.canvasDims()
			m.surf.Resize(cols, rows)
			m.loop.NotifyResize(m.surf.Size())
		}
		return m, nil
	case tickMsg:
		if m.screen != screenLive {
			return m, nil
		}
		m.loop.Tick(time.Time(msg))
		m.trace = append(m.trace, float64(m.surf.LitDots()))
		if len(m.trace) > 120 {
			m.trace = m.trace[1:]
		}
		return m, tick(m.fps)
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenDetail:
		return m.detailKey(msg)
	case screenLive:
		return m.liveKey(msg)
	}
	return m, nil
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.slugs)-1 {
			m.cursor++
		}
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
		m.cfg.Theme = m.theme.Name
	case "enter", " ":
		m.openDetail(m.slugs[m.cursor])
	}
	return m, nil
}

// openDetail loads one simulation's config and seeds the parameter
// snapshot from schema defaults plus any configured overrides.
func (m *model) openDetail(slug string) {
	cfg, ok := registry.Get(slug)
	if !ok {
		m.notFound = slug
		return
	}
	m.notFound = ""
	m.selected = cfg
	m.params = cfg.Schema.Defaults()
	for k, v := range m.cfg.ParamsFor(slug) {
		m.params[k] = v
	}
	m.paramCur = 0
	m.editing = false
	m.screen = screenDetail
}

func (m *model) detailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64); err == nil {
				p := m.selected.Schema[m.paramCur]
				m.params[p.Key] = p.Clamp(v)
			}
			m.editing = false
		case "esc":
			m.editing = false
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.screen = screenMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCur > 0 {
			m.paramCur--
		}
	case "down", "j":
		if m.paramCur < len(m.selected.Schema)-1 {
			m.paramCur++
		}
	case "left", "h":
		m.nudgeParam(-1)
	case "right", "l":
		m.nudgeParam(+1)
	case "shift+left", "H":
		m.nudgeParam(-10)
	case "shift+right", "L":
		m.nudgeParam(+10)
	case "tab":
		m.cyclePreset()
	case "enter":
		p := m.selected.Schema[m.paramCur]
		ti := textinput.New()
		ti.Prompt = p.Label + ": "
		ti.Placeholder = fmt.Sprintf("%g", m.selected.Schema.Value(m.params, p.Key))
		ti.Width = 16
		ti.Focus()
		m.input = ti
		m.editing = true
	case "s", " ":
		return m.startLive()
	}
	return m, nil
}

func (m *model) nudgeParam(dir float64) {
	if m.selected == nil || len(m.selected.Schema) == 0 {
		return
	}
	p := m.selected.Schema[m.paramCur]
	cur := m.selected.Schema.Value(m.params, p.Key)
	m.params[p.Key] = p.Clamp(cur + dir*p.Step)
	if m.screen == screenLive {
		m.loop.SetParams(m.params)
	}
}

// cyclePreset applies the next named preset for the selected slug.
func (m *model) cyclePreset() {
	names := config.ListPresets(m.selected.Slug)
	if len(names) == 0 {
		return
	}
	// Find which preset matches the current values, then advance.
	next := names[0]
	for i, name := range names {
		if m.matchesPreset(name) {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.params = m.selected.Schema.Defaults()
	for k, v := range config.GetPreset(m.selected.Slug, next) {
		m.params[k] = v
	}
}

func (m *model) matchesPreset(name string) bool {
	for k, v := range config.GetPreset(m.selected.Slug, name) {
		if m.params[k] != v {
			return false
		}
	}
	return true
}

func (m *model) startLive() (tea.Model, tea.Cmd) {
	factory, err := registry.LoadEngine(context.Background(), m.selected.Slug)
	if err != nil {
		m.notFound = m.selected.Slug
		m.screen = screenMenu
		return m, nil
	}
	cols, rows := m.canvasDims()
	m.surf = canvas.New(cols, rows)
	m.loop.Bind(factory(), m.surf)
	m.loop.SetParams(m.params)
	m.loop.SetPaused(false)
	m.loop.Start()
	m.trace = m.trace[:0]
	m.showDesc = false
	m.screen = screenLive
	return m, tea.Batch(tea.ClearScreen, tick(m.fps))
}

func (m *model) canvasDims() (cols, rows int) {
	cols = m.width - 4
	rows = m.height - 9
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}
	return cols, rows
}

func (m *model) liveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.loop.Close()
		m.screen = screenDetail
		return m, tea.ClearScreen
	case "ctrl+c":
		m.loop.Close()
		return m, tea.Quit
	case " ", "p":
		m.loop.TogglePause()
	case "r":
		m.loop.Reset()
		m.trace = m.trace[:0]
	case "d":
		m.showDesc = !m.showDesc
	case "up", "k":
		if m.paramCur > 0 {
			m.paramCur--
		}
	case "down", "j":
		if m.paramCur < len(m.selected.Schema)-1 {
			m.paramCur++
		}
	case "left", "h":
		m.nudgeParam(-1)
	case "right", "l":
		m.nudgeParam(+1)
	case "shift+left", "H":
		m.nudgeParam(-10)
	case "shift+right", "L":
		m.nudgeParam(+10)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
		m.cfg.Theme = m.theme.Name
	}
	return m, nil
}

func (m *model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenDetail:
		return m.viewDetail()
	case screenLive:
		return m.viewLive()
	}
	return ""
}

func (m *model) viewMenu() string {
	var b strings.Builder
	s := m.styles

	b.WriteString("\n")
	b.WriteString("      " + s.Title.Render("s i m l a b") + "  " +
		s.Muted.Render("interactive physics") + "\n")
	b.WriteString("      " + s.separator(40) + "\n\n")

	if m.notFound != "" {
		b.WriteString("      " + s.Paused.Render("no simulation named "+m.notFound) + "\n\n")
	}

	lastCat := ""
	for i, slug := range m.slugs {
		cfg, _ := registry.Get(slug)
		if cfg.Category != lastCat {
			lastCat = cfg.Category
			b.WriteString("      " + s.Muted.Render(strings.ToLower(cfg.Category)) + "\n")
		}
		title := fmt.Sprintf("%-22s", cfg.Title)
		if i == m.cursor {
			b.WriteString("      " + s.Marker.Render("▸ ") + s.Selected.Render(title) +
				s.Muted.Render(cfg.Description) + "\n")
		} else {
			b.WriteString("        " + s.Normal.Render(title) +
				s.Muted.Render(cfg.Description) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("      " + s.Hint.Render("↑↓ select   enter open   t theme ("+m.theme.Name+")   q quit") + "\n")
	return b.String()
}

func (m *model) viewDetail() string {
	var b strings.Builder
	s := m.styles
	cfg := m.selected

	b.WriteString("\n")
	b.WriteString("      " + s.Title.Render(cfg.Title) + "  " +
		s.Muted.Render(cfg.Category) + "\n")
	b.WriteString("      " + s.separator(44) + "\n\n")

	for _, line := range wrap(cfg.Long, 56) {
		b.WriteString("      " + s.Normal.Render(line) + "\n")
	}
	b.WriteString("\n")

	for i, p := range cfg.Schema {
		cur := cfg.Schema.Value(m.params, p.Key)
		frac := 0.0
		if p.Max > p.Min {
			frac = (cur - p.Min) / (p.Max - p.Min)
		}
		label := fmt.Sprintf("%-18s", p.Label)
		value := fmt.Sprintf("%8.2f", cur)
		if p.Unit != "" {
			value += " " + p.Unit
		}
		if m.editing && i == m.paramCur {
			b.WriteString("      " + s.Marker.Render("▸ ") + m.input.View() + "\n")
			continue
		}
		if i == m.paramCur {
			b.WriteString("      " + s.Marker.Render("▸ ") + s.Selected.Render(label) +
				s.slider(frac, 20) + " " + s.Value.Render(value) + "\n")
		} else {
			b.WriteString("        " + s.Muted.Render(label) +
				s.slider(frac, 20) + " " + s.Muted.Render(value) + "\n")
		}
	}

	if names := config.ListPresets(cfg.Slug); len(names) > 0 {
		b.WriteString("\n      " + s.Muted.Render("presets: "+strings.Join(names, ", ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("      " + s.Hint.Render("↑↓ select  ←→ adjust  enter type  tab preset  s start  esc back") + "\n")
	return b.String()
}

// wrap breaks text into lines no wider than w runes.
func wrap(text string, w int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > w {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Run opens the interactive shell over the whole catalog.
func Run(cfg *config.Config, logger *log.Logger) error {
	p := tea.NewProgram(NewApp(cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunSimulation opens the shell directly in the live view of one
// simulation, as the `run` subcommand does.
func RunSimulation(cfg *config.Config, slug string, overrides map[string]float64, paused bool, logger *log.Logger) error {
	m := NewApp(cfg, logger)
	m.openDetail(slug)
	if m.notFound != "" {
		return fmt.Errorf("%w: %s", registry.ErrNotFound, slug)
	}
	for k, v := range overrides {
		m.params[k] = v
	}
	m.startLive()
	if m.screen != screenLive {
		return fmt.Errorf("%w: %s", registry.ErrNotFound, slug)
	}
	m.loop.SetPaused(paused)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
