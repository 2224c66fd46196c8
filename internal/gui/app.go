package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/superliangbot/simlab/internal/audio"
	"github.com/superliangbot/simlab/internal/config"
	"github.com/superliangbot/simlab/internal/engine"
	"github.com/superliangbot/simlab/internal/host"
	"github.com/superliangbot/simlab/internal/registry"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	pixelScale   = 4
	hudHeight    = 150
)

var (
	colBg     = rl.NewColor(10, 10, 14, 255)
	colDot    = rl.NewColor(120, 220, 255, 255)
	colLine   = rl.NewColor(70, 140, 190, 255)
	colText   = rl.NewColor(170, 170, 180, 255)
	colDim    = rl.NewColor(80, 80, 90, 255)
	colAccent = rl.NewColor(255, 200, 80, 255)
	colPaused = rl.NewColor(240, 110, 110, 255)
	colHud    = rl.NewColor(18, 18, 24, 255)
)

// App owns one running simulation inside a raylib window. The braille
// terminal path and this one share the same engines and host loop; only
// the surface differs.
type App struct {
	logger *log.Logger
	cfg    *config.Config

	sim    *registry.SimulationConfig
	loop   *host.Loop
	surf   *drawSurface
	params engine.Params

	son       *audio.Sonifier
	audioOn   bool
	paramCur  int
	showDesc  bool
	statusMsg string
	statusAge time.Time
}

// Run opens a window for slug and blocks until the user quits.
func Run(slug string, cfg *config.Config, logger *log.Logger) error {
	sim, ok := registry.Get(slug)
	if !ok {
		return fmt.Errorf("%w: %s", registry.ErrNotFound, slug)
	}
	factory, err := registry.LoadEngine(context.Background(), slug)
	if err != nil {
		return err
	}

	a := &App{
		logger: logger,
		cfg:    cfg,
		sim:    sim,
		loop:   host.New(logger),
		son:    audio.NewSonifier(),
	}
	a.params = sim.Schema.Defaults()
	for k, v := range cfg.ParamsFor(slug) {
		if pm, ok := sim.Schema.Find(k); ok {
			a.params[k] = pm.Clamp(v)
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "simlab - "+sim.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	a.surf = newDrawSurface(a.surfaceDims())
	a.loop.Bind(factory(), a.surf)
	a.loop.SetParams(a.params)
	a.loop.Start()
	defer a.loop.Close()

	if cfg.Audio {
		a.toggleAudio()
	}
	defer a.stopAudio()

	for !rl.WindowShouldClose() {
		if a.update() {
			break
		}
		a.draw()
	}
	return nil
}

// surfaceDims maps the drawable region above the HUD to logical pixels.
func (a *App) surfaceDims() (int, int) {
	w := int(rl.GetScreenWidth()) / pixelScale
	h := (int(rl.GetScreenHeight()) - hudHeight) / pixelScale
	if w < 40 {
		w = 40
	}
	if h < 30 {
		h = 30
	}
	return w, h
}

// update handles input and advances the loop. Returns true to quit.
func (a *App) update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	if rl.IsWindowResized() {
		w, h := a.surfaceDims()
		a.surf.resize(w, h)
		a.loop.NotifyResize(w, h)
	}
	switch {
	case rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP):
		if a.loop.TogglePause() {
			a.flash("paused")
		} else {
			a.flash("running")
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.loop.Reset()
		a.flash("reset")
	case rl.IsKeyPressed(rl.KeyD):
		a.showDesc = !a.showDesc
	case rl.IsKeyPressed(rl.KeyA):
		a.toggleAudio()
	case rl.IsKeyPressed(rl.KeyUp):
		if a.paramCur > 0 {
			a.paramCur--
		}
	case rl.IsKeyPressed(rl.KeyDown):
		if a.paramCur < len(a.sim.Schema)-1 {
			a.paramCur++
		}
	case rl.IsKeyPressed(rl.KeyLeft):
		a.nudge(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		a.nudge(+1)
	}

	a.loop.Tick(time.Now())
	if a.audioOn {
		a.son.SetActivity(a.surf.activity())
	}
	return false
}

func (a *App) nudge(dir float64) {
	if len(a.sim.Schema) == 0 {
		return
	}
	pm := a.sim.Schema[a.paramCur]
	step := pm.Step
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		step *= 10
	}
	a.params[pm.Key] = pm.Clamp(a.params[pm.Key] + dir*step)
	a.loop.SetParams(a.params)
}

func (a *App) toggleAudio() {
	if a.audioOn {
		a.stopAudio()
		a.flash("audio off")
		return
	}
	if err := a.son.Start(); err != nil {
		a.logger.Warn("audio unavailable", "err", err)
		a.flash("audio unavailable")
		return
	}
	a.audioOn = true
	a.flash("audio on")
}

func (a *App) stopAudio() {
	if a.audioOn {
		a.son.Stop()
		a.audioOn = false
	}
}

func (a *App) flash(msg string) {
	a.statusMsg = msg
	a.statusAge = time.Now()
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	for _, ln := range a.surf.lines {
		rl.DrawLineEx(
			rl.NewVector2(float32(ln[0]*pixelScale), float32(ln[1]*pixelScale)),
			rl.NewVector2(float32(ln[2]*pixelScale), float32(ln[3]*pixelScale)),
			1.5, colLine)
	}
	for _, pt := range a.surf.points {
		rl.DrawRectangle(pt[0]*pixelScale, pt[1]*pixelScale, pixelScale, pixelScale, colDot)
	}

	a.drawHUD()
	if a.showDesc {
		a.drawDescription()
	}
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	sw := int32(rl.GetScreenWidth())
	sh := int32(rl.GetScreenHeight())
	top := sh - hudHeight

	rl.DrawRectangle(0, top, sw, hudHeight, colHud)
	rl.DrawLine(0, top, sw, top, colDim)

	status := "running"
	statusCol := colAccent
	if a.loop.Paused() {
		status = "paused"
		statusCol = colPaused
	}
	rl.DrawText(a.sim.Title, 16, top+10, 22, rl.White)
	rl.DrawText(fmt.Sprintf("%s   t=%6.2fs   tick %d", status, a.loop.Elapsed(), a.loop.Ticks()),
		16, top+38, 16, statusCol)

	live := a.loop.Params()
	y := top + 62
	for i, pm := range a.sim.Schema {
		if i >= 4 {
			rl.DrawText(fmt.Sprintf("... %d more", len(a.sim.Schema)-4), 16, y, 14, colDim)
			break
		}
		col := colText
		marker := "  "
		if i == a.paramCur {
			col = rl.White
			marker = "> "
		}
		v := a.sim.Schema.Value(live, pm.Key)
		line := fmt.Sprintf("%s%-22s %8.2f %s", marker, pm.Label, v, pm.Unit)
		rl.DrawText(line, 16, y, 14, col)

		barX := int32(330)
		barW := int32(180)
		frac := float32((v - pm.Min) / (pm.Max - pm.Min))
		rl.DrawRectangle(barX, y+4, barW, 6, colDim)
		rl.DrawRectangle(barX, y+4, int32(frac*float32(barW)), 6, col)
		y += 20
	}

	if a.audioOn {
		a.drawMeters(sw-160, top+14)
	}
	if a.statusMsg != "" && time.Since(a.statusAge) < 2*time.Second {
		rl.DrawText(a.statusMsg, sw-320, sh-24, 14, colAccent)
	}
	rl.DrawText("space pause  r reset  arrows params  d info  a audio  q quit",
		16, sh-24, 14, colDim)
}

// drawMeters shows the sonifier's bass, mid and high bands as bars.
func (a *App) drawMeters(x, y int32) {
	bass, mid, high := a.son.Spectrum()
	bands := []struct {
		label string
		level float64
	}{{"bass", bass}, {"mid", mid}, {"high", high}}

	for i, b := range bands {
		bx := x + int32(i)*48
		h := int32(b.level * 60)
		if h > 60 {
			h = 60
		}
		rl.DrawRectangle(bx, y+60-h, 32, h, colLine)
		rl.DrawRectangleLines(bx, y, 32, 60, colDim)
		rl.DrawText(b.label, bx, y+64, 12, colDim)
	}
}

func (a *App) drawDescription() {
	sw := int32(rl.GetScreenWidth())
	boxW := sw - 160
	lines := wrapText(a.loop.Describe(), int(boxW-40)/9)
	boxH := int32(len(lines))*20 + 56

	rl.DrawRectangle(80, 60, boxW, boxH, colHud)
	rl.DrawRectangleLines(80, 60, boxW, boxH, colAccent)
	rl.DrawText("state", 100, 74, 18, colAccent)
	for i, ln := range lines {
		rl.DrawText(ln, 100, 104+int32(i)*20, 15, colText)
	}
}

func wrapText(text string, width int) []string {
	if width < 16 {
		width = 16
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if len(cur)+1+len(w) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		lines = append(lines, cur)
	}
	return lines
}
