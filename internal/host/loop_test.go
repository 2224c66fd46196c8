package host

import (
	"testing"
	"time"

	"github.com/superliangbot/simlab/internal/engine"
)

type fakeSurface struct{ w, h int }

func (s *fakeSurface) Size() (int, int)    { return s.w, s.h }
func (s *fakeSurface) Clear()              {}
func (s *fakeSurface) Set(x, y int)        {}
func (s *fakeSurface) Line(a, b, c, d int) {}

type call struct {
	name string
	dt   float64
	w, h int
}

type fakeEngine struct {
	calls      []call
	inits      int
	destroys   int
	elapsed    float64
	lastParams engine.Params
}

func (e *fakeEngine) Init(s engine.Surface) {
	e.inits++
	e.calls = append(e.calls, call{name: "init"})
}
func (e *fakeEngine) Resize(w, h int) { e.calls = append(e.calls, call{name: "resize", w: w, h: h}) }
func (e *fakeEngine) Update(dt float64, p engine.Params) {
	e.elapsed += dt
	e.lastParams = p
	e.calls = append(e.calls, call{name: "update", dt: dt})
}
func (e *fakeEngine) Render()                  { e.calls = append(e.calls, call{name: "render"}) }
func (e *fakeEngine) Reset()                   { e.elapsed = 0 }
func (e *fakeEngine) Destroy()                 { e.destroys++ }
func (e *fakeEngine) StateDescription() string { return "fake" }

func (e *fakeEngine) count(name string) int {
	n := 0
	for _, c := range e.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func newRunningLoop(t *testing.T) (*Loop, *fakeEngine) {
	t.Helper()
	l := New(nil)
	eng := &fakeEngine{}
	l.Bind(eng, &fakeSurface{w: 160, h: 96})
	l.Start()
	return l, eng
}

func TestBindInitThenResize(t *testing.T) {
	l := New(nil)
	eng := &fakeEngine{}
	l.Bind(eng, &fakeSurface{w: 160, h: 96})

	if eng.inits != 1 {
		t.Fatalf("expected 1 init, got %d", eng.inits)
	}
	if len(eng.calls) != 2 || eng.calls[0].name != "init" || eng.calls[1].name != "resize" {
		t.Fatalf("expected init then resize, got %v", eng.calls)
	}
	if eng.calls[1].w != 160 || eng.calls[1].h != 96 {
		t.Errorf("initial resize should carry surface size, got %dx%d", eng.calls[1].w, eng.calls[1].h)
	}
	if l.State() != Initialized {
		t.Errorf("expected Initialized, got %v", l.State())
	}
}

func TestFirstTickZeroDelta(t *testing.T) {
	l, eng := newRunningLoop(t)

	now := time.Now()
	l.Tick(now)
	l.Tick(now.Add(20 * time.Millisecond))

	updates := 0
	for _, c := range eng.calls {
		if c.name != "update" {
			continue
		}
		updates++
		if updates == 1 && c.dt != 0 {
			t.Errorf("first tick should carry dt=0, got %f", c.dt)
		}
		if updates == 2 && (c.dt < 0.019 || c.dt > 0.021) {
			t.Errorf("second tick should carry ~20ms, got %f", c.dt)
		}
	}
	if updates != 2 {
		t.Fatalf("expected 2 updates, got %d", updates)
	}
}

func TestDeltaClampedToMax(t *testing.T) {
	l, eng := newRunningLoop(t)

	now := time.Now()
	l.Tick(now)
	l.Tick(now.Add(3 * time.Second)) // tab-switch stall

	last := eng.calls[len(eng.calls)-2] // update precedes render
	if last.name != "update" {
		t.Fatalf("expected update before render, got %v", eng.calls)
	}
	if last.dt != MaxDelta.Seconds() {
		t.Errorf("stalled tick should clamp to %v, got %f", MaxDelta, last.dt)
	}
}

func TestPauseSkipsUpdateKeepsRender(t *testing.T) {
	l, eng := newRunningLoop(t)

	now := time.Now()
	l.Tick(now)
	l.SetPaused(true)

	before := eng.elapsed
	for i := 1; i <= 5; i++ {
		l.Tick(now.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	if eng.elapsed != before {
		t.Error("paused ticks must not advance simulated time")
	}
	if got := eng.count("render"); got != 6 {
		t.Errorf("render must fire every tick, got %d of 6", got)
	}
	if l.State() != Running {
		t.Error("pausing must not leave Running")
	}
}

func TestResizeAppliedBetweenTicks(t *testing.T) {
	l, eng := newRunningLoop(t)

	now := time.Now()
	l.Tick(now)
	l.NotifyResize(80, 48)

	if eng.count("resize") != 1 {
		t.Fatal("resize must not be applied mid-observation")
	}

	l.Tick(now.Add(16 * time.Millisecond))

	// The queued resize lands before that tick's update/render pair.
	var idxResize, idxUpdate int
	for i, c := range eng.calls {
		switch c.name {
		case "resize":
			idxResize = i
		case "update":
			idxUpdate = i
		}
	}
	if idxResize > idxUpdate {
		t.Error("queued resize must precede the next update")
	}
	if eng.count("resize") != 2 {
		t.Errorf("expected exactly one applied resize after bind, got %d", eng.count("resize"))
	}
}

func TestResizeWhileUnboundIgnored(t *testing.T) {
	l := New(nil)
	l.NotifyResize(10, 10) // must not panic, nothing bound yet
	l.Tick(time.Now())
	if l.Ticks() != 0 {
		t.Error("unbound loop must not tick")
	}
}

func TestCloseDestroysExactlyOnce(t *testing.T) {
	l, eng := newRunningLoop(t)

	l.Close()
	l.Close()

	if eng.destroys != 1 {
		t.Errorf("expected exactly 1 destroy, got %d", eng.destroys)
	}

	// No further side effects after destroy.
	before := len(eng.calls)
	l.Tick(time.Now())
	if len(eng.calls) != before {
		t.Error("ticks after Close must not reach the engine")
	}
}

func TestInitThenDestroyOnly(t *testing.T) {
	l := New(nil)
	eng := &fakeEngine{}
	l.Bind(eng, &fakeSurface{w: 10, h: 10})
	l.Close()

	if eng.count("update") != 0 || eng.count("render") != 0 {
		t.Error("no update/render expected between init and destroy")
	}
	if eng.destroys != 1 {
		t.Errorf("expected 1 destroy, got %d", eng.destroys)
	}
}

func TestBindSwapDestroysPrevious(t *testing.T) {
	l := New(nil)
	first := &fakeEngine{}
	second := &fakeEngine{}
	surf := &fakeSurface{w: 10, h: 10}

	l.Bind(first, surf)
	l.Bind(second, surf)

	if first.destroys != 1 {
		t.Error("swapping engines must destroy the previous instance")
	}
	if second.inits != 1 {
		t.Error("new engine must be initialized")
	}
}

func TestElapsedMonotonic(t *testing.T) {
	l, _ := newRunningLoop(t)

	now := time.Now()
	prev := l.Elapsed()
	for i := 0; i < 10; i++ {
		l.Tick(now.Add(time.Duration(i) * 16 * time.Millisecond))
		if l.Elapsed() < prev {
			t.Fatal("elapsed time must be non-decreasing")
		}
		prev = l.Elapsed()
	}
}

func TestAdvanceHeadless(t *testing.T) {
	l := New(nil)
	eng := &fakeEngine{}
	l.Bind(eng, &fakeSurface{w: 10, h: 10})

	l.Advance(1.0, 0.01)

	if eng.elapsed < 0.999 || eng.elapsed > 1.001 {
		t.Errorf("expected ~1s of simulated time, got %f", eng.elapsed)
	}
	if eng.count("render") != 1 {
		t.Errorf("headless advance renders once, got %d", eng.count("render"))
	}
}

func TestCloseDropsParamsSnapshot(t *testing.T) {
	l, _ := newRunningLoop(t)
	l.SetParams(engine.Params{"speed": 3})
	l.Close()

	if len(l.Params()) != 0 {
		t.Error("closed loop must not retain the previous snapshot")
	}

	next := &fakeEngine{}
	l.Bind(next, &fakeSurface{w: 10, h: 10})
	l.Start()
	l.Tick(time.Now())
	if _, ok := next.lastParams["speed"]; ok {
		t.Error("stale parameter from the previous engine reached the new one")
	}
}

func TestSetParamsCopies(t *testing.T) {
	l, _ := newRunningLoop(t)

	p := engine.Params{"k": 1}
	l.SetParams(p)
	p["k"] = 99

	l.Tick(time.Now())
	if got := l.Params()["k"]; got != 1 {
		t.Errorf("loop must hold its own copy, got %f", got)
	}
}
