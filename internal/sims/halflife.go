package sims

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/superliangbot/simlab/internal/engine"
)

// HalfLifeSchema declares the radioactive-decay controls.
var HalfLifeSchema = engine.Schema{
	{Key: "totalAtoms", Label: "Total atoms", Min: 8, Max: 512, Step: 8, Default: 64},
	{Key: "halfLife", Label: "Half-life", Min: 1, Max: 30, Step: 0.5, Default: 5, Unit: "s"},
}

// HalfLife shows exponential decay of a fixed population: a grid of
// atoms fades out so the surviving count tracks N0 * 0.5^(t/T).
type HalfLife struct {
	surface engine.Surface
	w, h    int

	t  float64
	n0 int
	tH float64

	// order randomizes which atom decays next; purely decorative, the
	// surviving count is what matters.
	order []int
}

// NewHalfLife returns a fresh decay engine.
func NewHalfLife() engine.Engine {
	return &HalfLife{}
}

func (s *HalfLife) Init(surf engine.Surface) {
	s.surface = surf
	s.w, s.h = surf.Size()
	s.n0 = int(HalfLifeSchema.Value(nil, "totalAtoms"))
	s.tH = HalfLifeSchema.Value(nil, "halfLife")
	s.shuffle()
}

func (s *HalfLife) shuffle() {
	s.order = make([]int, s.n0)
	for i := range s.order {
		s.order[i] = i
	}
	rand.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
}

func (s *HalfLife) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *HalfLife) Update(dt float64, p engine.Params) {
	n0 := int(HalfLifeSchema.Value(p, "totalAtoms"))
	s.tH = HalfLifeSchema.Value(p, "halfLife")
	if n0 != s.n0 {
		s.n0 = n0
		s.shuffle()
	}
	s.t += dt
}

// Remaining returns the theoretical surviving count N0 * 0.5^(t/T).
func (s *HalfLife) Remaining() float64 {
	return float64(s.n0) * math.Pow(0.5, s.t/s.tH)
}

// Periods returns how many half-lives have elapsed.
func (s *HalfLife) Periods() float64 {
	return s.t / s.tH
}

func (s *HalfLife) Render() {
	s.surface.Clear()

	// Lay the atoms out on a near-square grid.
	cols := int(math.Ceil(math.Sqrt(float64(s.n0))))
	if cols < 1 {
		cols = 1
	}
	rows := (s.n0 + cols - 1) / cols
	cellW := s.w / (cols + 1)
	cellH := (s.h - 8) / (rows + 1)
	if cellW < 2 {
		cellW = 2
	}
	if cellH < 2 {
		cellH = 2
	}

	survivors := clampI(int(math.Round(s.Remaining())), 0, s.n0)
	decayed := make([]bool, s.n0)
	for i := 0; i < s.n0-survivors && i < len(s.order); i++ {
		decayed[s.order[i]] = true
	}

	for i := 0; i < s.n0; i++ {
		x := (i%cols+1)*cellW - cellW/2
		y := (i/cols+1)*cellH - cellH/2
		if decayed[i] {
			s.surface.Set(x, y) // ghost of a decayed atom
		} else {
			engine.Dot(s.surface, x, y, 1)
		}
	}

	// Survival-fraction bar along the bottom edge.
	frac := s.Remaining() / float64(s.n0)
	barW := int(frac * float64(s.w-4))
	s.surface.Line(2, s.h-3, 2+barW, s.h-3)
	s.surface.Line(2, s.h-2, 2+barW, s.h-2)
}

func (s *HalfLife) Reset() {
	s.t = 0
	s.shuffle()
}

func (s *HalfLife) Destroy() {
	s.surface = nil
	s.order = nil
}

func (s *HalfLife) StateDescription() string {
	remaining := s.Remaining()
	return fmt.Sprintf(
		"Radioactive sample of %d atoms with a half-life of %.1f s. "+
			"Elapsed time %.1f s = %.2f half-life periods, so the theoretical surviving "+
			"count is N0 * 0.5^(t/T) = %.1f atoms (%.1f%% of the sample). Which atom "+
			"decays next is random; only the surviving count follows the law.",
		s.n0, s.tH, s.t, s.Periods(), remaining, 100*remaining/float64(s.n0))
}
