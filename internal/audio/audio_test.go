package audio

import (
	"math"
	"testing"
)

func TestTrianglePeriodic(t *testing.T) {
	for _, phase := range []float64{0, 0.1, 0.73, 1.5} {
		a, b := triangle(phase), triangle(phase+1)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("phase %f: %f vs %f one period later", phase, a, b)
		}
		if a < -1 || a > 1 {
			t.Errorf("phase %f: value %f outside [-1, 1]", phase, a)
		}
	}
}

func TestLowPassConverges(t *testing.T) {
	state := 0.0
	var out float64
	for i := 0; i < 100000; i++ {
		out, state = lpf(1.0, 500, 1.0/SampleRate, state)
	}
	if math.Abs(out-1.0) > 1e-3 {
		t.Errorf("filter should settle on a DC input, got %f", out)
	}
}

func TestProcessProducesBoundedOutput(t *testing.T) {
	s := NewSonifier()
	s.SetActivity(400)

	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	for i := 0; i < 10; i++ {
		s.process(out)
	}

	for ch := range out {
		for i, v := range out[ch] {
			if v < -1 || v > 1 {
				t.Fatalf("channel %d sample %d clipped: %f", ch, i, v)
			}
		}
	}

	bass, mid, high := s.Spectrum()
	if bass <= 0 {
		t.Error("pad should carry bass energy")
	}
	if bass+mid+high <= 0 {
		t.Error("spectrum should be non-empty while synthesizing")
	}
}
