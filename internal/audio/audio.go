// Package audio sonifies a running simulation: a soft ambient pad whose
// filter opens with on-screen activity, so the motion is audible.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Pad chord: Gm7 add9, low enough to sit under a classroom voice.
var padFreqs = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

// Sonifier renders the pad to the default output device. Activity
// pushed from the host frame loop morphs the filter cutoff, so busier
// frames sound brighter.
type Sonifier struct {
	stream *portaudio.Stream

	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	mu             sync.Mutex
	activity       float64
	activitySmooth float64

	// tap keeps the last synth buffer for spectrum queries
	tap []float64

	active bool
}

func NewSonifier() *Sonifier {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Sonifier{
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		tap:       make([]float64, BufferSize),
	}
}

// Start opens an output-only stream. Duplex streams fail on many Linux
// setups when input and output devices differ, so input stays closed.
func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	s.stream = stream
	s.active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	portaudio.Terminate()
	s.active = false
}

func (s *Sonifier) Active() bool { return s.active }

// SetActivity feeds the latest frame's activity level (any
// monotonically meaningful scalar; the host uses lit-dot counts).
func (s *Sonifier) SetActivity(v float64) {
	s.mu.Lock()
	s.activity = v
	s.mu.Unlock()
}

// Spectrum returns the bass/mid/high energy split of the most recent
// synth buffer, for on-screen level meters.
func (s *Sonifier) Spectrum() (bass, mid, high float64) {
	s.mu.Lock()
	buf := make([]complex128, len(s.tap))
	for i, v := range s.tap {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(s.tap)-1)))
		buf[i] = complex(v*window, 0)
	}
	s.mu.Unlock()

	spectrum := fft.FFT(buf)
	for i := 0; i < len(spectrum)/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		switch {
		case i < 5:
			bass += mag
		case i < 46:
			mid += mag
		default:
			high += mag
		}
	}
	return bass, mid, high
}

// triangle is a smooth flute-like oscillator, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low-pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	target := s.activity
	s.mu.Unlock()

	// Slow morph so parameter jumps never click.
	s.activitySmooth = s.activitySmooth*0.995 + target*0.005

	cutoff := 300.0 + math.Min(s.activitySmooth, 900.0)
	dt := 1.0 / float64(SampleRate)
	const vol = 0.25

	tap := make([]float64, 0, len(out[0]))
	for i := 0; i < len(out[0]); i++ {
		sampleL, sampleR := 0.0, 0.0
		for j, f := range padFreqs {
			oscL := triangle(s.time * (f * 0.999))
			oscR := triangle(s.time * (f * 1.001))
			g := 1.0 / float64(len(padFreqs))
			lfo := math.Sin(s.time*0.2 + float64(j))
			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, s.filterState[0] = lpf(sampleL, cutoff, dt, s.filterState[0])
		outR, s.filterState[1] = lpf(sampleR, cutoff, dt, s.filterState[1])

		delayL := s.delayLine[0][s.delayHead]
		delayR := s.delayLine[1][s.delayHead]
		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1
		s.delayLine[0][s.delayHead] = mixL * 0.7
		s.delayLine[1][s.delayHead] = mixR * 0.7
		s.delayHead = (s.delayHead + 1) % len(s.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		tap = append(tap, mixL)
		s.time += dt
	}

	s.mu.Lock()
	copy(s.tap, tap)
	s.mu.Unlock()
}
