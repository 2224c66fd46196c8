package sims

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fit returns the scale mapping a model extent onto a pixel extent with a
// small margin, so drawings survive arbitrary surface sizes.
func fit(pixels int, extent float64) float64 {
	if extent <= 0 {
		return 1
	}
	return 0.9 * float64(pixels) / extent
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
