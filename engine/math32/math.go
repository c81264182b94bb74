// Package math32 provides the float32 scalar and 2D geometry helpers used
// throughout the toolkit. Scalar functions wrap chewxy/math32, which has
// optimized implementations.
package math32

import "github.com/chewxy/math32"

func Abs(x float32) float32   { return math32.Abs(x) }
func Sqrt(x float32) float32  { return math32.Sqrt(x) }
func Floor(x float32) float32 { return math32.Floor(x) }
func Ceil(x float32) float32  { return math32.Ceil(x) }
func Round(x float32) float32 { return math32.Round(x) }
func Sin(x float32) float32   { return math32.Sin(x) }
func Cos(x float32) float32   { return math32.Cos(x) }
func IsNaN(x float32) bool    { return math32.IsNaN(x) }

const Pi = math32.Pi

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RemapClamp maps x from the interval [from0, from1] onto [to0, to1],
// clamping x to the source interval first. The caller must ensure
// from0 != from1.
func RemapClamp(x, from0, from1, to0, to1 float32) float32 {
	t := (Clamp(x, from0, from1) - from0) / (from1 - from0)
	return to0 + t*(to1-to0)
}
