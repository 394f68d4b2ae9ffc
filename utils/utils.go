package utils

import "math"

// FormatFloat rounds f to the given number of decimal places.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CopyFloats returns a copy of data, never sharing the backing array.
func CopyFloats(data []float64) []float64 {
	res := make([]float64, len(data))
	copy(res, data)
	return res
}
