package matscience

import (
	"math"

	"github.com/uyouii/materials-algorithms/common"
)

// ASTM E112: N = 2^(G-1) grains per square inch at 100x.
const astmMagnification = 100.0

// GrainAverage returns the number of grains per square inch at 100x for the
// ASTM grain size number g.
func GrainAverage(g float64) float64 {
	return math.Pow(2, g-1)
}

// GrainSizeNumber is the inverse of GrainAverage.
func GrainSizeNumber(n float64) (float64, error) {
	if !(n > 0) {
		return math.NaN(), common.DomainErrorf("grain count must be positive, got %v", n)
	}
	return 1 + math.Log2(n), nil
}

// MagnificationAverage returns the grains per square inch observed at
// magnification m for grain size number g.
func MagnificationAverage(m, g float64) (float64, error) {
	if !(m > 0) {
		return math.NaN(), common.DomainErrorf("magnification must be positive, got %v", m)
	}
	r := astmMagnification / m
	return GrainAverage(g) * r * r, nil
}

// MagnificationSize returns the grain size number from nm grains per square
// inch counted at magnification m.
func MagnificationSize(m, nm float64) (float64, error) {
	if !(m > 0) {
		return math.NaN(), common.DomainErrorf("magnification must be positive, got %v", m)
	}
	r := m / astmMagnification
	return GrainSizeNumber(nm * r * r)
}
