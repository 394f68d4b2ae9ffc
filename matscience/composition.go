package matscience

import (
	"math"

	"github.com/uyouii/materials-algorithms/common"
)

// CompositionByMass returns the weight percent of components A and B in a
// binary mixture of masses ma and mb.
func CompositionByMass(ma, mb float64) (float64, float64, error) {
	if ma < 0 || mb < 0 || !(ma+mb > 0) {
		return math.NaN(), math.NaN(), common.DomainErrorf("composition needs non-negative masses with a positive total, got %v and %v", ma, mb)
	}
	total := ma + mb
	return 100 * ma / total, 100 * mb / total, nil
}
