package functions

import (
	"math"

	"github.com/uyouii/materials-algorithms/common"
)

func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func Factorial(n int) (float64, error) {
	if n < 0 {
		return math.NaN(), common.DomainErrorf("factorial of negative number %d", n)
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// NCombK returns the binomial coefficient n! / (k! (n-k)!).
func NCombK(n, k int) (float64, error) {
	if n < 0 || k < 0 || k > n {
		return math.NaN(), common.DomainErrorf("n comb k undefined for n=%d, k=%d", n, k)
	}
	if k > n-k {
		k = n - k
	}
	// multiplicative form, every partial product is itself a binomial coefficient
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return math.Round(result), nil
}
