package functions

import (
	"math"
	"math/cmplx"

	"github.com/uyouii/materials-algorithms/common"
)

// Lanczos approximation, g = 5, with the Numerical Recipes coefficient set.
const lanczosG = 5

var lanczosCoefficients = [lanczosG + 2]float64{
	1.000000000190015,
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572450155,
	0.1208650973866179e-2,
	-0.5395239384953e-5,
}

// Gamma evaluates Γ(z) over the complex plane. Non-positive integers are
// poles and return an error matching both common.ErrorDomain and
// common.ErrorPole. A result beyond the float64 range, e.g. Γ(x) for real
// x > 171.62, returns +Inf with an error matching common.ErrorNumericalEdge.
func Gamma(z complex128) (complex128, error) {
	if cmplx.IsNaN(z) {
		return cmplx.NaN(), common.DomainErrorf("gamma(%v): NaN argument", z)
	}
	if isPole(z) {
		return cmplx.Inf(), common.DomainCause(common.ErrorPole, "gamma(%v)", real(z))
	}

	var logGamma complex128
	if real(z) < 0.5 {
		// reflection: 1-z lies in Re >= 0.5, so a single step is enough
		logGamma = complex(math.Log(math.Pi), 0) - cmplx.Log(cmplx.Sin(math.Pi*z)) - logLanczos(1-z)
	} else {
		logGamma = logLanczos(z)
	}

	res := cmplx.Exp(logGamma)
	if cmplx.IsInf(res) || cmplx.IsNaN(res) {
		return cmplx.Inf(), common.DomainCause(common.ErrorNumericalEdge, "gamma(%v) exceeds the float64 range", z)
	}
	return res, nil
}

// GammaReal returns the real part of Γ(x) for real x.
func GammaReal(x float64) (float64, error) {
	res, err := Gamma(complex(x, 0))
	if err != nil {
		return real(res), err
	}
	return real(res), nil
}

// logLanczos returns log Γ(z), only accurate for Re(z) >= 0.5. The power
// term is summed as a logarithm, it overflows long before Γ itself does.
func logLanczos(z complex128) complex128 {
	series := complex(lanczosCoefficients[0], 0)
	for i := 1; i < len(lanczosCoefficients); i++ {
		series += complex(lanczosCoefficients[i], 0) / (z + complex(float64(i), 0))
	}
	t := z + lanczosG + 0.5
	return cmplx.Log(complex(math.Sqrt(2*math.Pi), 0)*series/z) + (z+0.5)*cmplx.Log(t) - t
}

func isPole(z complex128) bool {
	if imag(z) != 0 {
		return false
	}
	x := real(z)
	return x <= 0 && x == math.Trunc(x)
}
