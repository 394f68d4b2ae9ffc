package kde

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type BandWidth interface {
	BandWidth([]float64) float64
}

// NormalReferenceBandWidth is Silverman's rule of thumb, C * A * n^(-1/5),
// with A the smaller of the standard deviation and the normalized IQR.
// Failure times are right skewed, a few late failures inflate the standard
// deviation, so on these samples A is usually the IQR term.
type NormalReferenceBandWidth struct {
	kernel Kernel
}

func NewNormalReferenceBandWidth(kernel Kernel) *NormalReferenceBandWidth {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return &NormalReferenceBandWidth{
		kernel: kernel,
	}
}

// BandWidth expects x sorted ascending.
func (bw *NormalReferenceBandWidth) BandWidth(x []float64) float64 {
	c := bw.kernel.NormalReferenceConstant()
	a := selectSigma(x)
	return c * a * math.Pow(float64(len(x)), -0.2)
}

// selectSigma falls back to the standard deviation when ties collapse the
// IQR, common for failure times recorded at inspection intervals.
func selectSigma(x []float64) float64 {
	// IQR of a standard normal
	const normalize = 1.349

	q75 := stat.Quantile(0.75, stat.Empirical, x, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, x, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(x, nil)
	if iqr > 0 {
		return math.Min(stdDev, iqr)
	}
	return stdDev
}
