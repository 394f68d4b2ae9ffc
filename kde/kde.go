package kde

import (
	"math"
	"sort"

	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/model"
	"github.com/uyouii/materials-algorithms/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// Estimator is a univariate Gaussian kernel density estimate of a
// non-negative sample, e.g. failure times. The evaluation grid is clipped at 0.
type Estimator struct {
	// sorted copy of the observations
	Endog []float64

	gridSize int

	// An adjustment factor for the bw. Bandwidth becomes bw * adjust.
	bwAdjust float64

	// Defines the length of the grid past the highest value of the sample
	// so that the kernel goes to zero, max(x) + cut * bw.
	cut float64

	density []model.Density
	cdf     []model.Cdf
	grid    []float64
	bw      float64
	fitted  bool
	kernel  *GaussianKernel
}

func NewEstimator(endog []float64, bwAdjust float64, cut float64) (*Estimator, error) {
	if len(endog) < getMinSampleSize() {
		return nil, common.DomainErrorf("kde needs at least %d observations, got %d", getMinSampleSize(), len(endog))
	}
	for i, v := range endog {
		if !utils.IsFinite(v) {
			return nil, common.DataFormatErrorf("kde observation %d is not a finite number: %v", i, v)
		}
	}

	sorted := utils.CopyFloats(endog)
	sort.Float64s(sorted)
	if sorted[0] == sorted[len(sorted)-1] {
		return nil, common.DomainCause(common.ErrorDegenerate, "kde over %d identical observations", len(sorted))
	}

	if bwAdjust <= 0 {
		bwAdjust = 1
	}
	if cut <= 0 {
		cut = DefaultCut
	}

	return &Estimator{
		Endog:    sorted,
		gridSize: max(len(sorted), MinGridSize),
		bwAdjust: bwAdjust,
		cut:      cut,
	}, nil
}

func (e *Estimator) fit() {
	if e.fitted {
		return
	}

	kernel := NewGaussianKernel()
	bw := NewNormalReferenceBandWidth(kernel).BandWidth(e.Endog) * e.bwAdjust
	kernel.SetH(bw)

	a := math.Max(floats.Min(e.Endog)-e.cut*LowerCutFactor*bw, 0)
	b := floats.Max(e.Endog) + e.cut*bw
	e.grid = linspace(a, b, e.gridSize)

	e.density = make([]model.Density, len(e.grid))
	for i, x := range e.grid {
		e.density[i] = model.Density{
			X:     x,
			Value: kernel.Density(e.Endog, x),
		}
	}

	e.bw = bw
	e.kernel = kernel
	e.fitted = true
}

// Density returns the estimate on the evaluation grid and the bandwidth used.
func (e *Estimator) Density() ([]model.Density, float64) {
	e.fit()
	return e.density, e.bw
}

// CDF integrates the estimate from 0 up to every grid point. Mass the kernels
// put below 0 is not counted, so the last value can stay a little under 1.
func (e *Estimator) CDF() []model.Cdf {
	e.fit()
	if len(e.cdf) > 0 {
		return e.cdf
	}

	f := func(x float64) float64 {
		return e.kernel.Density(e.Endog, x)
	}

	res := make([]model.Cdf, 0, len(e.grid))
	lower, cumSum := 0.0, 0.0
	for _, upper := range e.grid {
		if upper > lower {
			cumSum += quad.Fixed(f, lower, upper, QuadPoints, nil, 0)
		}
		res = append(res, model.Cdf{
			X:     upper,
			Value: cumSum,
		})
		lower = upper
	}

	e.cdf = res
	return res
}

// Quantile inverts the cdf by linear interpolation between grid points.
// p below the first or above the last cdf value maps to the grid ends.
func (e *Estimator) Quantile(p float64) (*model.QuantileValue, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, common.DomainErrorf("kde quantile needs p in [0, 1], got %v", p)
	}

	cdf := e.CDF()
	if p <= cdf[0].Value {
		return &model.QuantileValue{Quantile: p, Value: cdf[0].X}, nil
	}
	last := cdf[len(cdf)-1]
	if p >= last.Value {
		return &model.QuantileValue{Quantile: p, Value: last.X}, nil
	}

	i := sort.Search(len(cdf), func(i int) bool { return cdf[i].Value > p })
	lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
	upperX, upperP := cdf[i].X, cdf[i].Value
	return &model.QuantileValue{
		Quantile: p,
		Value:    lowerX + (upperX-lowerX)*(p-lowerP)/(upperP-lowerP),
	}, nil
}

func (e *Estimator) BandWidth() float64 {
	e.fit()
	return e.bw
}
