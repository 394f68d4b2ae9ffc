package weibull

import (
	"context"
	"math"
	"sort"

	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/kde"
	"github.com/uyouii/materials-algorithms/model"
	"github.com/uyouii/materials-algorithms/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Analysis compares an observed sample of failure times against a Weibull
// model. The sample is copied and kept in ascending order.
type Analysis struct {
	dist   *Weibull
	sample []float64
}

func NewAnalysis(sample []float64, params Params) (*Analysis, error) {
	dist, err := NewFromParams(params)
	if err != nil {
		return nil, err
	}

	if len(sample) == 0 {
		return nil, common.DataFormatErrorf("failure sample is empty")
	}
	for i, v := range sample {
		if !utils.IsFinite(v) {
			return nil, common.DataFormatErrorf("failure sample element %d is not a finite number: %v", i, v)
		}
		if v < 0 {
			return nil, common.DomainErrorf("failure sample element %d is negative: %v", i, v)
		}
	}

	sorted := utils.CopyFloats(sample)
	if !sort.Float64sAreSorted(sorted) {
		sort.Stable(sort.Float64Slice(sorted))
	}

	return &Analysis{
		dist:   dist,
		sample: sorted,
	}, nil
}

// NewAnalysisFromValues accepts already decoded values, e.g. from JSON or
// YAML, and rejects anything that is not a flat list of numbers.
func NewAnalysisFromValues(values []interface{}, params Params) (*Analysis, error) {
	sample, err := ToFloats(values)
	if err != nil {
		return nil, err
	}
	return NewAnalysis(sample, params)
}

// NewAnalysisFromRaw decodes a YAML or JSON sequence of failure times.
func NewAnalysisFromRaw(raw []byte, params Params) (*Analysis, error) {
	sample, err := ParseSample(raw)
	if err != nil {
		return nil, err
	}
	return NewAnalysis(sample, params)
}

func (a *Analysis) Size() int {
	return len(a.sample)
}

// Sample returns a copy of the sorted sample.
func (a *Analysis) Sample() []float64 {
	return utils.CopyFloats(a.sample)
}

func (a *Analysis) Params() Params {
	return a.dist.Params()
}

func (a *Analysis) Distribution() *Weibull {
	return a.dist
}

// EmpiricalCDF returns the cumulative failure distribution: one plotting
// position per sorted sample element, in the same order.
func (a *Analysis) EmpiricalCDF() []float64 {
	n := len(a.sample)
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = plottingPosition(i+1, n)
	}
	return res
}

func plottingPosition(rank, size int) float64 {
	if size < getBernardSampleLimit() {
		return bernardApprox(rank, size)
	}
	return meanRank(rank, size)
}

func bernardApprox(rank, size int) float64 {
	return (float64(rank) - BernardRankOffset) / (float64(size) + BernardSizeOffset)
}

func meanRank(rank, size int) float64 {
	return float64(rank) / float64(size+1)
}

func (a *Analysis) PlottingPositions() []model.PlottingPosition {
	cdf := a.EmpiricalCDF()
	res := make([]model.PlottingPosition, len(a.sample))
	for i := range a.sample {
		res[i] = model.PlottingPosition{
			Rank:  i + 1,
			X:     a.sample[i],
			Value: cdf[i],
		}
	}
	return res
}

// ModelCDF evaluates the model cdf at every sorted sample element.
func (a *Analysis) ModelCDF() []float64 {
	res := make([]float64, len(a.sample))
	for i, x := range a.sample {
		res[i] = a.dist.CDF(x)
	}
	return res
}

// MaxDeviation is the largest absolute gap between the plotting positions and
// the model cdf.
func (a *Analysis) MaxDeviation() float64 {
	diff := a.EmpiricalCDF()
	floats.Sub(diff, a.ModelCDF())
	return floats.Norm(diff, math.Inf(1))
}

// ProbabilityPlot maps the sample onto Weibull probability paper, where a
// Weibull sample falls on a straight line of slope shape.
func (a *Analysis) ProbabilityPlot() ([]model.ProbabilityPoint, error) {
	cdf := a.EmpiricalCDF()
	res := make([]model.ProbabilityPoint, len(a.sample))
	for i, x := range a.sample {
		if x <= 0 {
			return nil, common.DomainErrorf("probability plot needs positive failure times, element %d is %v", i, x)
		}
		res[i] = model.ProbabilityPoint{
			X: math.Log(x),
			Y: math.Log(-math.Log1p(-cdf[i])),
		}
	}
	return res, nil
}

// RankRegression fits a line through the probability plot by least squares.
func (a *Analysis) RankRegression() (*model.RankRegression, error) {
	if len(a.sample) < MinRegressionSampleSize {
		return nil, common.DomainErrorf("rank regression needs at least %d failure times, got %d",
			MinRegressionSampleSize, len(a.sample))
	}
	points, err := a.ProbabilityPlot()
	if err != nil {
		return nil, err
	}

	xs, ys := make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	if floats.Min(xs) == floats.Max(xs) {
		return nil, common.DomainCause(common.ErrorDegenerate, "rank regression over identical failure times")
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return &model.RankRegression{
		Shape:     slope,
		Scale:     math.Exp(-intercept / slope),
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}

// DensityEstimate returns a kernel density estimate of the sample, to put
// next to the model density.
func (a *Analysis) DensityEstimate(ctx context.Context) ([]model.Density, float64, error) {
	logger := utils.GetLogger(ctx)

	estimator, err := kde.NewEstimator(a.sample, KdeBandWidthAdjust, KdeCut)
	if err != nil {
		logger.Error("kde NewEstimator failed", zap.Error(err), zap.Int("size", len(a.sample)))
		return nil, 0, err
	}
	density, bw := estimator.Density()
	return density, bw, nil
}

// SmoothedBLives estimates B-lives (the time by which a fraction q of the
// population has failed) from the kernel density estimate of the sample.
func (a *Analysis) SmoothedBLives(ctx context.Context, quantiles []float64) (map[string]*model.QuantileValue, error) {
	return kde.CalculateQuantiles(ctx, a.sample, quantiles, KdeBandWidthAdjust, KdeCut)
}
