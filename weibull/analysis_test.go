package weibull

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/model"
)

var params2x10 = Params{Shape: 2, Scale: 10}

func TestAnalysisSortsCopy(t *testing.T) {
	raw := []float64{3, 1, 2}
	a, err := NewAnalysis(raw, params2x10)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, a.Sample())
	assert.Equal(t, []float64{3, 1, 2}, raw)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, params2x10, a.Params())
	assert.Equal(t, params2x10, a.Distribution().Params())

	// Sample hands out copies
	s := a.Sample()
	s[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, a.Sample())
}

func TestEmpiricalCDFBernard(t *testing.T) {
	a, err := NewAnalysis([]float64{3, 1, 2}, params2x10)
	require.NoError(t, err)

	cdf := a.EmpiricalCDF()
	require.Len(t, cdf, 3)
	assert.InDelta(t, 0.2059, cdf[0], 1e-4)
	assert.InDelta(t, 0.5, cdf[1], 1e-12)
	assert.InDelta(t, 0.7941, cdf[2], 1e-4)
	assert.Less(t, cdf[0], cdf[1])
	assert.Less(t, cdf[1], cdf[2])

	assert.Equal(t, []model.PlottingPosition{
		{Rank: 1, X: 1, Value: cdf[0]},
		{Rank: 2, X: 2, Value: cdf[1]},
		{Rank: 3, X: 3, Value: cdf[2]},
	}, a.PlottingPositions())
}

func TestEmpiricalCDFThreshold(t *testing.T) {
	for _, n := range []int{1, 50, 99, 100, 101, 500} {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = float64(n - i)
		}
		a, err := NewAnalysis(sample, params2x10)
		require.NoError(t, err)

		cdf := a.EmpiricalCDF()
		require.Len(t, cdf, n)
		for i, v := range cdf {
			rank := float64(i + 1)
			if n < BernardSampleLimit {
				assert.Equal(t, (rank-0.3)/(float64(n)+0.4), v, "n=%d rank=%v", n, rank)
			} else {
				assert.Equal(t, rank/float64(n+1), v, "n=%d rank=%v", n, rank)
			}
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 1.0)
			if i > 0 {
				assert.Greater(t, v, cdf[i-1])
			}
		}
	}
}

func TestEmpiricalCDFTies(t *testing.T) {
	a, err := NewAnalysis([]float64{5, 2, 5, 2}, params2x10)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 5, 5}, a.Sample())

	cdf := a.EmpiricalCDF()
	for i := 1; i < len(cdf); i++ {
		assert.Greater(t, cdf[i], cdf[i-1])
	}
}

func TestNewAnalysisErrors(t *testing.T) {
	_, err := NewAnalysis(nil, params2x10)
	assert.True(t, errors.Is(err, common.ErrorDataFormat))

	_, err = NewAnalysis([]float64{1, math.NaN()}, params2x10)
	assert.True(t, errors.Is(err, common.ErrorDataFormat))

	_, err = NewAnalysis([]float64{1, math.Inf(1)}, params2x10)
	assert.True(t, errors.Is(err, common.ErrorDataFormat))

	_, err = NewAnalysis([]float64{1, -2}, params2x10)
	assert.True(t, errors.Is(err, common.ErrorDomain))

	a, err := NewAnalysis([]float64{1, 2}, Params{Shape: 0, Scale: 1})
	assert.Nil(t, a)
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestNewAnalysisFromValues(t *testing.T) {
	a, err := NewAnalysisFromValues([]interface{}{3, 1.5, int64(2), uint64(4), float32(0.5)}, params2x10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2, 3, 4}, a.Sample())

	for _, values := range [][]interface{}{
		{1, "two", 3},
		{1, []interface{}{2, 3}},
		{1, map[string]interface{}{"t": 2}},
		{nil},
		{true},
	} {
		a, err := NewAnalysisFromValues(values, params2x10)
		assert.Nil(t, a)
		assert.True(t, errors.Is(err, common.ErrorDataFormat), "%v", values)
	}
}

func TestModelCDFAndDeviation(t *testing.T) {
	a, err := NewAnalysis([]float64{10, 5, 15}, params2x10)
	require.NoError(t, err)

	modelCdf := a.ModelCDF()
	require.Len(t, modelCdf, 3)
	assert.InDelta(t, 1-math.Exp(-0.25), modelCdf[0], 1e-12)
	assert.InDelta(t, 1-math.Exp(-1), modelCdf[1], 1e-12)
	assert.InDelta(t, 1-math.Exp(-2.25), modelCdf[2], 1e-12)

	empirical := a.EmpiricalCDF()
	want := 0.0
	for i := range empirical {
		want = math.Max(want, math.Abs(empirical[i]-modelCdf[i]))
	}
	assert.InDelta(t, want, a.MaxDeviation(), 1e-15)
	// the empirical cdf must not have been modified in place
	assert.Equal(t, empirical, a.EmpiricalCDF())
}

// quantileSample returns the exact plotting position quantiles of w, which
// lie on a straight line on Weibull paper.
func quantileSample(t *testing.T, w *Weibull, n int) []float64 {
	t.Helper()
	sample := make([]float64, n)
	for i := range sample {
		x, err := w.Quantile(plottingPosition(i+1, n))
		require.NoError(t, err)
		sample[i] = x
	}
	return sample
}

func TestRankRegressionRecoversParams(t *testing.T) {
	for _, n := range []int{5, 30, 150} {
		w := mustNew(t, 2.5, 40)
		a, err := NewAnalysis(quantileSample(t, w, n), Params{Shape: 1, Scale: 1})
		require.NoError(t, err)

		fit, err := a.RankRegression()
		require.NoError(t, err)
		assert.InEpsilon(t, 2.5, fit.Shape, 1e-9, "n=%d", n)
		assert.InEpsilon(t, 40, fit.Scale, 1e-9, "n=%d", n)
		assert.Equal(t, fit.Shape, fit.Slope)
		assert.InDelta(t, 1, fit.RSquared, 1e-9)
		assert.Less(t, a.MaxDeviation(), 1.0)
	}
}

func TestProbabilityPlot(t *testing.T) {
	a, err := NewAnalysis([]float64{3, 1, 2}, params2x10)
	require.NoError(t, err)

	points, err := a.ProbabilityPlot()
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, math.Log(2), points[1].X, 1e-15)
	// F = 0.5 maps to ln(ln 2)
	assert.InDelta(t, math.Log(math.Ln2), points[1].Y, 1e-12)

	withZero, err := NewAnalysis([]float64{0, 1, 2}, params2x10)
	require.NoError(t, err)
	_, err = withZero.ProbabilityPlot()
	assert.True(t, errors.Is(err, common.ErrorDomain))
	_, err = withZero.RankRegression()
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestRankRegressionDegenerate(t *testing.T) {
	single, err := NewAnalysis([]float64{4}, params2x10)
	require.NoError(t, err)
	_, err = single.RankRegression()
	assert.True(t, errors.Is(err, common.ErrorDomain))

	same, err := NewAnalysis([]float64{4, 4, 4}, params2x10)
	require.NoError(t, err)
	_, err = same.RankRegression()
	assert.True(t, errors.Is(err, common.ErrorDegenerate))
}

func TestDensityEstimate(t *testing.T) {
	w := mustNew(t, 2, 10)
	a, err := NewAnalysis(quantileSample(t, w, 40), params2x10)
	require.NoError(t, err)

	density, bw, err := a.DensityEstimate(context.Background())
	require.NoError(t, err)
	assert.Greater(t, bw, 0.0)
	require.NotEmpty(t, density)
	for _, d := range density {
		assert.GreaterOrEqual(t, d.X, 0.0)
		assert.GreaterOrEqual(t, d.Value, 0.0)
	}

	bLives, err := a.SmoothedBLives(context.Background(), []float64{0.1, 0.5})
	require.NoError(t, err)
	require.Contains(t, bLives, "0.5")
	// the smoothed median sits near the model median
	assert.InDelta(t, w.Median(), bLives["0.5"].Value, 1.5)

	single, err := NewAnalysis([]float64{4}, params2x10)
	require.NoError(t, err)
	_, _, err = single.DensityEstimate(context.Background())
	assert.True(t, errors.Is(err, common.ErrorDomain))
}
