package weibull

import (
	"context"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/materials-algorithms/model"
	"github.com/uyouii/materials-algorithms/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// CalculateSummary evaluates every statistic of Weibull(shape, scale).
// Skewness and kurtosis are left out when the variance degenerates to 0.
func CalculateSummary(ctx context.Context, shape, scale float64) (res *model.WeibullSummary, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateSummary recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			res, err = nil, errors.Newf("calculate weibull summary: %v", r)
		}
	}()

	w, err := New(shape, scale)
	if err != nil {
		logger.Error("invalid weibull params", zap.Error(err),
			zap.Float64("shape", shape), zap.Float64("scale", scale))
		return nil, err
	}

	// a clamped variance is still reported, an overflowed one is not
	variance, clamped := w.VarianceDiagnostic()
	if err := w.CheckMean(); err != nil || math.IsInf(variance, 1) {
		if err == nil {
			err = w.CheckVariance()
		}
		logger.Error("weibull moments out of range", zap.Error(err),
			zap.Float64("shape", shape), zap.Float64("scale", scale))
		return nil, err
	}

	round := getSummaryRound()
	res = &model.WeibullSummary{
		Shape:           shape,
		Scale:           scale,
		Mean:            utils.FormatFloat(w.Mean(), round),
		Median:          utils.FormatFloat(w.Median(), round),
		Mode:            utils.FormatFloat(w.Mode(), round),
		Variance:        utils.FormatFloat(variance, round),
		StdDev:          utils.FormatFloat(w.StdDev(), round),
		VarianceClamped: clamped,
	}

	if skewness, err := w.Skewness(); err != nil {
		logger.Warn("weibull skewness undefined", zap.Error(err))
	} else {
		res.Skewness = utils.FormatFloat(skewness, round)
	}
	if kurtosis, err := w.Kurtosis(); err != nil {
		logger.Warn("weibull kurtosis undefined", zap.Error(err))
	} else {
		res.Kurtosis = utils.FormatFloat(kurtosis, round)
	}

	logger.Debug("CalculateSummary success", zap.String("summary", res.DebugString()))
	return res, nil
}

// AnalyzeSample decodes raw failure times and compares them against
// Weibull(shape, scale).
func AnalyzeSample(ctx context.Context, raw []byte, shape, scale float64) (*model.SampleReport, error) {
	logger := utils.GetLogger(ctx)

	params, err := NewParams(shape, scale)
	if err != nil {
		logger.Error("invalid weibull params", zap.Error(err))
		return nil, err
	}

	analysis, err := NewAnalysisFromRaw(raw, params)
	if err != nil {
		logger.Error("NewAnalysisFromRaw failed", zap.Error(err))
		return nil, err
	}

	sample := analysis.Sample()
	report := &model.SampleReport{
		Size:              analysis.Size(),
		SampleMean:        stat.Mean(sample, nil),
		PlottingPositions: analysis.PlottingPositions(),
		ModelCdf:          analysis.ModelCDF(),
		MaxDeviation:      analysis.MaxDeviation(),
	}
	if len(sample) > 1 {
		report.SampleStdDev = stat.StdDev(sample, nil)
	}

	regression, err := analysis.RankRegression()
	if err != nil {
		// still a useful report without the fit
		logger.Warn("rank regression skipped", zap.Error(err))
	} else {
		report.Regression = regression
	}

	bLives, err := analysis.SmoothedBLives(ctx, AllReportBLives)
	if err != nil {
		logger.Warn("smoothed b-lives skipped", zap.Error(err))
	} else {
		report.BLives = bLives
	}

	logger.Info(fmt.Sprintf("analyzed %v failure times", report.Size),
		zap.Float64("maxDeviation", report.MaxDeviation))
	return report, nil
}
