package model

import "fmt"

// PlottingPosition is the estimated cumulative failure probability (Value)
// assigned to the Rank-th smallest failure time X.
type PlottingPosition struct {
	Rank  int     `json:"rank"`
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// ProbabilityPoint is one sample on Weibull probability paper:
// X = ln(t), Y = ln(-ln(1 - F)).
type ProbabilityPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RankRegression struct {
	Shape     float64 `json:"shape"`
	Scale     float64 `json:"scale"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

type WeibullSummary struct {
	Shape    float64 `json:"shape"`
	Scale    float64 `json:"scale"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Mode     float64 `json:"mode"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
	Skewness float64 `json:"skewness,omitempty"`
	Kurtosis float64 `json:"kurtosis,omitempty"`

	// VarianceClamped is set when cancellation produced a negative variance
	VarianceClamped bool `json:"variance_clamped,omitempty"`
}

func (s *WeibullSummary) DebugString() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("shape: %v, scale: %v, mean: %v, stddev: %v", s.Shape, s.Scale, s.Mean, s.StdDev)
}

type SampleReport struct {
	Size              int                `json:"size"`
	SampleMean        float64            `json:"sample_mean"`
	SampleStdDev      float64            `json:"sample_stddev,omitempty"`
	PlottingPositions []PlottingPosition `json:"plotting_positions"`
	ModelCdf          []float64          `json:"model_cdf"`
	MaxDeviation      float64            `json:"max_deviation"`
	Regression        *RankRegression    `json:"regression,omitempty"`

	// BLives holds kernel smoothed B-lives keyed by failure fraction, e.g. "0.1"
	BLives map[string]*QuantileValue `json:"b_lives,omitempty"`
}

func (r *SampleReport) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Size == 0
}
