package weibull

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/functions"
	"github.com/uyouii/materials-algorithms/utils"
	"go.uber.org/zap"
)

// Params holds the shape (alpha) and scale (beta) of a two parameter
// Weibull distribution.
type Params struct {
	Shape float64 `json:"shape"`
	Scale float64 `json:"scale"`
}

func NewParams(shape, scale float64) (Params, error) {
	p := Params{Shape: shape, Scale: scale}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) Validate() error {
	if !(p.Shape > 0) || math.IsInf(p.Shape, 0) {
		return common.DomainErrorf("weibull shape must be a positive finite number, got %v", p.Shape)
	}
	if !(p.Scale > 0) || math.IsInf(p.Scale, 0) {
		return common.DomainErrorf("weibull scale must be a positive finite number, got %v", p.Scale)
	}
	return nil
}

// Weibull is an immutable two parameter Weibull distribution.
type Weibull struct {
	shape float64
	scale float64
}

func New(shape, scale float64) (*Weibull, error) {
	return NewFromParams(Params{Shape: shape, Scale: scale})
}

func NewFromParams(p Params) (*Weibull, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Weibull{shape: p.Shape, scale: p.Scale}, nil
}

func (w *Weibull) Params() Params {
	return Params{Shape: w.shape, Scale: w.scale}
}

func (w *Weibull) Shape() float64 {
	return w.shape
}

func (w *Weibull) Scale() float64 {
	return w.scale
}

// Prob returns the probability density at x. The density is 0 for x < 0.
func (w *Weibull) Prob(x float64) float64 {
	if x < 0 {
		return 0
	}
	z := x / w.scale
	if z == 0 {
		return (w.shape / w.scale) * math.Pow(z, w.shape-1)
	}
	zPow := math.Pow(z, w.shape)
	if math.IsInf(zPow, 1) {
		return 0
	}
	// in log space, z^(shape-1) alone overflows far out in the tail
	return math.Exp(math.Log(w.shape/w.scale) + (w.shape-1)*math.Log(z) - zPow)
}

// CDF returns the probability of failure before x.
func (w *Weibull) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/w.scale, w.shape))
}

// Survival returns 1 - CDF(x).
func (w *Weibull) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-math.Pow(x/w.scale, w.shape))
}

// FailureRate is the hazard function pdf / (1 - cdf), in closed form.
// Shape < 1 gives a decreasing rate, 1 a constant one, > 1 an increasing one.
func (w *Weibull) FailureRate(x float64) float64 {
	if x < 0 {
		return 0
	}
	return (w.shape / w.scale) * math.Pow(x/w.scale, w.shape-1)
}

// Quantile is the inverse cdf, defined for p in [0, 1).
func (w *Weibull) Quantile(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return math.NaN(), common.DomainErrorf("weibull quantile needs p in [0, 1), got %v", p)
	}
	return w.scale * math.Pow(-math.Log1p(-p), 1/w.shape), nil
}

// Mean is +Inf when it exceeds the float64 range, for shape below about
// 0.0059. CheckMean reports that case as an error.
func (w *Weibull) Mean() float64 {
	g, err := w.gammaMoment(1)
	if err != nil {
		return math.Inf(1)
	}
	return w.scale * g
}

// CheckMean returns common.ErrorNumericalEdge when Mean is not finite.
func (w *Weibull) CheckMean() error {
	if mean := w.Mean(); math.IsInf(mean, 1) {
		return w.overflow("mean")
	}
	return nil
}

// Variance never returns a negative number: a negative result from
// cancellation is clamped to 0, a second moment beyond the float64 range
// gives +Inf. Both are logged, use VarianceDiagnostic to observe them.
func (w *Weibull) Variance() float64 {
	v, edge := w.VarianceDiagnostic()
	if edge {
		utils.GetLogger(context.Background()).Warn("weibull variance on a numerical edge",
			zap.Float64("variance", v), zap.Float64("shape", w.shape), zap.Float64("scale", w.scale))
	}
	return v
}

// VarianceDiagnostic returns the variance and whether it sits on a numerical
// edge: clamped to 0 after cancellation, or +Inf after overflow.
func (w *Weibull) VarianceDiagnostic() (float64, bool) {
	g2, err := w.gammaMoment(2)
	if err != nil {
		return math.Inf(1), true
	}
	second := w.scale * w.scale * g2
	if math.IsInf(second, 1) {
		return math.Inf(1), true
	}
	mean := w.Mean()
	return clampVariance(second - mean*mean)
}

// CheckVariance returns common.ErrorNumericalEdge when the variance of w
// cannot be resolved in double precision.
func (w *Weibull) CheckVariance() error {
	v, edge := w.VarianceDiagnostic()
	switch {
	case !edge:
		return nil
	case math.IsInf(v, 1):
		return w.overflow("variance")
	default:
		return common.DomainCause(common.ErrorNumericalEdge,
			"weibull variance negative before clamping, shape: %v, scale: %v", w.shape, w.scale)
	}
}

func clampVariance(v float64) (float64, bool) {
	if v < 0 {
		return 0, true
	}
	return v, false
}

func (w *Weibull) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

func (w *Weibull) Median() float64 {
	return w.scale * math.Pow(math.Ln2, 1/w.shape)
}

// Mode is 0 for shape <= 1, where the density is largest at the origin.
func (w *Weibull) Mode() float64 {
	if w.shape > 1 {
		return w.scale * math.Pow((w.shape-1)/w.shape, 1/w.shape)
	}
	return 0
}

func (w *Weibull) Skewness() (float64, error) {
	return w.skewness(w.Variance())
}

func (w *Weibull) skewness(variance float64) (float64, error) {
	if variance == 0 {
		return math.NaN(), w.degenerate("skewness")
	}
	sigma3 := variance * math.Sqrt(variance)
	if math.IsInf(sigma3, 1) {
		return math.NaN(), w.overflow("skewness")
	}
	g, err := w.gammaMoments(3)
	if err != nil {
		return math.NaN(), err
	}

	mean := w.scale * g[0]
	scale3 := w.scale * w.scale * w.scale
	res := (scale3*g[2] - 3*mean*variance - mean*mean*mean) / sigma3
	if !utils.IsFinite(res) {
		return math.NaN(), w.overflow("skewness")
	}
	return res, nil
}

// Kurtosis returns the excess kurtosis.
func (w *Weibull) Kurtosis() (float64, error) {
	return w.kurtosis(w.Variance())
}

func (w *Weibull) kurtosis(variance float64) (float64, error) {
	if variance == 0 {
		return math.NaN(), w.degenerate("kurtosis")
	}
	if math.IsInf(variance*variance, 1) {
		return math.NaN(), w.overflow("kurtosis")
	}
	g, err := w.gammaMoments(4)
	if err != nil {
		return math.NaN(), err
	}

	g1, g2, g3, g4 := g[0], g[1], g[2], g[3]
	n := -6*math.Pow(g1, 4) + 12*g1*g1*g2 - 3*g2*g2 - 4*g1*g3 + g4
	res := math.Pow(w.scale, 4) * n / (variance * variance)
	if !utils.IsFinite(res) {
		return math.NaN(), w.overflow("kurtosis")
	}
	return res, nil
}

func (w *Weibull) degenerate(stat string) error {
	return common.DomainCause(common.ErrorDegenerate,
		"weibull %s undefined for zero variance, shape: %v, scale: %v", stat, w.shape, w.scale)
}

func (w *Weibull) overflow(stat string) error {
	return common.DomainCause(common.ErrorNumericalEdge,
		"weibull %s exceeds the float64 range, shape: %v, scale: %v", stat, w.shape, w.scale)
}

// gammaMoment returns Γ(1 + k/shape). The argument is always > 1, away from
// every pole, but overflows for small shapes.
func (w *Weibull) gammaMoment(k float64) (float64, error) {
	g, err := functions.GammaReal(1 + k/w.shape)
	if err != nil {
		return math.NaN(), errors.Wrapf(err, "weibull moment %v, shape: %v", k, w.shape)
	}
	return g, nil
}

// gammaMoments returns Γ(1 + k/shape) for k = 1..n.
func (w *Weibull) gammaMoments(n int) ([]float64, error) {
	res := make([]float64, n)
	for k := 1; k <= n; k++ {
		g, err := w.gammaMoment(float64(k))
		if err != nil {
			return nil, err
		}
		res[k-1] = g
	}
	return res, nil
}
