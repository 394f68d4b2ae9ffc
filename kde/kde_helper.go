package kde

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/materials-algorithms/model"
	"github.com/uyouii/materials-algorithms/utils"
	"go.uber.org/zap"
)

// CalculateQuantiles smooths sample with a kernel density estimate and
// returns the requested quantiles keyed by their "%v" formatting. A quantile
// that cannot be computed is logged and left out.
func CalculateQuantiles(ctx context.Context, sample []float64, quantiles []float64,
	bwAdjust, cut float64) (res map[string]*model.QuantileValue, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateQuantiles recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("size", len(sample)))
			res, err = nil, errors.Newf("calculate kde quantiles: %v", r)
		}
	}()

	k, err := NewEstimator(sample, bwAdjust, cut)
	if err != nil {
		logger.Error("NewEstimator failed", zap.Error(err))
		return nil, err
	}

	res = map[string]*model.QuantileValue{}
	for _, value := range quantiles {
		quantile, err := k.Quantile(value)
		if err != nil {
			logger.Error("kde Quantile failed", zap.Error(err), zap.Float64("value", value))
			continue
		}
		quantile.Value = utils.FormatFloat(quantile.Value, 3)
		res[fmt.Sprintf("%v", value)] = quantile
	}

	return res, nil
}
