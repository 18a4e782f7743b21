package zscore

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/uyouii/eda-outliers/common"
	"github.com/uyouii/eda-outliers/frame"
	"github.com/uyouii/eda-outliers/model"
	"github.com/uyouii/eda-outliers/utils"
	"go.uber.org/zap"
)

// FindZScoreParameters computes mu and the bounds once, so they can be applied to other data later.
// Unlike OutliersZScoreMod, the log scale adds 1 only when the feature contains a zero.
func FindZScoreParameters(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool, left, right float64) (*model.ZScoreParameters, error) {
	logger := utils.GetLogger(ctx)

	x, err := frame.GetLogScale(ctx, data, feature, logScale)
	if err != nil {
		return nil, err
	}

	params := calculateParameters(x, left, right)
	params.LogScale = logScale

	logger.Debug("find zscore parameters success", zap.String("feature", feature),
		zap.Float64("mu", utils.FormatFloat(params.Mu, 3)),
		zap.Float64("lowerBound", utils.FormatFloat(params.LowerBound, 3)),
		zap.Float64("upperBound", utils.FormatFloat(params.UpperBound, 3)))
	return params, nil
}

// Apply splits data with bounds found earlier by FindZScoreParameters.
// The feature is log scaled the same way FindZScoreParameters does when params.LogScale is set.
func Apply(ctx context.Context, data dataframe.DataFrame, feature string,
	params *model.ZScoreParameters) (outliers, cleaned dataframe.DataFrame, err error) {
	if params == nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{},
			fmt.Errorf("%w: nil zscore parameters", common.ErrorInvalidValue)
	}

	x, err := frame.GetLogScale(ctx, data, feature, params.LogScale)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}
	return frame.Split(ctx, data, x, params.Bounds())
}
