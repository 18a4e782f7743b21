package zscore

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/uyouii/eda-outliers/frame"
	"github.com/uyouii/eda-outliers/model"
	"github.com/uyouii/eda-outliers/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// OutliersZScoreMod flags the rows whose feature is outside [mu - left*sigma, mu + right*sigma],
// sigma being the sample standard deviation.
// With logScale the feature is transformed as log(x+1), whether or not it contains a zero.
func OutliersZScoreMod(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool, left, right float64) (outliers, cleaned dataframe.DataFrame, err error) {
	logger := utils.GetLogger(ctx)

	x, err := frame.LogColumn(ctx, data, feature, logScale, frame.AlwaysOffset)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}

	params := calculateParameters(x, left, right)
	params.LogScale = logScale
	logger.Debug("zscore parameters", zap.String("feature", feature), zap.Any("params", params))

	return frame.Split(ctx, data, x, params.Bounds())
}

func OutliersZScore(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool) (outliers, cleaned dataframe.DataFrame, err error) {
	return OutliersZScoreMod(ctx, data, feature, logScale, DefaultLeft, DefaultRight)
}

// mean and sample standard deviation, NaN values skipped
func calculateParameters(x []float64, left, right float64) *model.ZScoreParameters {
	values := utils.DropNaN(x)
	mu, sigma := stat.MeanStdDev(values, nil)

	return &model.ZScoreParameters{
		Mu:         mu,
		Sigma:      sigma,
		LowerBound: mu - left*sigma,
		UpperBound: mu + right*sigma,
	}
}
