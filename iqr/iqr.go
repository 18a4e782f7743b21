package iqr

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/uyouii/eda-outliers/frame"
	"github.com/uyouii/eda-outliers/model"
	"github.com/uyouii/eda-outliers/utils"
	"go.uber.org/zap"
)

// OutliersIqrMod is the Tukey rule with separate multipliers for the two fences:
// lower = Q1 - left*IQR, upper = Q3 + right*IQR.
// With logScale the feature is transformed as log(x+1), whether or not it contains a zero.
func OutliersIqrMod(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool, left, right float64) (outliers, cleaned dataframe.DataFrame, err error) {
	logger := utils.GetLogger(ctx)

	x, err := frame.LogColumn(ctx, data, feature, logScale, frame.AlwaysOffset)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}

	params := calculateParameters(x, left, right)
	params.LogScale = logScale
	logger.Debug("iqr parameters", zap.String("feature", feature), zap.Any("params", params))

	return frame.Split(ctx, data, x, params.Bounds())
}

// OutliersIqr calls OutliersIqrMod with the default 1.5 multipliers.
func OutliersIqr(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool) (outliers, cleaned dataframe.DataFrame, err error) {
	return OutliersIqrMod(ctx, data, feature, logScale, DefaultLeft, DefaultRight)
}

// FindIqrParameters returns the quartiles and bounds OutliersIqrMod uses, without splitting data.
func FindIqrParameters(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool, left, right float64) (*model.IqrParameters, error) {
	x, err := frame.LogColumn(ctx, data, feature, logScale, frame.AlwaysOffset)
	if err != nil {
		return nil, err
	}

	params := calculateParameters(x, left, right)
	params.LogScale = logScale
	return params, nil
}

func calculateParameters(x []float64, left, right float64) *model.IqrParameters {
	q1 := utils.Quantile(Quartile1Probability, x)
	q3 := utils.Quantile(Quartile3Probability, x)
	iqr := q3 - q1

	return &model.IqrParameters{
		Quartile1:  q1,
		Quartile3:  q3,
		Iqr:        iqr,
		LowerBound: q1 - iqr*left,
		UpperBound: q3 + iqr*right,
	}
}
