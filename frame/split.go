package frame

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/uyouii/eda-outliers/common"
	"github.com/uyouii/eda-outliers/model"
	"github.com/uyouii/eda-outliers/utils"
	"go.uber.org/zap"
)

// Split partitions the rows of data by the values x, x[i] belongs to row i.
// A row is an outlier if x[i] is NaN or outside bounds, otherwise it is cleaned.
// Both results keep the row order of data.
func Split(ctx context.Context, data dataframe.DataFrame, x []float64,
	bounds model.Bounds) (outliers, cleaned dataframe.DataFrame, err error) {
	logger := utils.GetLogger(ctx)

	if data.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, data.Err
	}
	if len(x) != data.Nrow() {
		err = fmt.Errorf("%w: %d values, %d rows", common.ErrorLengthMismatch, len(x), data.Nrow())
		logger.Error("split failed", zap.Error(err))
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}

	outlierIdx, cleanedIdx := SplitIndexes(x, bounds)

	if !bounds.Valid() {
		logger.Warn("invalid bounds", zap.String("bounds", bounds.DebugString()))
	}
	if nanCnt := utils.CountNaN(x); nanCnt > 0 {
		logger.Warn("NaN values classified as outliers", zap.Int("nanCnt", nanCnt))
	}

	outliers = data.Subset(outlierIdx)
	if outliers.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, outliers.Err
	}
	cleaned = data.Subset(cleanedIdx)
	if cleaned.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, cleaned.Err
	}

	logger.Debug("split finished", zap.String("bounds", bounds.DebugString()),
		zap.Int("outlierCnt", len(outlierIdx)), zap.Int("cleanedCnt", len(cleanedIdx)))
	return outliers, cleaned, nil
}

// SplitIndexes returns the row indexes of the outliers and of the cleaned values.
func SplitIndexes(x []float64, bounds model.Bounds) (outlierIdx, cleanedIdx []int) {
	outlierIdx, cleanedIdx = []int{}, []int{}
	for i, v := range x {
		if bounds.IsOutlier(v) {
			outlierIdx = append(outlierIdx, i)
		} else {
			cleanedIdx = append(cleanedIdx, i)
		}
	}
	return outlierIdx, cleanedIdx
}
