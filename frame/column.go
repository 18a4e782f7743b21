package frame

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/uyouii/eda-outliers/common"
	"github.com/uyouii/eda-outliers/utils"
	"go.uber.org/zap"
)

// LogOffset decides when 1 is added to the values before taking the log.
type LogOffset int

const (
	// ConditionalOffset uses log(x+1) only if the column contains an exact zero, otherwise log(x).
	ConditionalOffset LogOffset = 1
	// AlwaysOffset uses log(x+1) for every column.
	AlwaysOffset LogOffset = 2
)

func (o LogOffset) String() string {
	switch o {
	case ConditionalOffset:
		return "conditional"
	case AlwaysOffset:
		return "always"
	}
	return fmt.Sprintf("LogOffset(%d)", int(o))
}

// Column returns the values of feature as float64, in row order.
// The returned slice is a copy, data is never modified.
func Column(data dataframe.DataFrame, feature string) ([]float64, error) {
	if data.Err != nil {
		return nil, data.Err
	}

	found := false
	for _, name := range data.Names() {
		if name == feature {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", common.ErrorFeatureNotFound, feature)
	}

	col := data.Col(feature)
	if col.Err != nil {
		return nil, col.Err
	}
	switch col.Type() {
	case series.Float, series.Int:
	default:
		return nil, fmt.Errorf("%w: %q has type %v", common.ErrorNotNumeric, feature, col.Type())
	}
	return col.Float(), nil
}

// GetLogScale returns the feature values, log scaled if logScale is true.
// The log is taken as log(x+1) when the column contains a zero and as log(x) otherwise,
// so negative values without a zero in the column become NaN.
func GetLogScale(ctx context.Context, data dataframe.DataFrame, feature string, logScale bool) ([]float64, error) {
	return LogColumn(ctx, data, feature, logScale, ConditionalOffset)
}

func LogColumn(ctx context.Context, data dataframe.DataFrame, feature string,
	logScale bool, offset LogOffset) ([]float64, error) {
	logger := utils.GetLogger(ctx)

	x, err := Column(data, feature)
	if err != nil {
		logger.Error("get feature column failed", zap.String("feature", feature), zap.Error(err))
		return nil, err
	}
	if !logScale {
		return x, nil
	}

	var shift float64
	switch offset {
	case AlwaysOffset:
		shift = 1
	case ConditionalOffset:
		if HasZero(x) {
			shift = 1
		}
	default:
		err = fmt.Errorf("%w: unknown log offset %v", common.ErrorInvalidValue, offset)
		logger.Error("log scale failed", zap.String("feature", feature), zap.Error(err))
		return nil, err
	}

	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = math.Log(v + shift)
	}

	if nanCnt := utils.CountNaN(res); nanCnt > 0 {
		logger.Warn("NaN values after log scale", zap.String("feature", feature),
			zap.Int("nanCnt", nanCnt), zap.Stringer("offset", offset))
	}
	return res, nil
}

func HasZero(x []float64) bool {
	for _, v := range x {
		if v == 0 {
			return true
		}
	}
	return false
}
