package model

import (
	"fmt"
	"math"
)

// Bounds is the acceptance interval of a feature, both ends inclusive.
// It may be on the log scale, depending on how it was computed.
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains is the complement of IsOutlier.
func (b Bounds) Contains(x float64) bool {
	return !b.IsOutlier(x)
}

// IsOutlier reports whether x falls outside the bounds. NaN is always an outlier,
// NaN bounds never flag a number.
func (b Bounds) IsOutlier(x float64) bool {
	if math.IsNaN(x) {
		return true
	}
	return x < b.Lower || x > b.Upper
}

func (b Bounds) Valid() bool {
	return !math.IsNaN(b.Lower) && !math.IsNaN(b.Upper) && b.Lower <= b.Upper
}

func (b Bounds) DebugString() string {
	return fmt.Sprintf("[%v, %v]", b.Lower, b.Upper)
}

type ZScoreParameters struct {
	Mu         float64 `json:"mu"`
	Sigma      float64 `json:"sigma"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
	LogScale   bool    `json:"log_scale,omitempty"`
}

func (p *ZScoreParameters) Bounds() Bounds {
	return Bounds{Lower: p.LowerBound, Upper: p.UpperBound}
}

type IqrParameters struct {
	Quartile1  float64 `json:"q1"`
	Quartile3  float64 `json:"q3"`
	Iqr        float64 `json:"iqr"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
	LogScale   bool    `json:"log_scale,omitempty"`
}

func (p *IqrParameters) Bounds() Bounds {
	return Bounds{Lower: p.LowerBound, Upper: p.UpperBound}
}
