package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

// DropNaN returns the values which are not NaN, the input is not modified.
func DropNaN(x []float64) []float64 {
	if !floats.HasNaN(x) {
		return x
	}
	res := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}

func CountNaN(x []float64) int {
	cnt := 0
	for _, v := range x {
		if math.IsNaN(v) {
			cnt++
		}
	}
	return cnt
}

// Quantile returns the p-th quantile (0 <= p <= 1) of x with linear interpolation
// between the closest ranks, rank = p * (n - 1).
// NaN values are skipped, an empty input returns NaN.
func Quantile(p float64, x []float64) float64 {
	values := DropNaN(x)
	n := len(values)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	rank := p * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}
