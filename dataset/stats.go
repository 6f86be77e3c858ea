package dataset

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Floats extracts the coercible numeric values from a column slice.
func Floats(values []any) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := Float(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			out = append(out, f)
		}
	}
	return out
}

// Mean returns the mean of the coercible values; false when there are none.
func Mean(values []any) (float64, bool) {
	m, err := stats.Mean(Floats(values))
	if err != nil {
		return 0, false
	}
	return m, true
}

// Median returns the median of the coercible values; false when there are none.
func Median(values []any) (float64, bool) {
	m, err := stats.Median(Floats(values))
	if err != nil {
		return 0, false
	}
	return m, true
}

// Sum returns the sum of the coercible values. An empty column sums to 0.
func Sum(values []any) float64 {
	s, err := stats.Sum(Floats(values))
	if err != nil {
		return 0
	}
	return s
}

// Round rounds half away from zero to the given number of decimal
// places. Non-finite input collapses to 0 so aggregates stay
// JSON-encodable.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r, err := stats.Round(v, places)
	if err != nil {
		return 0
	}
	return r
}
