package stats

import (
	"math"
	"sort"

	"github.com/bonnefeteyvette/superstore/internal/dataset"
)

// ColumnStats is a standard descriptive summary of one numeric column
type ColumnStats struct {
	Column Measure
	Count  int
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Mean   float64
	Max    float64
}

// describedMeasures are the numeric columns covered by Describe, in
// snapshot schema order.
var describedMeasures = []Measure{
	MeasureSales, MeasureQuantity, MeasureDiscount, MeasureProfit,
}

// Describe computes min, quartiles, mean and max for every numeric column.
// The result is independent of input row order.
func Describe(transactions []dataset.Transaction) ([]ColumnStats, error) {
	result := make([]ColumnStats, 0, len(describedMeasures))
	for _, measure := range describedMeasures {
		values := make([]float64, 0, len(transactions))
		for _, t := range transactions {
			v, err := measureValue(t, measure)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		result = append(result, describeColumn(measure, values))
	}
	return result, nil
}

func describeColumn(measure Measure, values []float64) ColumnStats {
	stats := ColumnStats{Column: measure, Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	stats.Min = sorted[0]
	stats.P25 = percentile(sorted, 25)
	stats.Median = percentile(sorted, 50)
	stats.P75 = percentile(sorted, 75)
	stats.Mean = sum / float64(len(sorted))
	stats.Max = sorted[len(sorted)-1]
	return stats
}

// percentile computes the p-th percentile of an ascending-sorted slice
// using linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
