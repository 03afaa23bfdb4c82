package stats

import (
	"fmt"
	"sort"

	"github.com/bonnefeteyvette/superstore/internal/dataset"
	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
)

// Dimension is a categorical column the table can be partitioned by
type Dimension string

const (
	DimCategory    Dimension = "Category"
	DimSubCategory Dimension = "Sub-Category"
	DimRegion      Dimension = "Region"
	DimShipMode    Dimension = "Ship Mode"
	DimSegment     Dimension = "Segment"
)

// Measure is a numeric column that can be summed per group
type Measure string

const (
	MeasureSales    Measure = "Sales"
	MeasureQuantity Measure = "Quantity"
	MeasureDiscount Measure = "Discount"
	MeasureProfit   Measure = "Profit"
)

// Group is one partition of a grouped aggregation
type Group struct {
	Key   string
	Count int
	Sum   float64
}

// GroupCount partitions rows by a categorical dimension and counts rows
// per group. Groups are ordered by count descending, key ascending on ties.
func GroupCount(transactions []dataset.Transaction, dim Dimension) ([]Group, error) {
	counts := make(map[string]int)
	for _, t := range transactions {
		key, err := dimensionValue(t, dim)
		if err != nil {
			return nil, err
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, Group{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})

	return groups, nil
}

// GroupSum partitions rows by a categorical dimension and sums a numeric
// measure per group. Groups are ordered by sum descending, key ascending
// on ties. The per-group sums always recover the whole-table total.
func GroupSum(transactions []dataset.Transaction, dim Dimension, measure Measure) ([]Group, error) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range transactions {
		key, err := dimensionValue(t, dim)
		if err != nil {
			return nil, err
		}
		value, err := measureValue(t, measure)
		if err != nil {
			return nil, err
		}
		sums[key] += value
		counts[key]++
	}

	groups := make([]Group, 0, len(sums))
	for key, sum := range sums {
		groups = append(groups, Group{Key: key, Count: counts[key], Sum: sum})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Sum != groups[j].Sum {
			return groups[i].Sum > groups[j].Sum
		}
		return groups[i].Key < groups[j].Key
	})

	return groups, nil
}

// Total sums a numeric measure over the whole table
func Total(transactions []dataset.Transaction, measure Measure) (float64, error) {
	total := 0.0
	for _, t := range transactions {
		value, err := measureValue(t, measure)
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

func dimensionValue(t dataset.Transaction, dim Dimension) (string, error) {
	switch dim {
	case DimCategory:
		return t.Category, nil
	case DimSubCategory:
		return t.SubCategory, nil
	case DimRegion:
		return t.Region, nil
	case DimShipMode:
		return t.ShipMode, nil
	case DimSegment:
		return t.Segment, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown dimension %q", dim))
	}
}

func measureValue(t dataset.Transaction, measure Measure) (float64, error) {
	switch measure {
	case MeasureSales:
		return t.Sales, nil
	case MeasureQuantity:
		return float64(t.Quantity), nil
	case MeasureDiscount:
		return t.Discount, nil
	case MeasureProfit:
		return t.Profit, nil
	default:
		return 0, apperrors.NewValidationError(fmt.Sprintf("unknown measure %q", measure))
	}
}
