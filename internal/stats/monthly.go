package stats

import (
	"sort"
	"time"

	"github.com/bonnefeteyvette/superstore/internal/dataset"
)

// MonthTotal is one calendar month's aggregated measure. Ordinal (1-12)
// is the sort key: month rows are ordered by calendar position, never
// alphabetically by name.
type MonthTotal struct {
	Month   string
	Ordinal int
	Total   float64
}

// MonthlyTotals sums a measure per calendar month of the order date,
// collapsing years. The result is always in calendar order
// (January through December), independent of input row order.
func MonthlyTotals(transactions []dataset.Transaction, measure Measure) ([]MonthTotal, error) {
	totals := make(map[int]float64)
	for _, t := range transactions {
		value, err := measureValue(t, measure)
		if err != nil {
			return nil, err
		}
		totals[int(t.OrderDate.Month())] += value
	}

	months := make([]MonthTotal, 0, len(totals))
	for ordinal, total := range totals {
		months = append(months, MonthTotal{
			Month:   time.Month(ordinal).String(),
			Ordinal: ordinal,
			Total:   total,
		})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Ordinal < months[j].Ordinal
	})

	return months, nil
}
