package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnefeteyvette/superstore/internal/dataset"
)

func transactionsWithSales(sales ...float64) []dataset.Transaction {
	transactions := make([]dataset.Transaction, 0, len(sales))
	for _, s := range sales {
		transactions = append(transactions,
			makeTransaction("Furniture", "Chairs", "West", "Second Class", "Consumer", time.June, s))
	}
	return transactions
}

func salesStats(t *testing.T, transactions []dataset.Transaction) ColumnStats {
	t.Helper()
	summary, err := Describe(transactions)
	require.NoError(t, err)
	require.Len(t, summary, 4)
	require.Equal(t, MeasureSales, summary[0].Column)
	return summary[0]
}

func TestDescribe(t *testing.T) {
	got := salesStats(t, transactionsWithSales(1, 2, 3, 4, 5))

	assert.Equal(t, 5, got.Count)
	assert.Equal(t, 1.0, got.Min)
	assert.Equal(t, 2.0, got.P25)
	assert.Equal(t, 3.0, got.Median)
	assert.Equal(t, 4.0, got.P75)
	assert.Equal(t, 3.0, got.Mean)
	assert.Equal(t, 5.0, got.Max)
}

func TestDescribe_Interpolation(t *testing.T) {
	// Quartiles of {1,2,3,4} fall between ranks
	got := salesStats(t, transactionsWithSales(1, 2, 3, 4))

	assert.InDelta(t, 1.75, got.P25, 1e-9)
	assert.InDelta(t, 2.5, got.Median, 1e-9)
	assert.InDelta(t, 3.25, got.P75, 1e-9)
}

func TestDescribe_BoundsIndependentOfRowOrder(t *testing.T) {
	// The documented dataset bounds must be reproduced exactly from any
	// row ordering.
	sales := []float64{0.44, 22638.48, 12.96, 731.94, 261.96, 957.5775, 48.86}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		shuffled := make([]float64, len(sales))
		copy(shuffled, sales)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := salesStats(t, transactionsWithSales(shuffled...))
		assert.Equal(t, 0.44, got.Min)
		assert.Equal(t, 22638.48, got.Max)
	}
}

func TestDescribe_Empty(t *testing.T) {
	summary, err := Describe(nil)
	require.NoError(t, err)

	for _, cs := range summary {
		assert.Equal(t, 0, cs.Count)
		assert.Zero(t, cs.Min)
		assert.Zero(t, cs.Max)
	}
}

func TestPercentile_SingleValue(t *testing.T) {
	assert.Equal(t, 7.0, percentile([]float64{7}, 25))
	assert.Equal(t, 7.0, percentile([]float64{7}, 75))
}
