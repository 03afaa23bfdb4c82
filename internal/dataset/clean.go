package dataset

import (
	"log/slog"
	"strings"

	"github.com/zeebo/xxh3"
)

// ReturnedSentinel is substituted for absent return status after the join:
// it means "no return record found", not a verified negative.
const ReturnedSentinel = "NO"

// rowSeparator joins row cells before hashing. 0x1f is the ASCII unit
// separator and cannot occur inside a cell value.
const rowSeparator = "\x1f"

// CleanReport summarizes what the cleaning step did and observed
type CleanReport struct {
	// Filled is the number of rows whose Returned column received the sentinel
	Filled int
	// Missing is the per-column count of absent values after imputation
	Missing map[string]int
	// Duplicates is the number of exact full-row duplicates (counted, never dropped)
	Duplicates int
}

// Clean imputes the Returned column in place, then audits the table:
// per-column absent-value counts and the exact-duplicate row count.
// No row is ever removed. Cleaning is idempotent.
func Clean(transactions []Transaction, logger *slog.Logger) CleanReport {
	if logger == nil {
		logger = slog.Default()
	}

	report := CleanReport{
		Filled:     FillReturned(transactions),
		Missing:    MissingByColumn(transactions),
		Duplicates: CountDuplicates(transactions),
	}

	missingTotal := 0
	for _, n := range report.Missing {
		missingTotal += n
	}

	logger.Info("table cleaned",
		slog.Int("returned_filled", report.Filled),
		slog.Int("missing_after_fill", missingTotal),
		slog.Int("duplicate_rows", report.Duplicates))

	if missingTotal > 0 {
		for column, n := range report.Missing {
			if n > 0 {
				logger.Warn("column still has absent values after cleaning",
					slog.String("column", column),
					slog.Int("count", n))
			}
		}
	}

	return report
}

// FillReturned replaces absent values in the Returned column with the
// sentinel category. No other column is touched. Returns the number of
// rows filled.
func FillReturned(transactions []Transaction) int {
	filled := 0
	for i := range transactions {
		if transactions[i].Returned == "" {
			transactions[i].Returned = ReturnedSentinel
			filled++
		}
	}
	return filled
}

// MissingByColumn counts absent (empty) values per snapshot column
func MissingByColumn(transactions []Transaction) map[string]int {
	columns := Columns()
	missing := make(map[string]int, len(columns))
	for _, column := range columns {
		missing[column] = 0
	}

	for _, t := range transactions {
		for i, cell := range t.Row() {
			if strings.TrimSpace(cell) == "" {
				missing[columns[i]]++
			}
		}
	}

	return missing
}

// CountDuplicates counts exact full-row duplicates: a row identical to n-1
// earlier rows contributes n-1 to the count. Rows are compared by an xxh3
// hash of all cells.
func CountDuplicates(transactions []Transaction) int {
	seen := make(map[uint64]int, len(transactions))
	duplicates := 0
	for _, t := range transactions {
		h := xxh3.HashString(strings.Join(t.Row(), rowSeparator))
		if seen[h] > 0 {
			duplicates++
		}
		seen[h]++
	}
	return duplicates
}
