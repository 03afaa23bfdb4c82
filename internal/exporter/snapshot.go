package exporter

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/dataset"
	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
	"github.com/bonnefeteyvette/superstore/internal/stats"
)

// Snapshot persists and reloads the cleaned transaction table
type Snapshot struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewSnapshot creates a snapshot exporter bound to the path layout
func NewSnapshot(paths *config.Paths, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshot{paths: paths, logger: logger}
}

// Write persists the cleaned table to the processed directory: header row,
// 23 columns in merged-schema order, no index column, prior snapshot
// overwritten.
func (s *Snapshot) Write(transactions []dataset.Transaction) error {
	records := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.Row())
	}

	if err := writeCSV(s.paths.SnapshotCSV, WriteOptions{
		Headers:   dataset.Columns(),
		Records:   records,
		BOMPrefix: true,
	}); err != nil {
		return err
	}

	s.logger.Info("cleaned snapshot written",
		slog.String("path", s.paths.SnapshotCSV),
		slog.Int("rows", len(records)))

	return nil
}

// Load reads the cleaned snapshot back into transaction records. The
// round trip through Write and Load reproduces identical records.
func (s *Snapshot) Load() ([]dataset.Transaction, error) {
	header, rows, err := readCSV(s.paths.SnapshotCSV)
	if err != nil {
		return nil, err
	}

	want := dataset.Columns()
	if len(header) != len(want) {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("snapshot has %d columns, want %d", len(header), len(want)), nil)
	}

	transactions := make([]dataset.Transaction, 0, len(rows))
	for i, row := range rows {
		t, err := parseSnapshotRow(row)
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("snapshot row %d", i+2), err)
		}
		transactions = append(transactions, t)
	}

	s.logger.Info("cleaned snapshot loaded",
		slog.String("path", s.paths.SnapshotCSV),
		slog.Int("rows", len(transactions)))

	return transactions, nil
}

func parseSnapshotRow(row []string) (dataset.Transaction, error) {
	var t dataset.Transaction
	if len(row) != len(dataset.Columns()) {
		return t, fmt.Errorf("have %d cells, want %d", len(row), len(dataset.Columns()))
	}

	rowID, err := strconv.Atoi(row[0])
	if err != nil {
		return t, fmt.Errorf("bad row id %q: %w", row[0], err)
	}
	orderDate, err := time.Parse(dataset.DateFormat, row[2])
	if err != nil {
		return t, fmt.Errorf("bad order date %q: %w", row[2], err)
	}
	shipDate, err := time.Parse(dataset.DateFormat, row[3])
	if err != nil {
		return t, fmt.Errorf("bad ship date %q: %w", row[3], err)
	}
	sales, err := strconv.ParseFloat(row[17], 64)
	if err != nil {
		return t, fmt.Errorf("bad sales %q: %w", row[17], err)
	}
	quantity, err := strconv.ParseInt(row[18], 10, 64)
	if err != nil {
		return t, fmt.Errorf("bad quantity %q: %w", row[18], err)
	}
	discount, err := strconv.ParseFloat(row[19], 64)
	if err != nil {
		return t, fmt.Errorf("bad discount %q: %w", row[19], err)
	}
	profit, err := strconv.ParseFloat(row[20], 64)
	if err != nil {
		return t, fmt.Errorf("bad profit %q: %w", row[20], err)
	}

	t.Order = dataset.Order{
		RowID:        rowID,
		OrderID:      row[1],
		OrderDate:    orderDate,
		ShipDate:     shipDate,
		ShipMode:     row[4],
		CustomerID:   row[5],
		CustomerName: row[6],
		Segment:      row[7],
		Country:      row[8],
		City:         row[9],
		State:        row[10],
		PostalCode:   row[11],
		Region:       row[12],
		ProductID:    row[13],
		Category:     row[14],
		SubCategory:  row[15],
		ProductName:  row[16],
		Sales:        sales,
		Quantity:     quantity,
		Discount:     discount,
		Profit:       profit,
	}
	t.Returned = row[21]
	t.Person = row[22]
	return t, nil
}

// WriteSummaryStats persists the descriptive-statistics table to the
// results directory.
func (s *Snapshot) WriteSummaryStats(summary []stats.ColumnStats) error {
	records := make([][]string, 0, len(summary))
	for _, cs := range summary {
		records = append(records, []string{
			string(cs.Column),
			strconv.Itoa(cs.Count),
			formatStat(cs.Min),
			formatStat(cs.P25),
			formatStat(cs.Median),
			formatStat(cs.P75),
			formatStat(cs.Mean),
			formatStat(cs.Max),
		})
	}

	if err := writeCSV(s.paths.SummaryStatsCSV, WriteOptions{
		Headers:   []string{"Column", "Count", "Min", "P25", "Median", "P75", "Mean", "Max"},
		Records:   records,
		BOMPrefix: true,
	}); err != nil {
		return err
	}

	s.logger.Info("summary statistics written",
		slog.String("path", s.paths.SummaryStatsCSV))

	return nil
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
