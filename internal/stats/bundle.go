package stats

import (
	"log/slog"

	"github.com/bonnefeteyvette/superstore/internal/dataset"
)

// Bundle holds every aggregation the reporting stage consumes. Charts
// only visualize these tables; none of them re-aggregates.
type Bundle struct {
	SalesByCategory    []Group
	SalesBySubCategory []Group
	SalesByRegion      []Group
	CountByShipMode    []Group
	CountBySegment     []Group
	MonthlySales       []MonthTotal
	Summary            []ColumnStats
}

// Compute runs the fixed aggregation set over the cleaned table
func Compute(transactions []dataset.Transaction, logger *slog.Logger) (*Bundle, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bundle := &Bundle{}
	var err error

	if bundle.SalesByCategory, err = GroupSum(transactions, DimCategory, MeasureSales); err != nil {
		return nil, err
	}
	if bundle.SalesBySubCategory, err = GroupSum(transactions, DimSubCategory, MeasureSales); err != nil {
		return nil, err
	}
	if bundle.SalesByRegion, err = GroupSum(transactions, DimRegion, MeasureSales); err != nil {
		return nil, err
	}
	if bundle.CountByShipMode, err = GroupCount(transactions, DimShipMode); err != nil {
		return nil, err
	}
	if bundle.CountBySegment, err = GroupCount(transactions, DimSegment); err != nil {
		return nil, err
	}
	if bundle.MonthlySales, err = MonthlyTotals(transactions, MeasureSales); err != nil {
		return nil, err
	}
	if bundle.Summary, err = Describe(transactions); err != nil {
		return nil, err
	}

	logger.Info("aggregations computed",
		slog.Int("categories", len(bundle.SalesByCategory)),
		slog.Int("sub_categories", len(bundle.SalesBySubCategory)),
		slog.Int("regions", len(bundle.SalesByRegion)),
		slog.Int("months", len(bundle.MonthlySales)))

	return bundle, nil
}
