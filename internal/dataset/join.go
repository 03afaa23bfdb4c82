package dataset

import (
	"fmt"
	"log/slog"

	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
)

// JoinOptions controls the join behavior
type JoinOptions struct {
	// StrictKeys fails the join when a right-side key (Returns order id,
	// People region) appears more than once. A duplicate right-side key
	// would otherwise silently duplicate order rows.
	StrictKeys bool
}

// Denormalize left-joins Orders with Returns on the order id, then the
// result with People on the region, producing one Transaction per order
// line item. Every orders row is preserved; unmatched right-side columns
// stay empty.
func Denormalize(wb *Workbook, opts JoinOptions, logger *slog.Logger) ([]Transaction, error) {
	if logger == nil {
		logger = slog.Default()
	}

	returnsByOrder := make(map[string]string, len(wb.Returns))
	for _, ret := range wb.Returns {
		if _, exists := returnsByOrder[ret.OrderID]; exists && opts.StrictKeys {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("duplicate order id %q in returns table", ret.OrderID))
		}
		returnsByOrder[ret.OrderID] = ret.Returned
	}

	personByRegion := make(map[string]string, len(wb.People))
	for _, p := range wb.People {
		if _, exists := personByRegion[p.Region]; exists && opts.StrictKeys {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("duplicate region %q in people table", p.Region))
		}
		personByRegion[p.Region] = p.Person
	}

	transactions := make([]Transaction, 0, len(wb.Orders))
	unmatchedReturns := 0
	unmatchedPeople := 0
	for _, order := range wb.Orders {
		t := Transaction{Order: order}

		if returned, ok := returnsByOrder[order.OrderID]; ok {
			t.Returned = returned
		} else {
			unmatchedReturns++
		}

		if person, ok := personByRegion[order.Region]; ok {
			t.Person = person
		} else {
			unmatchedPeople++
		}

		transactions = append(transactions, t)
	}

	logger.Info("tables joined",
		slog.Int("rows", len(transactions)),
		slog.Int("rows_without_return_record", unmatchedReturns),
		slog.Int("rows_without_person", unmatchedPeople))

	return transactions, nil
}
