package dataset

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
)

// Sheet names expected in the source workbook
const (
	SheetOrders  = "Orders"
	SheetReturns = "Returns"
	SheetPeople  = "People"
)

// dateLayouts are the order-date formats accepted from workbook cells
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
	"2006-01-02 15:04:05",
}

// ParseWorkbook reads the three relational tables from the Superstore
// workbook. A missing file, a missing sheet, or a missing required column
// is fatal: no partial workbook is ever returned.
func ParseWorkbook(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("workbook %s", path)).
			WithContext("cause", err.Error())
	}
	defer f.Close()

	orders, err := parseOrders(f)
	if err != nil {
		return nil, err
	}

	returns, err := parseReturns(f)
	if err != nil {
		return nil, err
	}

	people, err := parsePeople(f)
	if err != nil {
		return nil, err
	}

	logger.Info("workbook parsed",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("returns", len(returns)),
		slog.Int("people", len(people)))

	return &Workbook{Orders: orders, Returns: returns, People: people}, nil
}

// sheetRows reads a named sheet and resolves its header row into a
// column-name -> index map. Column order in the sheet does not matter;
// a required column that cannot be resolved is fatal.
func sheetRows(f *excelize.File, sheet string, required []string) ([][]string, map[string]int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("sheet %q", sheet)).
			WithContext("cause", err.Error())
	}
	if len(rows) == 0 {
		return nil, nil, apperrors.NewParsingError(fmt.Sprintf("sheet %q has no header row", sheet), nil)
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if name != "" {
			columns[name] = i
		}
	}

	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, nil, apperrors.NewParsingError(
				fmt.Sprintf("sheet %q is missing required column %q", sheet, col), nil)
		}
	}

	return rows[1:], columns, nil
}

func parseOrders(f *excelize.File) ([]Order, error) {
	required := []string{
		"row id", "order id", "order date", "ship date", "ship mode",
		"customer id", "customer name", "segment", "country", "city",
		"state", "postal code", "region", "product id", "category",
		"sub-category", "product name", "sales", "quantity", "discount",
		"profit",
	}
	rows, columns, err := sheetRows(f, SheetOrders, required)
	if err != nil {
		return nil, err
	}

	cell := func(row []string, name string) string {
		if idx := columns[name]; idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	orders := make([]Order, 0, len(rows))
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		orderDate, err := parseDate(cell(row, "order date"))
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("orders row %d: bad order date", i+2), err)
		}
		shipDate, err := parseDate(cell(row, "ship date"))
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("orders row %d: bad ship date", i+2), err)
		}

		orders = append(orders, Order{
			RowID:        int(parseInt(cell(row, "row id"))),
			OrderID:      cell(row, "order id"),
			OrderDate:    orderDate,
			ShipDate:     shipDate,
			ShipMode:     cell(row, "ship mode"),
			CustomerID:   cell(row, "customer id"),
			CustomerName: cell(row, "customer name"),
			Segment:      cell(row, "segment"),
			Country:      cell(row, "country"),
			City:         cell(row, "city"),
			State:        cell(row, "state"),
			PostalCode:   cell(row, "postal code"),
			Region:       cell(row, "region"),
			ProductID:    cell(row, "product id"),
			Category:     cell(row, "category"),
			SubCategory:  cell(row, "sub-category"),
			ProductName:  cell(row, "product name"),
			Sales:        parseFloat(cell(row, "sales")),
			Quantity:     parseInt(cell(row, "quantity")),
			Discount:     parseFloat(cell(row, "discount")),
			Profit:       parseFloat(cell(row, "profit")),
		})
	}

	return orders, nil
}

func parseReturns(f *excelize.File) ([]ReturnRecord, error) {
	rows, columns, err := sheetRows(f, SheetReturns, []string{"returned", "order id"})
	if err != nil {
		return nil, err
	}

	returns := make([]ReturnRecord, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		rec := ReturnRecord{}
		if idx := columns["returned"]; idx < len(row) {
			rec.Returned = strings.TrimSpace(row[idx])
		}
		if idx := columns["order id"]; idx < len(row) {
			rec.OrderID = strings.TrimSpace(row[idx])
		}
		returns = append(returns, rec)
	}

	return returns, nil
}

func parsePeople(f *excelize.File) ([]Person, error) {
	rows, columns, err := sheetRows(f, SheetPeople, []string{"person", "region"})
	if err != nil {
		return nil, err
	}

	people := make([]Person, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		p := Person{}
		if idx := columns["person"]; idx < len(row) {
			p.Person = strings.TrimSpace(row[idx])
		}
		if idx := columns["region"]; idx < len(row) {
			p.Region = strings.TrimSpace(row[idx])
		}
		people = append(people, p)
	}

	return people, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	val, _ := strconv.ParseFloat(s, 64)
	return val
}

func parseInt(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	val, _ := strconv.ParseInt(s, 10, 64)
	return val
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
