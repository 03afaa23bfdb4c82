// Package testutil provides helpers for building Superstore workbook
// fixtures in tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// OrdersHeader is the canonical Orders sheet header row
var OrdersHeader = []interface{}{
	"Row ID", "Order ID", "Order Date", "Ship Date", "Ship Mode",
	"Customer ID", "Customer Name", "Segment", "Country", "City",
	"State", "Postal Code", "Region", "Product ID", "Category",
	"Sub-Category", "Product Name", "Sales", "Quantity", "Discount",
	"Profit",
}

// OrderRow builds an Orders sheet row with sensible defaults for the
// columns a test does not care about.
func OrderRow(rowID int, orderID, orderDate, region, category, subCategory, shipMode, segment string, sales float64) []interface{} {
	return []interface{}{
		rowID, orderID, orderDate, orderDate, shipMode,
		"CG-12520", "Claire Gute", segment, "United States", "Henderson",
		"Kentucky", "42420", region, "FUR-BO-10001798", category,
		subCategory, "Bush Somerset Collection Bookcase", sales, 2, 0.0,
		41.9136,
	}
}

// WriteWorkbook writes an xlsx workbook with Orders, Returns and People
// sheets to path. Each sheet's first row is its header.
func WriteWorkbook(t *testing.T, path string, orders, returns, people [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		"Orders":  append([][]interface{}{OrdersHeader}, orders...),
		"Returns": append([][]interface{}{{"Returned", "Order ID"}}, returns...),
		"People":  append([][]interface{}{{"Person", "Region"}}, people...),
	}

	for _, name := range []string{"Orders", "Returns", "People"} {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range sheets[name] {
			cell := fmt.Sprintf("A%d", i+1)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	require.NoError(t, f.SaveAs(path))
}
