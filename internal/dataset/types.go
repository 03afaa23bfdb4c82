package dataset

import (
	"strconv"
	"time"
)

// DateFormat is the canonical date layout used in the cleaned snapshot
const DateFormat = "2006-01-02"

// Order is a single line item from the Orders sheet
type Order struct {
	RowID        int
	OrderID      string
	OrderDate    time.Time
	ShipDate     time.Time
	ShipMode     string
	CustomerID   string
	CustomerName string
	Segment      string
	Country      string
	City         string
	State        string
	PostalCode   string
	Region       string
	ProductID    string
	Category     string
	SubCategory  string
	ProductName  string
	Sales        float64
	Quantity     int64
	Discount     float64
	Profit       float64
}

// ReturnRecord is a single row from the Returns sheet
type ReturnRecord struct {
	Returned string
	OrderID  string
}

// Person is a single row from the People sheet
type Person struct {
	Person string
	Region string
}

// Workbook holds the three relational tables read from the source workbook
type Workbook struct {
	Orders  []Order
	Returns []ReturnRecord
	People  []Person
}

// Transaction is the denormalized record produced by joining the three
// tables: one row per order line item, with the return status and the
// regional manager attached.
type Transaction struct {
	Order

	// Returned is the return status from the Returns sheet. Absent (empty)
	// until the cleaning step substitutes the sentinel; "NO" afterwards
	// means "no return record found", not a verified negative.
	Returned string

	// Person is the regional manager from the People sheet.
	Person string
}

// Columns returns the snapshot column headers in merged-schema order
func Columns() []string {
	return []string{
		"Row ID", "Order ID", "Order Date", "Ship Date", "Ship Mode",
		"Customer ID", "Customer Name", "Segment", "Country", "City",
		"State", "Postal Code", "Region", "Product ID", "Category",
		"Sub-Category", "Product Name", "Sales", "Quantity", "Discount",
		"Profit", "Returned", "Person",
	}
}

// Row renders the transaction as a snapshot CSV row, matching Columns order.
// Floats keep their shortest exact representation so a snapshot round-trip
// reproduces identical values.
func (t Transaction) Row() []string {
	return []string{
		strconv.Itoa(t.RowID),
		t.OrderID,
		t.OrderDate.Format(DateFormat),
		t.ShipDate.Format(DateFormat),
		t.ShipMode,
		t.CustomerID,
		t.CustomerName,
		t.Segment,
		t.Country,
		t.City,
		t.State,
		t.PostalCode,
		t.Region,
		t.ProductID,
		t.Category,
		t.SubCategory,
		t.ProductName,
		strconv.FormatFloat(t.Sales, 'f', -1, 64),
		strconv.FormatInt(t.Quantity, 10),
		strconv.FormatFloat(t.Discount, 'f', -1, 64),
		strconv.FormatFloat(t.Profit, 'f', -1, 64),
		t.Returned,
		t.Person,
	}
}
