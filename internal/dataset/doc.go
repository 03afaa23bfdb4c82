// Package dataset loads the Superstore workbook, denormalizes its three
// tables into transaction records, and cleans the result.
//
// The lifecycle is fixed: ParseWorkbook reads Orders, Returns and People;
// Denormalize left-joins them into one row per line item; Clean imputes
// the Returned column with the "NO" sentinel and audits the table for
// absent values and duplicate rows. The cleaned slice is read-only for
// every later stage.
package dataset
