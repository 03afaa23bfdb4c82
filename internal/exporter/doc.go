// Package exporter persists pipeline outputs as CSV: the cleaned snapshot
// in the processed directory and the summary-statistics table in the
// results directory. Files carry a UTF-8 BOM so Excel opens them cleanly.
package exporter
