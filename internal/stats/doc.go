// Package stats computes the grouped aggregations and descriptive
// statistics over the cleaned transaction table. Aggregations never
// mutate the table; charts consume their output as-is.
package stats
