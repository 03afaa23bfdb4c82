// Package pipeline composes the dataset stages into one sequential,
// fail-fast run: load and join the workbook, clean and persist the
// snapshot, aggregate, render reports. Each step is an independently
// testable unit taking and updating an explicit State value.
package pipeline
