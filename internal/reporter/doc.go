// Package reporter renders the fixed chart set over already-computed
// aggregations. Every chart is emitted three ways into the results
// directory: a PNG raster, an SVG vector, and an interactive HTML page.
package reporter
