package pipeline

import (
	"github.com/bonnefeteyvette/superstore/internal/dataset"
	"github.com/bonnefeteyvette/superstore/internal/stats"
)

// State is the single in-memory table (and what is derived from it)
// handed forward through the pipeline. Execution is strictly sequential,
// so steps own the state exclusively while they run.
type State struct {
	// Workbook holds the three source tables after the load step
	Workbook *dataset.Workbook

	// Transactions is the denormalized table: joined after load,
	// imputed in place by the clean step, read-only afterwards
	Transactions []dataset.Transaction

	// CleanReport is the cleaning audit (fills, absent values, duplicates)
	CleanReport dataset.CleanReport

	// Aggregates holds every grouped table the report step renders
	Aggregates *stats.Bundle

	// Artifacts lists every report file written
	Artifacts []string
}
