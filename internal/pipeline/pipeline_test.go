package pipeline

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/dataset"
	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
	"github.com/bonnefeteyvette/superstore/internal/exporter"
	"github.com/bonnefeteyvette/superstore/internal/shared/testutil"
)

func setupPipeline(t *testing.T) (*config.Paths, *config.Config) {
	t.Helper()

	cfg := config.Default()
	paths := config.GetPathsFrom(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	return paths, cfg
}

func writeFixtureWorkbook(t *testing.T, paths *config.Paths) {
	t.Helper()

	orders := [][]interface{}{
		testutil.OrderRow(1, "CA-2016-152156", "2016-11-08", "South", "Furniture", "Bookcases", "Second Class", "Consumer", 261.96),
		testutil.OrderRow(2, "CA-2016-152156", "2016-11-08", "South", "Furniture", "Chairs", "Second Class", "Consumer", 731.94),
		testutil.OrderRow(3, "CA-2017-138688", "2017-06-12", "West", "Office Supplies", "Labels", "Second Class", "Corporate", 14.62),
		testutil.OrderRow(4, "US-2015-108966", "2015-10-11", "East", "Technology", "Phones", "Standard Class", "Consumer", 957.58),
	}
	returns := [][]interface{}{
		{"Yes", "CA-2017-138688"},
	}
	people := [][]interface{}{
		{"Cassandra Brandow", "South"},
		{"Anna Andreadi", "West"},
	}
	testutil.WriteWorkbook(t, paths.WorkbookFile, orders, returns, people)
}

func TestRunner_EndToEnd(t *testing.T) {
	paths, cfg := setupPipeline(t)
	writeFixtureWorkbook(t, paths)

	runner := NewRunner(nil)
	state, err := runner.Run(context.Background(), DefaultSteps(paths, cfg, nil))
	require.NoError(t, err)

	// Every orders row survives the joins
	require.Len(t, state.Transactions, 4)

	// Returned imputed with the sentinel, never dropped
	assert.Equal(t, 3, state.CleanReport.Filled)
	assert.Zero(t, state.CleanReport.Duplicates)
	for _, tx := range state.Transactions {
		if tx.OrderID == "CA-2017-138688" {
			assert.Equal(t, "Yes", tx.Returned)
		} else {
			assert.Equal(t, dataset.ReturnedSentinel, tx.Returned)
		}
	}

	// Snapshot round-trips through the exporter
	snapshot := exporter.NewSnapshot(paths, nil)
	reloaded, err := snapshot.Load()
	require.NoError(t, err)
	assert.Equal(t, state.Transactions, reloaded)

	// Summary statistics persisted alongside the snapshot
	summary, err := os.ReadFile(paths.SummaryStatsCSV)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Sales")

	// Each of the six charts in three forms
	assert.Len(t, state.Artifacts, 18)
	for _, artifact := range state.Artifacts {
		info, statErr := os.Stat(artifact)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	}

	require.NotNil(t, state.Aggregates)
	assert.Equal(t, "Furniture", state.Aggregates.SalesByCategory[0].Key)
}

func TestRunner_MissingWorkbookFailsFast(t *testing.T) {
	paths, cfg := setupPipeline(t)

	runner := NewRunner(nil)
	state, err := runner.Run(context.Background(), DefaultSteps(paths, cfg, nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.True(t, strings.Contains(err.Error(), "validate step load"))

	// Nothing was written
	assert.NoFileExists(t, paths.SnapshotCSV)
	assert.Empty(t, state.Artifacts)
}

func TestRunner_StrictKeysDuplicateRegion(t *testing.T) {
	paths, cfg := setupPipeline(t)

	orders := [][]interface{}{
		testutil.OrderRow(1, "CA-2016-152156", "2016-11-08", "South", "Furniture", "Bookcases", "Second Class", "Consumer", 261.96),
	}
	people := [][]interface{}{
		{"Cassandra Brandow", "South"},
		{"Someone Else", "South"},
	}
	testutil.WriteWorkbook(t, paths.WorkbookFile, orders, nil, people)

	runner := NewRunner(nil)
	_, err := runner.Run(context.Background(), DefaultSteps(paths, cfg, nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestRunner_LenientKeysKeepLast(t *testing.T) {
	paths, cfg := setupPipeline(t)
	cfg.Pipeline.StrictKeys = false

	orders := [][]interface{}{
		testutil.OrderRow(1, "CA-2016-152156", "2016-11-08", "South", "Furniture", "Bookcases", "Second Class", "Consumer", 261.96),
	}
	people := [][]interface{}{
		{"Cassandra Brandow", "South"},
		{"Someone Else", "South"},
	}
	testutil.WriteWorkbook(t, paths.WorkbookFile, orders, nil, people)

	runner := NewRunner(nil)
	state, err := runner.Run(context.Background(), DefaultSteps(paths, cfg, nil))
	require.NoError(t, err)
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, "Someone Else", state.Transactions[0].Person)
}

func TestStepState_Lifecycle(t *testing.T) {
	state := NewStepState("load", "Load & Join")
	assert.Equal(t, StepStatusPending, state.Status)

	state.Start()
	assert.Equal(t, StepStatusActive, state.Status)

	state.Complete()
	assert.Equal(t, StepStatusCompleted, state.Status)
	assert.GreaterOrEqual(t, state.Duration(), time.Duration(0))

	failed := NewStepState("clean", "Clean & Persist")
	failed.Start()
	failed.Fail(assert.AnError)
	assert.Equal(t, StepStatusFailed, failed.Status)
	assert.Equal(t, assert.AnError, failed.Error)
}
