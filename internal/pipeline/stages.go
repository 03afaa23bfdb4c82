package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/dataset"
	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
	"github.com/bonnefeteyvette/superstore/internal/exporter"
	"github.com/bonnefeteyvette/superstore/internal/reporter"
	"github.com/bonnefeteyvette/superstore/internal/stats"
)

// LoadStep reads the source workbook and joins its three tables
type LoadStep struct {
	paths  *config.Paths
	opts   dataset.JoinOptions
	logger *slog.Logger
}

// NewLoadStep creates the load stage
func NewLoadStep(paths *config.Paths, strictKeys bool, logger *slog.Logger) *LoadStep {
	return &LoadStep{
		paths:  paths,
		opts:   dataset.JoinOptions{StrictKeys: strictKeys},
		logger: logger,
	}
}

func (s *LoadStep) ID() string   { return "load" }
func (s *LoadStep) Name() string { return "Load & Join" }

// Validate fails fast when the source workbook is absent, before any
// output is produced.
func (s *LoadStep) Validate(state *State) error {
	if !config.FileExists(s.paths.WorkbookFile) {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("source workbook %s", s.paths.WorkbookFile))
	}
	return nil
}

func (s *LoadStep) Execute(ctx context.Context, state *State) error {
	workbook, err := dataset.ParseWorkbook(s.paths.WorkbookFile, s.logger)
	if err != nil {
		return err
	}

	transactions, err := dataset.Denormalize(workbook, s.opts, s.logger)
	if err != nil {
		return err
	}

	state.Workbook = workbook
	state.Transactions = transactions
	return nil
}

// CleanStep imputes the returned column, audits the table and persists
// the cleaned snapshot
type CleanStep struct {
	snapshot *exporter.Snapshot
	logger   *slog.Logger
}

// NewCleanStep creates the clean stage
func NewCleanStep(snapshot *exporter.Snapshot, logger *slog.Logger) *CleanStep {
	return &CleanStep{snapshot: snapshot, logger: logger}
}

func (s *CleanStep) ID() string   { return "clean" }
func (s *CleanStep) Name() string { return "Clean & Persist" }

func (s *CleanStep) Validate(state *State) error {
	if len(state.Transactions) == 0 {
		return apperrors.NewValidationError("clean step requires joined transactions")
	}
	return nil
}

func (s *CleanStep) Execute(ctx context.Context, state *State) error {
	state.CleanReport = dataset.Clean(state.Transactions, s.logger)
	return s.snapshot.Write(state.Transactions)
}

// AggregateStep computes every grouped table and the descriptive summary
type AggregateStep struct {
	snapshot *exporter.Snapshot
	logger   *slog.Logger
}

// NewAggregateStep creates the aggregate stage
func NewAggregateStep(snapshot *exporter.Snapshot, logger *slog.Logger) *AggregateStep {
	return &AggregateStep{snapshot: snapshot, logger: logger}
}

func (s *AggregateStep) ID() string   { return "aggregate" }
func (s *AggregateStep) Name() string { return "Aggregate" }

func (s *AggregateStep) Validate(state *State) error {
	if len(state.Transactions) == 0 {
		return apperrors.NewValidationError("aggregate step requires cleaned transactions")
	}
	return nil
}

func (s *AggregateStep) Execute(ctx context.Context, state *State) error {
	bundle, err := stats.Compute(state.Transactions, s.logger)
	if err != nil {
		return err
	}
	state.Aggregates = bundle
	return s.snapshot.WriteSummaryStats(bundle.Summary)
}

// ReportStep renders the fixed chart set from the aggregation bundle
type ReportStep struct {
	reporter *reporter.Reporter
	logger   *slog.Logger
}

// NewReportStep creates the report stage
func NewReportStep(rep *reporter.Reporter, logger *slog.Logger) *ReportStep {
	return &ReportStep{reporter: rep, logger: logger}
}

func (s *ReportStep) ID() string   { return "report" }
func (s *ReportStep) Name() string { return "Render Reports" }

func (s *ReportStep) Validate(state *State) error {
	if state.Aggregates == nil {
		return apperrors.NewValidationError("report step requires computed aggregations")
	}
	return nil
}

func (s *ReportStep) Execute(ctx context.Context, state *State) error {
	written, err := s.reporter.RenderAll(ctx, state.Aggregates)
	state.Artifacts = append(state.Artifacts, written...)
	return err
}
