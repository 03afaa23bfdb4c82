package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/exporter"
	"github.com/bonnefeteyvette/superstore/internal/reporter"
)

// Runner executes pipeline steps strictly in order, failing fast on the
// first error. Artifacts written by earlier steps stay on disk.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a pipeline runner
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run validates and executes each step in order against a fresh state.
// The state is returned even on failure so callers can inspect partial
// progress.
func (r *Runner) Run(ctx context.Context, steps []Step) (*State, error) {
	state := &State{}

	for _, step := range steps {
		stepState := NewStepState(step.ID(), step.Name())

		if err := step.Validate(state); err != nil {
			stepState.Fail(err)
			r.logger.ErrorContext(ctx, "step validation failed",
				slog.String("step", step.ID()),
				slog.String("error", err.Error()))
			return state, fmt.Errorf("validate step %s: %w", step.ID(), err)
		}

		stepState.Start()
		r.logger.InfoContext(ctx, "step started",
			slog.String("step", step.ID()),
			slog.String("name", step.Name()))

		if err := step.Execute(ctx, state); err != nil {
			stepState.Fail(err)
			r.logger.ErrorContext(ctx, "step failed",
				slog.String("step", step.ID()),
				slog.Duration("duration", stepState.Duration()),
				slog.String("error", err.Error()))
			return state, fmt.Errorf("execute step %s: %w", step.ID(), err)
		}

		stepState.Complete()
		r.logger.InfoContext(ctx, "step completed",
			slog.String("step", step.ID()),
			slog.Duration("duration", stepState.Duration()))
	}

	return state, nil
}

// DefaultSteps wires the standard load → clean → aggregate → report
// sequence for the given path layout.
func DefaultSteps(paths *config.Paths, cfg *config.Config, logger *slog.Logger) []Step {
	snapshot := exporter.NewSnapshot(paths, logger)
	return []Step{
		NewLoadStep(paths, cfg.Pipeline.StrictKeys, logger),
		NewCleanStep(snapshot, logger),
		NewAggregateStep(snapshot, logger),
		NewReportStep(reporter.New(paths, logger), logger),
	}
}
