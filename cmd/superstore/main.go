package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/infrastructure"
	"github.com/bonnefeteyvette/superstore/internal/pipeline"
)

func main() {
	baseDir := flag.String("base", "", "base directory for data/, results/ and logs/ (defaults to the executable directory)")
	configFile := flag.String("config", "", "optional YAML config file")
	workbook := flag.String("workbook", "", "source workbook filename inside data/raw")
	strictKeys := flag.Bool("strict-keys", true, "fail when a right-side join key is duplicated")
	flag.Parse()

	// Optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override file and environment
	if *baseDir != "" {
		cfg.Paths.BaseDir = *baseDir
	}
	if *workbook != "" {
		cfg.Pipeline.WorkbookName = *workbook
	}
	if flag.CommandLine.Changed("strict-keys") {
		cfg.Pipeline.StrictKeys = *strictKeys
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.Output != "console" {
		cfg.Logging.FilePath = paths.GetLogPath("superstore.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	logger.InfoContext(ctx, "starting Superstore pipeline",
		slog.String("workbook", paths.WorkbookFile),
		slog.String("snapshot", paths.SnapshotCSV),
		slog.String("results_dir", paths.ResultsDir),
		slog.Bool("strict_keys", cfg.Pipeline.StrictKeys))

	runner := pipeline.NewRunner(logger)
	state, err := runner.Run(ctx, pipeline.DefaultSteps(paths, cfg, logger))
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline complete",
		slog.Int("rows", len(state.Transactions)),
		slog.Int("returned_filled", state.CleanReport.Filled),
		slog.Int("duplicate_rows", state.CleanReport.Duplicates),
		slog.Int("artifacts", len(state.Artifacts)))

	infrastructure.CloseLogFile()
}
