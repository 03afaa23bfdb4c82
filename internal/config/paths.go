package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the pipeline:
// every stage receives an explicit *Paths instead of assuming a working
// directory.
type Paths struct {
	BaseDir      string
	DataDir      string
	RawDir       string
	ProcessedDir string
	ResultsDir   string
	DocsDir      string
	LogsDir      string

	// Well-known pipeline files
	WorkbookFile    string
	SnapshotCSV     string
	SummaryStatsCSV string
}

// GetPaths returns the application paths relative to the executable location.
// Paths are never resolved against the process current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return GetPathsFrom(filepath.Dir(exe)), nil
}

// GetPathsFrom builds the path layout under an explicit base directory.
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   ├── raw/         (source Superstore workbook)
//	  │   └── processed/   (cleaned snapshot CSV)
//	  ├── results/         (charts and summary statistics)
//	  ├── docs/            (documentation)
//	  └── logs/            (application logs)
func GetPathsFrom(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	rawDir := filepath.Join(dataDir, "raw")
	processedDir := filepath.Join(dataDir, "processed")
	resultsDir := filepath.Join(baseDir, "results")

	return &Paths{
		BaseDir:      baseDir,
		DataDir:      dataDir,
		RawDir:       rawDir,
		ProcessedDir: processedDir,
		ResultsDir:   resultsDir,
		DocsDir:      filepath.Join(baseDir, "docs"),
		LogsDir:      filepath.Join(baseDir, "logs"),

		WorkbookFile:    filepath.Join(rawDir, "Superstore.xlsx"),
		SnapshotCSV:     filepath.Join(processedDir, "superstore_clean.csv"),
		SummaryStatsCSV: filepath.Join(resultsDir, "summary_statistics.csv"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.ProcessedDir,
		p.ResultsDir,
		p.DocsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetRawPath returns the path for a raw input file
func (p *Paths) GetRawPath(filename string) string {
	return filepath.Join(p.RawDir, filename)
}

// GetProcessedPath returns the path for a processed output file
func (p *Paths) GetProcessedPath(filename string) string {
	return filepath.Join(p.ProcessedDir, filename)
}

// GetResultPath returns the path for a results artifact
func (p *Paths) GetResultPath(filename string) string {
	return filepath.Join(p.ResultsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
