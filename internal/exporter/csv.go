package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
)

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// writeCSV writes a CSV file, creating the parent directory on demand and
// truncating any prior file. No versioning, no conflict detection.
func writeCSV(path string, options WriteOptions) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewStorageError("failed to write header row", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush CSV", err)
	}

	slog.Debug("CSV file written",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	return nil
}

// readCSV reads a CSV file, tolerating an optional UTF-8 BOM, and returns
// the header row and data rows separately.
func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("CSV file %s", path)).
			WithContext("cause", err.Error())
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}
	if len(rows) == 0 {
		return nil, nil, apperrors.NewParsingError(fmt.Sprintf("%s has no header row", path), nil)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	return header, rows[1:], nil
}

func trimBOM(s string) string {
	const bom = "\xEF\xBB\xBF"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
