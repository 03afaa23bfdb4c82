package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// PathsConfig contains file system paths configuration.
// BaseDir defaults to the executable directory when empty.
type PathsConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR"`
}

// PipelineConfig contains the dataset pipeline configuration
type PipelineConfig struct {
	// WorkbookName is the source workbook filename inside the raw directory.
	WorkbookName string `yaml:"workbook_name" envconfig:"WORKBOOK_NAME" validate:"required"`
	// SnapshotName is the cleaned snapshot filename inside the processed directory.
	SnapshotName string `yaml:"snapshot_name" envconfig:"SNAPSHOT_NAME" validate:"required"`
	// StrictKeys makes the joins fail when a right-side join key is duplicated
	// instead of silently duplicating rows.
	StrictKeys bool `yaml:"strict_keys" envconfig:"STRICT_KEYS"`
}

// Default returns the built-in configuration defaults
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/superstore.log",
		},
		Pipeline: PipelineConfig{
			WorkbookName: "Superstore.xlsx",
			SnapshotName: "superstore_clean.csv",
			StrictKeys:   true,
		},
	}
}

// Load loads configuration starting from the defaults, then an optional
// YAML config file, then environment variables. Later sources win.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("SUPERSTORE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ResolvePaths returns the Paths layout for this configuration.
// An explicit base directory wins over the executable-relative default.
func (c *Config) ResolvePaths() (*Paths, error) {
	var paths *Paths
	if c.Paths.BaseDir != "" {
		paths = GetPathsFrom(c.Paths.BaseDir)
	} else {
		p, err := GetPaths()
		if err != nil {
			return nil, err
		}
		paths = p
	}

	paths.WorkbookFile = paths.GetRawPath(c.Pipeline.WorkbookName)
	paths.SnapshotCSV = paths.GetProcessedPath(c.Pipeline.SnapshotName)
	return paths, nil
}
