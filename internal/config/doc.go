// Package config provides the application configuration and the explicit
// directory layout used by every pipeline stage.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then SUPERSTORE_* environment variables. The Paths struct is the single
// source of truth for file locations; nothing in the pipeline depends on
// the process working directory.
package config
