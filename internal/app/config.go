package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/linesort/internal/lineio"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Single run described on the command line.
	InputPath       string
	MergeOutputPath string
	QuickOutputPath string
	ReportPath      string

	// Runs described in HCL job files. When JobPath is set the paths above
	// are ignored.
	JobPath string
	JobName string

	MaxLines     int
	MaxLineBytes int
	Parallel     bool
	Verify       bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.JobPath == "" {
		if cfg.InputPath == "" {
			return nil, errors.New("InputPath is a required configuration field and cannot be empty")
		}
		if cfg.MergeOutputPath == "" || cfg.QuickOutputPath == "" {
			return nil, errors.New("both MergeOutputPath and QuickOutputPath are required")
		}
		if cfg.MergeOutputPath == cfg.QuickOutputPath {
			return nil, fmt.Errorf("mergesort and quicksort outputs must differ, both are %q", cfg.MergeOutputPath)
		}
	}

	if cfg.MaxLines < 0 {
		return nil, fmt.Errorf("MaxLines must not be negative, got %d", cfg.MaxLines)
	}
	if cfg.MaxLines == 0 {
		cfg.MaxLines = lineio.DefaultMaxLines
	}
	if cfg.MaxLineBytes < 0 {
		return nil, fmt.Errorf("MaxLineBytes must not be negative, got %d", cfg.MaxLineBytes)
	}
	if cfg.MaxLineBytes == 0 {
		cfg.MaxLineBytes = lineio.DefaultMaxLineBytes
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
