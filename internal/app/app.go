package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/linesort/internal/ctxlog"
	"github.com/specialistvlad/linesort/internal/job"
	"github.com/specialistvlad/linesort/internal/linesort"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR        io.Reader // read when a job's input is lineio.StdinPath
	outW       io.Writer // human-readable status lines
	logger     *slog.Logger
	config     *Config
	jobs       []*job.Job
	algorithms []linesort.Algorithm
}

// NewApp is the constructor for the main application. Input named "-" is
// read from inR, status lines go to outW and structured logs to logW. Jobs
// are loaded from Config.JobPath when set; otherwise a single job is built
// from the configured paths.
func NewApp(ctx context.Context, inR io.Reader, outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	jobs, err := resolveJobs(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Jobs resolved.", "count", len(jobs))

	return &App{
		inR:        inR,
		outW:       outW,
		logger:     logger,
		config:     cfg,
		jobs:       jobs,
		algorithms: linesort.Algorithms(),
	}, nil
}

// resolveJobs turns the configuration into the list of runs to perform.
func resolveJobs(ctx context.Context, cfg *Config) ([]*job.Job, error) {
	if cfg.JobPath == "" {
		j := &job.Job{
			Name:            "cli",
			Input:           cfg.InputPath,
			MaxLines:        cfg.MaxLines,
			MergeSortOutput: cfg.MergeOutputPath,
			QuickSortOutput: cfg.QuickOutputPath,
			Report:          cfg.ReportPath,
		}
		if err := j.Validate(); err != nil {
			return nil, err
		}
		return []*job.Job{j}, nil
	}

	all, err := job.Load(ctx, cfg.JobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return job.Select(all, cfg.JobName)
}

// Jobs returns the runs this App will perform. This is primarily for testing.
func (a *App) Jobs() []*job.Job {
	return a.jobs
}
