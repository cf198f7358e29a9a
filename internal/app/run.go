package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/linesort/internal/ctxlog"
	"github.com/specialistvlad/linesort/internal/job"
	"github.com/specialistvlad/linesort/internal/lineio"
	"github.com/specialistvlad/linesort/internal/linesort"
	"github.com/specialistvlad/linesort/internal/report"
)

// ErrUnsorted is returned in verify mode when an engine leaves its
// collection out of order.
var ErrUnsorted = errors.New("engine produced unsorted output")

// pass is one engine's share of a job.
type pass struct {
	alg     linesort.Algorithm
	path    string
	out     io.WriteCloser
	lines   linesort.Collection
	elapsed time.Duration
}

// Run executes every configured job in order and stops at the first failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "jobs", len(a.jobs))

	for _, j := range a.jobs {
		if err := a.runJob(ctx, j); err != nil {
			return fmt.Errorf("job %q failed: %w", j.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runJob(ctx context.Context, j *job.Job) (err error) {
	ctx, logger := ctxlog.With(ctx, "job", j.Name)
	maxLines := j.MaxLines
	if maxLines == 0 {
		maxLines = a.config.MaxLines
	}
	logger.Info("Starting job.", "input", j.Input, "max_lines", maxLines)
	run := &report.Run{Job: j.Name, Input: j.Input, StartedAt: time.Now().UTC()}

	in, err := lineio.OpenInput(j.Input, a.inR)
	if err != nil {
		fmt.Fprint(a.outW, "Error opening input file.\n\n")
		return err
	}
	defer in.Close()
	fmt.Fprint(a.outW, "Input File opened successfully.\n\n")

	passes, err := a.createOutputs(j)
	defer func() {
		for _, p := range passes {
			if p.out == nil {
				continue
			}
			if cerr := p.out.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("%w: closing %s: %w", lineio.ErrWrite, p.path, cerr)
			}
		}
	}()
	if err != nil {
		return err
	}

	lines, truncated, err := lineio.ReadLines(in, lineio.ReadOptions{
		MaxLines:     maxLines,
		MaxLineBytes: a.config.MaxLineBytes,
	})
	if err != nil {
		return err
	}
	run.Lines, run.Truncated = len(lines), truncated
	if truncated {
		logger.Warn("Input has more lines than the maximum; the rest were ignored.", "max_lines", maxLines)
	}
	logger.Info("Input read.", "lines", len(lines))

	// The first engine sorts the collection as read; the others get copies
	// taken before any sorting starts.
	for i, p := range passes {
		if i == 0 {
			p.lines = lines
			continue
		}
		p.lines = lines.Clone()
	}

	if err := a.sortAll(ctx, passes); err != nil {
		return err
	}
	for _, p := range passes {
		result := report.NewResult(p.alg.Name, p.lines, p.elapsed, p.path)
		fmt.Fprintln(a.outW, result)
		run.Results = append(run.Results, result)
	}

	for _, p := range passes {
		if err := lineio.WriteLines(p.out, p.lines); err != nil {
			return fmt.Errorf("writing %s output %s: %w", p.alg.Name, p.path, err)
		}
		p.lines = nil
	}
	run.Finish()
	logger.Info("Job finished.", "agree", run.Agree)

	if j.Report != "" {
		if err := report.Write(j.Report, run); err != nil {
			return err
		}
		logger.Debug("Report written.", "path", j.Report)
	}
	return nil
}

// createOutputs opens one output per engine. On failure the passes opened so
// far are still returned so the caller can close them.
func (a *App) createOutputs(j *job.Job) ([]*pass, error) {
	paths := map[string]string{
		linesort.MergeSortName: j.MergeSortOutput,
		linesort.QuickSortName: j.QuickSortOutput,
	}

	passes := make([]*pass, 0, len(a.algorithms))
	for _, alg := range a.algorithms {
		out, err := lineio.CreateOutput(paths[alg.Name])
		if err != nil {
			fmt.Fprintf(a.outW, "Error opening %s output file.\n\n", report.DisplayName(alg.Name))
			return passes, err
		}
		fmt.Fprintf(a.outW, "%s output File opened successfully.\n\n", report.DisplayName(alg.Name))
		passes = append(passes, &pass{alg: alg, path: paths[alg.Name], out: out})
	}
	return passes, nil
}

// sortAll runs every engine on its own copy of the input, one after the
// other, or all at once when Parallel is set. The copies never alias.
func (a *App) sortAll(ctx context.Context, passes []*pass) error {
	logger := ctxlog.FromContext(ctx)

	if !a.config.Parallel {
		for _, p := range passes {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := a.sortOne(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}

	logger.Debug("Sorting in parallel.", "engines", len(passes))
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range passes {
		g.Go(func() error {
			return a.sortOne(gctx, p)
		})
	}
	return g.Wait()
}

func (a *App) sortOne(ctx context.Context, p *pass) error {
	logger := ctxlog.FromContext(ctx).With("algorithm", p.alg.Name)
	logger.Debug("Sort started.", "lines", len(p.lines))

	start := time.Now()
	p.alg.Sort(p.lines)
	p.elapsed = time.Since(start)

	logger.Info("Sort finished.", "duration_ms", p.elapsed.Milliseconds())
	if a.config.Verify && !linesort.IsSorted(p.lines) {
		return fmt.Errorf("%w: %s", ErrUnsorted, p.alg.Name)
	}
	return nil
}
