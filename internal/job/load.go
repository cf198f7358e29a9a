// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package job

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/linesort/internal/ctxlog"
	"github.com/specialistvlad/linesort/internal/fsutil"
)

// Load reads every job declared at path. A directory is searched recursively
// for .hcl files; a regular file is parsed whatever its extension. Jobs come
// back in file order, then declaration order.
func Load(ctx context.Context, path string) ([]*Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading jobs from path.", "path", path)

	files, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find job files in %s: %w", path, err)
	}
	logger.Debug("Discovered job files.", "count", len(files))

	parser := hclparse.NewParser()
	seen := make(map[string]string)
	var jobs []*Job
	for _, file := range files {
		fileJobs, err := loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		for _, j := range fileJobs {
			if prev, ok := seen[j.Name]; ok {
				return nil, fmt.Errorf("%w %q: declared in %s and %s", ErrDuplicateJob, j.Name, prev, j.SourceFile)
			}
			seen[j.Name] = j.SourceFile
			jobs = append(jobs, j)
		}
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoJobs, path)
	}
	logger.Debug("Jobs loaded.", "count", len(jobs))
	return jobs, nil
}

// loadFile parses a single HCL file and returns the jobs found within it.
func loadFile(parser *hclparse.Parser, filePath string) ([]*Job, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse job file %s: %w", filePath, diags)
	}

	var parsedFile hclJobFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode job file %s: %w", filePath, diags)
	}

	jobs := make([]*Job, 0, len(parsedFile.Jobs))
	for _, parsed := range parsedFile.Jobs {
		j, jobDiags := newJobFromHCL(parsed, filePath)
		if jobDiags.HasErrors() {
			return nil, fmt.Errorf("error evaluating job %q in file %s: %w", parsed.Name, filePath, jobDiags)
		}
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Select returns the job called name, or every job when name is empty.
func Select(jobs []*Job, name string) ([]*Job, error) {
	if name == "" {
		return jobs, nil
	}
	for _, j := range jobs {
		if j.Name == name {
			return []*Job{j}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrJobNotFound, name)
}
