// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Job structure and its HCL decoding.
//
// A job block is decoded in two passes. The first pass only reads the block
// label, because the label is needed to build the evaluation context. The
// second pass decodes the body against that context so attributes such as
// `"${job.name}.merge.txt"` resolve to concrete paths.
package job

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/linesort/internal/lineio"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Job is one fully resolved sort run.
type Job struct {
	Name            string
	Input           string
	MaxLines        int // 0 defers to the caller's limit
	MergeSortOutput string
	QuickSortOutput string
	Report          string // empty when no report is wanted
	SourceFile      string
}

// hclJobFile represents the top-level structure of a job file for decoding.
type hclJobFile struct {
	Jobs []*hclJob `hcl:"job,block"`
}

// hclJob holds a job block before its body is evaluated.
type hclJob struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// hclJobBody is the evaluated content of a job block.
type hclJobBody struct {
	Input           string  `hcl:"input"`
	MaxLines        *int    `hcl:"max_lines,optional"`
	MergeSortOutput string  `hcl:"mergesort_output"`
	QuickSortOutput string  `hcl:"quicksort_output"`
	Report          *string `hcl:"report,optional"`
}

// functions available inside job bodies.
var functions = map[string]function.Function{
	"format":     stdlib.FormatFunc,
	"join":       stdlib.JoinFunc,
	"lower":      stdlib.LowerFunc,
	"trimsuffix": stdlib.TrimSuffixFunc,
	"upper":      stdlib.UpperFunc,
}

func newEvalContext(name string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"job": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(name),
			}),
		},
		Functions: functions,
	}
}

// newJobFromHCL evaluates a parsed job block declared in filePath.
func newJobFromHCL(parsed *hclJob, filePath string) (*Job, hcl.Diagnostics) {
	var body hclJobBody
	diags := gohcl.DecodeBody(parsed.Body, newEvalContext(parsed.Name), &body)
	if diags.HasErrors() {
		return nil, diags
	}

	baseDir := filepath.Dir(filePath)
	job := &Job{
		Name:            parsed.Name,
		Input:           resolvePath(baseDir, body.Input),
		MergeSortOutput: resolvePath(baseDir, body.MergeSortOutput),
		QuickSortOutput: resolvePath(baseDir, body.QuickSortOutput),
		SourceFile:      filePath,
	}
	if body.MaxLines != nil {
		if *body.MaxLines <= 0 {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid max_lines",
				Detail:   fmt.Sprintf("max_lines must be positive, got %d.", *body.MaxLines),
			}}
		}
		job.MaxLines = *body.MaxLines
	}
	if body.Report != nil && *body.Report != "" {
		job.Report = resolvePath(baseDir, *body.Report)
	}
	return job, diags
}

// Validate checks the values that HCL types alone cannot express.
func (j *Job) Validate() error {
	switch {
	case j.Input == "":
		return fmt.Errorf("%w %q: input must not be empty", ErrInvalidJob, j.Name)
	case j.MergeSortOutput == "" || j.QuickSortOutput == "":
		return fmt.Errorf("%w %q: both outputs must be set", ErrInvalidJob, j.Name)
	case j.MergeSortOutput == j.QuickSortOutput:
		return fmt.Errorf("%w %q: mergesort_output and quicksort_output must differ", ErrInvalidJob, j.Name)
	case j.MaxLines < 0:
		return fmt.Errorf("%w %q: max_lines must not be negative, got %d", ErrInvalidJob, j.Name, j.MaxLines)
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || p == lineio.StdinPath || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
