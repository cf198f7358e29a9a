// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package job loads sort runs described in HCL job files.
//
// A job file holds one or more `job` blocks. Each block names the input to
// read, the line cap, and where the merge sort and quicksort results go:
//
//	job "words" {
//	  input            = "words.txt"
//	  max_lines        = 1000000
//	  mergesort_output = "${job.name}.merge.txt"
//	  quicksort_output = format("%s.quick.txt", job.name)
//	  report           = "words.report.json"
//	}
//
// Attribute expressions can refer to `job.name` and call a small set of
// string functions. Relative paths are resolved against the directory of the
// file that declares the job, so a job file can be run from anywhere.
package job
