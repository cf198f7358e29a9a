// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package job

import "errors"

var (
	ErrNoJobs       = errors.New("no job blocks found")
	ErrDuplicateJob = errors.New("duplicate job name")
	ErrJobNotFound  = errors.New("job not found")
	ErrInvalidJob   = errors.New("invalid job")
)
