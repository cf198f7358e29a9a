package lineio

import "errors"

// Sentinel errors. Failures returned by this package wrap one of these so the
// caller can tell which side of the pipeline broke with errors.Is.
var (
	ErrOpenInput    = errors.New("cannot open input")
	ErrCreateOutput = errors.New("cannot create output")
	ErrLineTooLong  = errors.New("line exceeds maximum length")
	ErrRead         = errors.New("cannot read input")
	ErrWrite        = errors.New("cannot write output")
)
