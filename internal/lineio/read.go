package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/linesort/internal/linesort"
)

const (
	// DefaultMaxLines caps how many lines are read from one input.
	DefaultMaxLines = 1_000_000
	// DefaultMaxLineBytes is the longest single line accepted.
	DefaultMaxLineBytes = 16 * 1024 * 1024

	initialBufferSize = 64 * 1024
)

// ReadOptions controls ReadLines. Zero values select the defaults.
type ReadOptions struct {
	MaxLines     int
	MaxLineBytes int
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.MaxLines <= 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}
	return o
}

// ReadLines reads newline-delimited lines from r until EOF or until
// opts.MaxLines lines have been collected. The line terminator (and a
// carriage return before it) is stripped. truncated reports whether at least
// one more line was available past the maximum; those lines are ignored.
func ReadLines(r io.Reader, opts ReadOptions) (lines linesort.Collection, truncated bool, err error) {
	opts = opts.withDefaults()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, opts.MaxLineBytes)), opts.MaxLineBytes)

	lines = linesort.Collection{}
	for scanner.Scan() {
		if len(lines) == opts.MaxLines {
			truncated = true
			break
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, false, fmt.Errorf("%w: line %d is longer than %d bytes", ErrLineTooLong, len(lines)+1, opts.MaxLineBytes)
		}
		return nil, false, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return lines, truncated, nil
}
