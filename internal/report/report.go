// Package report records how each sorting engine did on a job: how long it
// took, how many lines it sorted and a digest of what it wrote. A run can be
// saved as JSON for later comparison.
package report

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"

	"github.com/specialistvlad/linesort/internal/linesort"
)

// Result describes one engine's pass over a job.
type Result struct {
	Algorithm  string        `json:"algorithm"`
	Lines      int           `json:"lines"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	OutputPath string        `json:"output"`
	Digest     string        `json:"digest"`
}

// NewResult fills in the derived fields for a finished sort.
func NewResult(algorithm string, sorted linesort.Collection, elapsed time.Duration, outputPath string) Result {
	return Result{
		Algorithm:  algorithm,
		Lines:      len(sorted),
		Duration:   elapsed,
		DurationMS: elapsed.Milliseconds(),
		OutputPath: outputPath,
		Digest:     Digest(sorted),
	}
}

// String renders the console line for a result.
func (r Result) String() string {
	return DurationLine(r.Algorithm, r.Duration)
}

// DurationLine is the console line reporting how long an engine took, in
// whole milliseconds.
func DurationLine(algorithm string, elapsed time.Duration) string {
	return fmt.Sprintf("%s duration: %d milliseconds", DisplayName(algorithm), elapsed.Milliseconds())
}

// DisplayName is the capitalized engine name used in console messages.
func DisplayName(algorithm string) string {
	switch algorithm {
	case linesort.MergeSortName:
		return "Mergesort"
	case linesort.QuickSortName:
		return "Quicksort"
	default:
		return algorithm
	}
}

// Run is the report for one job.
type Run struct {
	Job       string    `json:"job"`
	Input     string    `json:"input"`
	Lines     int       `json:"lines"`
	Truncated bool      `json:"truncated"`
	StartedAt time.Time `json:"started_at"`
	Results   []Result  `json:"results"`
	Agree     bool      `json:"agree"`
}

// Finish sets Agree from the collected results. Engines agree when every
// digest matches; with fewer than two results there is nothing to disagree.
func (r *Run) Finish() {
	r.Agree = true
	for i := 1; i < len(r.Results); i++ {
		if r.Results[i].Digest != r.Results[0].Digest {
			r.Agree = false
			return
		}
	}
}

// Digest hashes the lines in order with xxh3 and returns 16 hex characters.
// Every line is length-prefixed, so line boundaries are part of the digest.
func Digest(lines linesort.Collection) string {
	h := xxh3.New()
	var prefix [binary.MaxVarintLen64]byte
	for _, line := range lines {
		n := binary.PutUvarint(prefix[:], uint64(len(line)))
		h.Write(prefix[:n])
		h.WriteString(line)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Marshal encodes the run as indented JSON.
func Marshal(run *Run) ([]byte, error) {
	data, err := gojson.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// Write saves the run as JSON at path.
func Write(path string, run *Run) error {
	data, err := Marshal(run)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// Read loads a run previously saved with Write.
func Read(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var run Run
	if err := gojson.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return &run, nil
}
