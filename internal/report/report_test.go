package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/linesort/internal/linesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	a := Digest(linesort.Collection{"apple", "Banana"})
	assert.Len(t, a, 16)
	assert.Equal(t, a, Digest(linesort.Collection{"apple", "Banana"}))
	assert.NotEqual(t, a, Digest(linesort.Collection{"Banana", "apple"}), "order matters")
	assert.NotEqual(t, a, Digest(linesort.Collection{"apple\nBanana"}), "line boundaries are part of the digest")
	assert.NotEqual(t, Digest(nil), Digest(linesort.Collection{""}), "an empty line differs from no lines")
}

func TestNewResult(t *testing.T) {
	r := NewResult(linesort.MergeSortName, linesort.Collection{"a", "b"}, 1500*time.Microsecond, "out.txt")

	assert.Equal(t, 2, r.Lines)
	assert.Equal(t, int64(1), r.DurationMS, "durations are truncated to whole milliseconds")
	assert.Equal(t, "Mergesort duration: 1 milliseconds", r.String())
	assert.Equal(t, "Quicksort duration: 0 milliseconds", Result{Algorithm: linesort.QuickSortName}.String())
}

func TestRun_Finish(t *testing.T) {
	run := &Run{Results: []Result{{Digest: "x"}, {Digest: "x"}}}
	run.Finish()
	assert.True(t, run.Agree)

	run.Results[1].Digest = "y"
	run.Finish()
	assert.False(t, run.Agree)

	empty := &Run{}
	empty.Finish()
	assert.True(t, empty.Agree)
}

func TestWriteRead(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "report.json")
	sorted := linesort.Collection{"apple", "Banana", "Cherry"}
	run := &Run{
		Job:       "fruit",
		Input:     "fruit.txt",
		Lines:     3,
		StartedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Results: []Result{
			NewResult(linesort.MergeSortName, sorted, 12*time.Millisecond, "m.txt"),
			NewResult(linesort.QuickSortName, sorted, 7*time.Millisecond, "q.txt"),
		},
	}
	run.Finish()

	// --- Act ---
	require.NoError(t, Write(path, run))
	got, err := Read(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "fruit", got.Job)
	assert.True(t, got.Agree)
	require.Len(t, got.Results, 2)
	assert.Equal(t, int64(12), got.Results[0].DurationMS)
	assert.Equal(t, run.Results[1].Digest, got.Results[1].Digest)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
}

func TestMarshal_FieldNames(t *testing.T) {
	data, err := Marshal(&Run{Job: "j", Results: []Result{{Algorithm: "quicksort", DurationMS: 3}}})
	require.NoError(t, err)

	out := string(data)
	for _, field := range []string{`"job"`, `"truncated"`, `"results"`, `"duration_ms": 3`, `"agree"`} {
		assert.True(t, strings.Contains(out, field), "missing %s in %s", field, out)
	}
	assert.NotContains(t, out, "Duration\"")
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
}
