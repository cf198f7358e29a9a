package lineio

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/specialistvlad/linesort/internal/linesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		opts          ReadOptions
		wantLines     linesort.Collection
		wantTruncated bool
	}{
		{
			name:      "empty input",
			input:     "",
			wantLines: linesort.Collection{},
		},
		{
			name:      "trailing newline",
			input:     "b\na\n",
			wantLines: linesort.Collection{"b", "a"},
		},
		{
			name:      "no trailing newline",
			input:     "b\na",
			wantLines: linesort.Collection{"b", "a"},
		},
		{
			name:      "crlf line endings",
			input:     "Banana\r\napple\r\n",
			wantLines: linesort.Collection{"Banana", "apple"},
		},
		{
			name:      "blank lines are lines",
			input:     "a\n\nb\n",
			wantLines: linesort.Collection{"a", "", "b"},
		},
		{
			name:          "truncated at maximum",
			input:         "a\nb\nc\n",
			opts:          ReadOptions{MaxLines: 2},
			wantLines:     linesort.Collection{"a", "b"},
			wantTruncated: true,
		},
		{
			name:      "exactly at maximum is not truncated",
			input:     "a\nb\n",
			opts:      ReadOptions{MaxLines: 2},
			wantLines: linesort.Collection{"a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, truncated, err := ReadLines(strings.NewReader(tc.input), tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLines, lines)
			assert.Equal(t, tc.wantTruncated, truncated)
		})
	}
}

func TestReadLines_TruncatedLinesNeverSorted(t *testing.T) {
	lines, truncated, err := ReadLines(strings.NewReader("a\nb\nc\n"), ReadOptions{MaxLines: 2})
	require.NoError(t, err)
	require.True(t, truncated)

	linesort.QuickSortAll(lines)
	assert.NotContains(t, lines, "c")
}

func TestReadLines_LineTooLong(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 1024) + "\n"

	_, _, err := ReadLines(strings.NewReader(input), ReadOptions{MaxLineBytes: 64})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLineTooLong), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadLines_ReaderFailure(t *testing.T) {
	_, _, err := ReadLines(iotest.ErrReader(errors.New("disk on fire")), ReadOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.Contains(t, err.Error(), "disk on fire")
}
