package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteLinesFile writes lines, each followed by "\n", to name inside dir and
// returns the full path.
func WriteLinesFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

// ReadLinesFile returns the lines of a plain text file, accepting either
// line terminator.
func ReadLinesFile(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// DumpOnFailure logs the captured buffers when the test fails, or always
// when LINESORT_TEST_LOGS=true.
func DumpOnFailure(t *testing.T, buffers map[string]*SafeBuffer) {
	t.Helper()
	t.Cleanup(func() {
		if !t.Failed() && os.Getenv("LINESORT_TEST_LOGS") != "true" {
			return
		}
		for name, buf := range buffers {
			t.Logf("--- %s for %s ---\n%s", name, t.Name(), buf.String())
		}
	})
}
