package lineio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/linesort/internal/linesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left") }

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer

	err := WriteLines(&buf, linesort.Collection{"apple", "Banana", ""})

	require.NoError(t, err)
	assert.Equal(t, "apple"+LineTerminator+"Banana"+LineTerminator+LineTerminator, buf.String())
}

func TestWriteLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteLines_WriterFailure(t *testing.T) {
	err := WriteLines(failingWriter{}, linesort.Collection{"a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))
}
