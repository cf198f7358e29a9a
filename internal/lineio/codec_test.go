package lineio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/linesort/internal/linesort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecForPath(t *testing.T) {
	assert.Equal(t, CodecNone, CodecForPath("words.txt"))
	assert.Equal(t, CodecNone, CodecForPath("words"))
	assert.Equal(t, CodecGzip, CodecForPath("words.txt.gz"))
	assert.Equal(t, CodecGzip, CodecForPath("WORDS.GZ"))
	assert.Equal(t, CodecZstd, CodecForPath("words.zst"))
}

func TestCreateOutputOpenInput_RoundTrip(t *testing.T) {
	want := linesort.Collection{"apple", "Banana", "Cherry"}

	for _, name := range []string{"plain.txt", "packed.txt.gz", "packed.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			out, err := CreateOutput(path)
			require.NoError(t, err)
			require.NoError(t, WriteLines(out, want))
			require.NoError(t, out.Close())

			in, err := OpenInput(path, nil)
			require.NoError(t, err)
			defer in.Close()

			got, truncated, err := ReadLines(in, ReadOptions{})
			require.NoError(t, err)
			assert.False(t, truncated)
			assert.Equal(t, want, got)
		})
	}
}

func TestCreateOutput_CompressesOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gz")
	out, err := CreateOutput(path)
	require.NoError(t, err)
	require.NoError(t, WriteLines(out, linesort.Collection{"hello"}))
	require.NoError(t, out.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic expected")
}

func TestOpenInput_Missing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenInput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenInput_StdinPathReadsGivenReader(t *testing.T) {
	stdin := strings.NewReader("banana\nApple\n")

	in, err := OpenInput(StdinPath, stdin)
	require.NoError(t, err)
	raw, err := io.ReadAll(in)
	require.NoError(t, err)
	require.NoError(t, in.Close())

	assert.Equal(t, "banana\nApple\n", string(raw))
}

func TestOpenInput_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o644))

	_, err := OpenInput(path, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenInput))
}

func TestCreateOutput_BadDirectory(t *testing.T) {
	_, err := CreateOutput(filepath.Join(t.TempDir(), "missing", "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCreateOutput))
}

func TestStackedCloser_ClosesInnermostFirst(t *testing.T) {
	var order []string
	var s stackedCloser
	s.push(func() error { order = append(order, "file"); return nil })
	s.push(func() error { order = append(order, "codec"); return io.ErrShortWrite })

	err := s.Close()

	assert.Equal(t, []string{"codec", "file"}, order)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.NoError(t, s.Close(), "second close is a no-op")
}
