package lineio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinPath selects standard input in OpenInput.
const StdinPath = "-"

// Codec identifies how a file's bytes are encoded on disk.
type Codec string

const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
)

// CodecForPath picks the codec from the file extension.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CodecGzip
	case ".zst":
		return CodecZstd
	default:
		return CodecNone
	}
}

// stackedCloser closes its layers innermost first, so codec frames are
// flushed before the file underneath them is closed.
type stackedCloser struct {
	closers []func() error
}

func (s *stackedCloser) push(fn func() error) { s.closers = append(s.closers, fn) }

func (s *stackedCloser) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

type inputFile struct {
	io.Reader
	stackedCloser
}

type outputFile struct {
	io.Writer
	stackedCloser
}

// OpenInput opens path for reading, decoding gzip or zstd content when the
// extension asks for it. StdinPath reads stdin uncompressed, falling back to
// os.Stdin when stdin is nil. Callers that have already consumed part of
// standard input must pass the reader they consumed it through.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpenInput, path, err)
	}
	in := &inputFile{Reader: f}
	in.push(f.Close)

	switch CodecForPath(path) {
	case CodecGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("%w %q: gzip: %w", ErrOpenInput, path, err)
		}
		in.Reader = gz
		in.push(gz.Close)
	case CodecZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("%w %q: zstd: %w", ErrOpenInput, path, err)
		}
		in.Reader = dec
		in.push(func() error {
			dec.Close()
			return nil
		})
	}
	return in, nil
}

// CreateOutput creates or truncates path for writing, encoding gzip or zstd
// content when the extension asks for it. The returned writer must be closed
// for compressed output to be complete.
func CreateOutput(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCreateOutput, path, err)
	}
	out := &outputFile{Writer: f}
	out.push(f.Close)

	switch CodecForPath(path) {
	case CodecGzip:
		gz := gzip.NewWriter(f)
		out.Writer = gz
		out.push(gz.Close)
	case CodecZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("%w %q: zstd: %w", ErrCreateOutput, path, err)
		}
		out.Writer = enc
		out.push(enc.Close)
	}
	return out, nil
}
