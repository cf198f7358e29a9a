package lineio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/specialistvlad/linesort/internal/linesort"
)

// WriteLines writes every line followed by LineTerminator.
func WriteLines(w io.Writer, lines linesort.Collection) error {
	bw := bufio.NewWriterSize(w, 256*1024)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if _, err := bw.WriteString(LineTerminator); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
