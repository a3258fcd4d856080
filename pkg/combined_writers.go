package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes the same bytes to stdout and the rotating log file.
type CombinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter skips nil writers.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{writers: make([]io.Writer, 0, len(writers))}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write keeps going past failing writers. It reports len(p) as soon as one
// writer took all of p, so a broken stdout does not stop file logging, and
// returns every failure combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		delivered bool
	)
	for i, w := range cw.writers {
		written, err := w.Write(p)
		if err == nil && written < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("writer %d: %w", i, err))
			continue
		}
		delivered = true
	}

	if !delivered {
		return 0, errs
	}
	return len(p), errs
}
