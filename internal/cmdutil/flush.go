package cmdutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) may close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush flushes w and maps the outcome to an exit code: code on success or
// broken pipe, 3 on any other write error (reported on stderr).
func Flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
