// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf prints an "error: " line to dst. Errors are never suppressed by --quiet.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
