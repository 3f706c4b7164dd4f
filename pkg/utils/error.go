package utils

import (
	"fmt"
	"io"
	"os"
)

// FormatError renders err the way every fatal condition is reported on the console.
func FormatError(err error) string {
	return fmt.Sprintf("*** ERROR :: %s. Exiting.", err)
}

// Checkerr prints err and terminates the process with exitCode. A nil err is a no-op.
func Checkerr(err error, exitCode int) {
	if err == nil {
		return
	}
	Report(os.Stdout, err)
	os.Exit(exitCode)
}

// Report writes the console form of err to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, FormatError(err))
}
