// Package debug provides stderr logging gated by the WBS_DEBUG environment
// variable. Off by default so normal CLI output stays clean.
package debug

import (
	"fmt"
	"os"
)

// Enabled reports whether debug logging is on.
func Enabled() bool {
	return os.Getenv("WBS_DEBUG") != ""
}

// Logf writes a formatted message to stderr when WBS_DEBUG is set.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
