// Package cli provides the command-line interface: the vault/open/close/
// create subcommands, password prompting, and result reporting.
package cli

import (
	"fmt"
	"os"
)

// printSuccess prints a one-line confirmation to stderr, matching the
// teacher's PrintSuccess convention. The vault core has no progress
// signal to report (spec.md §5: single-threaded, synchronous, no
// suspension points), so unlike the teacher's Reporter this carries no
// progress bar or cancellation state — just the final result line.
func printSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
