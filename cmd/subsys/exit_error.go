// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/subsys/internal/spawn"
)

// ExitError carries the process exit status out of a RunE handler. A nil Err
// means the failure was already reported (or belongs to a child command) and
// only the status matters.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the wrapped message, or the bare exit status.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// childExit passes a spawned command's exit code through as subsys's own.
func childExit(code spawn.ExitCode) *ExitError {
	return &ExitError{Code: exitStatus(code)}
}

// exitStatus maps a child exit code onto a process exit status.
// Signal-terminated children report 1.
func exitStatus(code spawn.ExitCode) int {
	if code < 0 {
		return 1
	}
	return int(code)
}
