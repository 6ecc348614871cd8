// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"errors"
	"fmt"
)

// ErrLaunch is the sentinel error wrapped by LaunchError.
var ErrLaunch = errors.New("failed to launch shell")

// LaunchError is returned when the shell process could not be started. The
// shell's own failures are reported through its exit code, never as a LaunchError.
type LaunchError struct {
	Shell string
	Err   error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch shell %q: %v", e.Shell, e.Err)
}

// Unwrap returns ErrLaunch and the underlying cause.
func (e *LaunchError) Unwrap() []error { return []error{ErrLaunch, e.Err} }
