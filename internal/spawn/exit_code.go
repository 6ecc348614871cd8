// SPDX-License-Identifier: MPL-2.0

package spawn

import "strconv"

const (
	// ExitCodeSuccess is returned when the child exits cleanly.
	ExitCodeSuccess ExitCode = 0
	// ExitCodeLaunchFailure is reported when the shell itself could not be started
	// (not found, permission denied). It matches the POSIX "command not found" status.
	ExitCodeLaunchFailure ExitCode = 127
	// ExitCodeTerminated is reported for children killed by a signal or by
	// context cancellation, which carry no exit status of their own.
	ExitCodeTerminated ExitCode = -1
)

// ExitCode is a child process exit status.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitCodeSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
