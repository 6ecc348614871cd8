// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel error wrapped by ConfigurationError.
	ErrConfiguration = errors.New("platform configuration failed")
	// ErrShellNotFound is returned when the command interpreter cannot be located.
	ErrShellNotFound = errors.New("shell not found")
	// ErrUnknownPlatform is returned by Lookup for names it does not know.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// ConfigurationError is returned when a platform cannot configure a context
// because a mandatory external resource is missing. It names the resource.
type ConfigurationError struct {
	Platform string
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configure %s platform: %s: %v", e.Platform, e.Resource, e.Err)
}

// Unwrap returns ErrConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error { return []error{ErrConfiguration, e.Err} }
