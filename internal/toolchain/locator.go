// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotFound is the sentinel error wrapped by NotFoundError.
var ErrNotFound = errors.New("executable not found")

type (
	// Locator finds an executable by name.
	Locator interface {
		Locate(name string) (string, error)
	}

	// LocatorFunc adapts a function to the Locator interface.
	LocatorFunc func(name string) (string, error)

	// PathLocator looks executables up on the process PATH, or checks the file
	// directly when name contains a path separator.
	PathLocator struct{}

	// StaticLocator maps names to fixed paths.
	StaticLocator map[string]string

	// NotFoundError is returned when a Locator cannot find name.
	NotFoundError struct {
		Name string
		Err  error
	}
)

// Locate implements Locator.
func (f LocatorFunc) Locate(name string) (string, error) { return f(name) }

// Locate implements Locator.
func (PathLocator) Locate(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &NotFoundError{Name: name, Err: err}
	}
	return path, nil
}

// Locate implements Locator.
func (s StaticLocator) Locate(name string) (string, error) {
	if path, ok := s[name]; ok && path != "" {
		return path, nil
	}
	return "", &NotFoundError{Name: name}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("executable %q not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("executable %q not found", e.Name)
}

// Unwrap returns ErrNotFound so callers can use errors.Is for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Chain tries each locator in order and returns the first hit.
func Chain(locators ...Locator) Locator {
	return LocatorFunc(func(name string) (string, error) {
		var lastErr error = &NotFoundError{Name: name}
		for _, l := range locators {
			path, err := l.Locate(name)
			if err == nil {
				return path, nil
			}
			lastErr = err
		}
		return "", lastErr
	})
}
