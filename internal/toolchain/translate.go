// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTranslator is the helper that converts subsystem paths to native ones.
const DefaultTranslator = "cygpath"

// ErrPathResolution is the sentinel error wrapped by PathResolutionError.
var ErrPathResolution = errors.New("path resolution failed")

type (
	// Translator converts subsystem paths ("/usr/bin") into native Windows paths by
	// running an external helper as `<helper> -w <path>`.
	Translator struct {
		Locator Locator
		// Helper is the helper executable name; empty means DefaultTranslator.
		Helper string
	}

	// PathResolutionError is returned when the helper is missing, fails, or prints
	// nothing. It is fatal: continuing with a wrong path would let builds pick up
	// binaries from an unintended installation.
	PathResolutionError struct {
		Helper string
		Path   string
		Stderr string
		Err    error
	}
)

// NewTranslator creates a Translator using locator to find helper.
func NewTranslator(locator Locator, helper string) *Translator {
	return &Translator{Locator: locator, Helper: helper}
}

// ToNative returns the native path for posixPath.
func (t *Translator) ToNative(ctx context.Context, posixPath string) (string, error) {
	helper := t.helper()

	exe, err := t.Locator.Locate(helper)
	if err != nil {
		return "", &PathResolutionError{Helper: helper, Path: posixPath, Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, "-w", posixPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &PathResolutionError{
			Helper: helper,
			Path:   posixPath,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	native := strings.TrimSpace(stdout.String())
	if native == "" {
		return "", &PathResolutionError{Helper: helper, Path: posixPath, Err: errors.New("helper printed no path")}
	}
	return native, nil
}

func (t *Translator) helper() string {
	if t.Helper == "" {
		return DefaultTranslator
	}
	return t.Helper
}

// Error implements the error interface.
func (e *PathResolutionError) Error() string {
	msg := fmt.Sprintf("%s -w %s: %v", e.Helper, e.Path, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns ErrPathResolution and the underlying cause.
func (e *PathResolutionError) Unwrap() []error { return []error{ErrPathResolution, e.Err} }
