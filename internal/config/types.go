// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PlatformAuto picks the platform from the host environment.
	PlatformAuto PlatformName = "auto"
	// PlatformPOSIX configures generic POSIX defaults.
	PlatformPOSIX PlatformName = "posix"
	// PlatformWin32 configures a plain Windows host.
	PlatformWin32 PlatformName = "win32"
	// PlatformMinGW configures the MinGW subsystem, falling back to win32.
	PlatformMinGW PlatformName = "mingw"
	// PlatformMSYS configures the MSYS subsystem, falling back to win32.
	PlatformMSYS PlatformName = "msys"
	// PlatformMSYS2 configures the MSYS2 subsystem unconditionally.
	PlatformMSYS2 PlatformName = "msys2"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// OutputText renders human-readable styled output.
	OutputText OutputFormat = "text"
	// OutputTOML renders machine-readable TOML.
	OutputTOML OutputFormat = "toml"
)

var (
	// ErrInvalidPlatformName is returned when a PlatformName value is not recognized.
	ErrInvalidPlatformName = errors.New("invalid platform name")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidProgramName is returned when a shell or helper name is whitespace-only.
	ErrInvalidProgramName = errors.New("invalid program name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PlatformName selects the platform configurator.
	PlatformName string

	// InvalidPlatformNameError is returned when a PlatformName value is not recognized.
	// It wraps ErrInvalidPlatformName for errors.Is() compatibility.
	InvalidPlatformNameError struct {
		Value PlatformName
	}

	// LogLevel is the minimum level the CLI logs at.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// OutputFormat selects how `show` and `detect` render results.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ProgramName is an executable name or path resolved through a Locator.
	// A valid name must be non-empty and not whitespace-only.
	ProgramName string

	// InvalidProgramNameError is returned when a ProgramName is empty or whitespace-only.
	InvalidProgramNameError struct {
		Field string
		Value ProgramName
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Platform selects the platform configurator (default: auto)
		Platform PlatformName `json:"platform" mapstructure:"platform" toml:"platform"`
		// Shell is the interpreter subsystem commands run through
		Shell ProgramName `json:"shell" mapstructure:"shell" toml:"shell"`
		// PathTranslator converts subsystem paths to native ones
		PathTranslator ProgramName `json:"path_translator" mapstructure:"path_translator" toml:"path_translator"`
		// LogLevel sets the logger level
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level" toml:"log_level"`
		// OutputFormat sets the default rendering of show and detect
		OutputFormat OutputFormat `json:"output_format" mapstructure:"output_format" toml:"output_format"`
	}
)

// PlatformNames lists every valid PlatformName.
func PlatformNames() []PlatformName {
	return []PlatformName{PlatformAuto, PlatformPOSIX, PlatformWin32, PlatformMinGW, PlatformMSYS, PlatformMSYS2}
}

// String returns the string representation of the PlatformName.
func (p PlatformName) String() string { return string(p) }

// IsValid returns whether the PlatformName is one of the known platforms.
func (p PlatformName) IsValid() (bool, []error) {
	for _, known := range PlatformNames() {
		if p == known {
			return true, nil
		}
	}
	return false, []error{&InvalidPlatformNameError{Value: p}}
}

// Error implements the error interface for InvalidPlatformNameError.
func (e *InvalidPlatformNameError) Error() string {
	names := make([]string, 0, len(PlatformNames()))
	for _, n := range PlatformNames() {
		names = append(names, string(n))
	}
	return fmt.Sprintf("invalid platform %q (valid: %s)", e.Value, strings.Join(names, ", "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPlatformNameError) Unwrap() error { return ErrInvalidPlatformName }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputText, OutputTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the ProgramName.
func (n ProgramName) String() string { return string(n) }

func (n ProgramName) isValid(field string) (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidProgramNameError{Field: field, Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidProgramNameError.
func (e *InvalidProgramNameError) Error() string {
	return fmt.Sprintf("invalid %s %q: must not be empty", e.Field, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidProgramNameError) Unwrap() error { return ErrInvalidProgramName }

// IsValid returns whether every Config field is valid, and the field errors if not.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Platform.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Shell.isValid("shell"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.PathTranslator.isValid("path_translator"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.OutputFormat.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Platform:       PlatformAuto,
		Shell:          "sh",
		PathTranslator: "cygpath",
		LogLevel:       LogLevelInfo,
		OutputFormat:   OutputText,
	}
}
