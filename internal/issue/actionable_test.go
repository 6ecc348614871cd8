// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "configure msys2 platform"},
			expected: "failed to configure msys2 platform",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "configure mingw platform",
				Resource:  `shell "sh"`,
			},
			expected: `failed to configure mingw platform: shell "sh"`,
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("unexpected token"),
			},
			expected: "failed to load configuration: unexpected token",
		},
		{
			name: "all fields",
			err: &ActionableError{
				Operation: "configure mingw platform",
				Resource:  `path translation helper "cygpath"`,
				Cause:     errors.New("exit status 1"),
			},
			expected: `failed to configure mingw platform: path translation helper "cygpath": exit status 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	sentinel := errors.New("shell not found")
	err := NewErrorContext().
		WithOperation("configure mingw platform").
		WithResource(`shell "sh"`).
		Wrap(sentinel).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if errors.Unwrap(err) != sentinel {
		t.Error("Unwrap() should return the cause")
	}
}

type multiCause struct{ errs []error }

func (m multiCause) Error() string   { return "configure: several causes" }
func (m multiCause) Unwrap() []error { return m.errs }

func TestActionableError_Format(t *testing.T) {
	notFound := errors.New(`executable "sh" not found`)
	sentinel := errors.New("configuration failed")
	err := &ActionableError{
		Operation:   "configure mingw platform",
		Resource:    `shell "sh"`,
		Suggestions: []string{"Run the build from an MSYS2 terminal", "Set shell in the configuration"},
		Cause:       fmt.Errorf("resolve: %w", multiCause{errs: []error{sentinel, notFound}}),
	}

	plain := err.Format(false)
	for _, want := range []string{
		"failed to configure mingw platform",
		"• Run the build from an MSYS2 terminal",
		"• Set shell in the configuration",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("Format(false) missing %q in:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	for _, want := range []string{
		"Error chain:",
		"1. resolve: configure: several causes",
		"2. configure: several causes",
		"3. configuration failed",
		`4. executable "sh" not found`,
	} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q in:\n%s", want, verbose)
		}
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true for no suggestions")
	}
	if !(&ActionableError{Operation: "x", Suggestions: []string{"y"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with a suggestion")
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	ctx := NewErrorContext().
		WithOperation("run command").
		WithResource("gcc -c main.c").
		WithSuggestion("Check the configured shell").
		WithSuggestion("Run 'subsys show'").
		WithIssue(SpawnFailedId).
		Wrap(cause)
	err := ctx.Build()

	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "run command" || err.Resource != "gcc -c main.c" {
		t.Errorf("unexpected operation/resource: %q / %q", err.Operation, err.Resource)
	}
	if len(err.Suggestions) != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", len(err.Suggestions))
	}
	if err.Cause != cause {
		t.Error("Cause not set")
	}
	if got := err.CatalogIssue(); got == nil || got.Id() != SpawnFailedId {
		t.Errorf("CatalogIssue() = %v, want SpawnFailed", got)
	}

	// Later additions to the builder do not leak into built errors.
	ctx.WithSuggestion("Check PATH")
	if len(err.Suggestions) != 2 {
		t.Errorf("built error changed after builder reuse: %v", err.Suggestions)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return a nil error")
	}
}

func TestActionableError_NoCatalogIssue(t *testing.T) {
	err := NewErrorContext().WithOperation("load configuration").Build()
	if err.CatalogIssue() != nil {
		t.Error("CatalogIssue() should be nil when no issue is linked")
	}
}
