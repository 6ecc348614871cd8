// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints; the Markdown catalog holds the longer guidance the CLI renders
// with glamour when a configuration or spawn fails.
package issue
