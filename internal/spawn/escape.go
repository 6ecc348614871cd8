// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// QuotePOSIX quotes arg for a POSIX shell. Words that need no quoting are
// returned unchanged.
func QuotePOSIX(arg string) string {
	quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
	if err != nil {
		// Control characters cannot be expressed in POSIX quoting; fall back to
		// single quotes, which keep every byte literal.
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return quoted
}

// QuoteCmd quotes arg for cmd.exe when it contains whitespace. A trailing
// backslash is doubled so it does not escape the closing quote.
func QuoteCmd(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t") {
		return arg
	}
	if strings.HasSuffix(arg, `\`) {
		arg += `\`
	}
	return `"` + arg + `"`
}
