// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable POSIX shell script named name into dir and
// returns its path. body is appended after the "#!/bin/sh" line.
func WriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
	return path
}

// FakeCygpath writes a cygpath stand-in that prints native for any `-w` request
// and exits with status 2 for anything else.
func FakeCygpath(t testing.TB, dir, native string) string {
	t.Helper()
	return WriteScript(t, dir, "cygpath", `if [ "$1" = "-w" ]; then
  printf '%s\n' '`+native+`'
  exit 0
fi
echo "unsupported: $*" >&2
exit 2`)
}
