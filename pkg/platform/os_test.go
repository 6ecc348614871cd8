// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestIsExecutableExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"exe lowercase", "gcc.exe", true},
		{"exe uppercase", "GCC.EXE", true},
		{"batch file", "build.bat", true},
		{"cmd script", "vcvars.Cmd", true},
		{"com file", "more.com", true},
		{"dll", "zlib1.dll", false},
		{"no extension", "sh", false},
		{"extension in middle", "a.exe.txt", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsExecutableExt(tt.input); got != tt.expected {
				t.Errorf("IsExecutableExt(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
