// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package spawn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failIfCalled(t *testing.T) EscapeFunc {
	return func(string) string {
		t.Error("escape function must not be called")
		return ""
	}
}

func TestSpawn_EchoHi(t *testing.T) {
	t.Parallel()

	code, err := Spawn(context.Background(), "/bin/sh", failIfCalled(t), "ignored", []string{"echo", "hi"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ExitCodeSuccess, code)
}

func TestSpawnCapture_EchoHi(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code, err := SpawnCapture(context.Background(), "/bin/sh", failIfCalled(t), "ignored",
		[]string{"echo", "hi"}, map[string]string{}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSpawnCapture_ShellSemantics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		env        map[string]string
		wantCode   ExitCode
		wantStdout string
		wantStderr string
	}{
		{
			name:       "variable expansion uses the given env",
			args:       []string{"echo", "$GREETING"},
			env:        map[string]string{"GREETING": "hello"},
			wantStdout: "hello\n",
		},
		{
			name:       "command chaining",
			args:       []string{"echo", "a", "&&", "echo", "b"},
			wantStdout: "a\nb\n",
		},
		{
			name:       "pipes",
			args:       []string{"printf", "'x\\ny\\n'", "|", "wc", "-l"},
			env:        map[string]string{"PATH": "/usr/bin:/bin"},
			wantStdout: "2\n",
		},
		{
			name:       "stderr is separated",
			args:       []string{"echo", "oops", ">&2"},
			wantStderr: "oops\n",
		},
		{
			name:     "shell exit status is reported, not an error",
			args:     []string{"exit", "3"},
			wantCode: 3,
		},
		{
			name:     "unknown command is the shell's failure",
			args:     []string{"definitely-not-a-command-xyz"},
			wantCode: 127,
		},
		{
			name:       "parent environment is not inherited",
			args:       []string{"echo", "${HOME:-unset}"},
			wantStdout: "unset\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code, err := SpawnCapture(context.Background(), "/bin/sh", nil, tt.args[0], tt.args, tt.env, &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			if tt.wantStderr != "" {
				assert.Equal(t, tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestSpawn_LaunchFailure(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no-such-shell")
	code, err := Spawn(context.Background(), missing, nil, "echo", []string{"echo", "hi"}, nil)

	assert.Equal(t, ExitCodeLaunchFailure, code)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLaunch)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, missing, launchErr.Shell)
}

func TestSpawnCapture_EmptyShell(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code, err := SpawnCapture(context.Background(), "", nil, "echo", []string{"echo"}, nil, &out, &out)
	assert.Equal(t, ExitCodeLaunchFailure, code)
	assert.ErrorIs(t, err, ErrLaunch)
}

func TestSpawn_NotFoundInPath(t *testing.T) {
	t.Parallel()

	_, err := Spawn(context.Background(), "no-such-shell-on-path", nil, "echo", []string{"echo"}, nil)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestSpawnCapture_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	code, err := SpawnCapture(ctx, "/bin/sh", nil, "sleep", []string{"sleep", "5"},
		map[string]string{"PATH": "/usr/bin:/bin"}, &out, &out)
	require.NoError(t, err)
	assert.Equal(t, ExitCodeTerminated, code)
}

func TestEscapedSpawnCapture(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	code, err := EscapedSpawnCapture(context.Background(), "/bin/sh", QuotePOSIX, "echo",
		[]string{"echo", "a  b", "$HOME"}, nil, &stdout, &stdout)

	require.NoError(t, err)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "a  b $HOME\n", stdout.String())
}

func TestSpawnCapture_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 8
	var wg sync.WaitGroup
	outputs := make([]string, workers)
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var stdout bytes.Buffer
			_, errs[i] = SpawnCapture(context.Background(), "/bin/sh", nil, "echo",
				[]string{"echo", fmt.Sprint(i)}, nil, &stdout, &stdout)
			outputs[i] = stdout.String()
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("%d\n", i), outputs[i])
	}
}

func TestExtractExitCode(t *testing.T) {
	t.Parallel()

	code, err := extractExitCode("sh", nil)
	assert.Equal(t, ExitCodeSuccess, code)
	require.NoError(t, err)

	cause := errors.New("permission denied")
	code, err = extractExitCode("sh", cause)
	assert.Equal(t, ExitCodeLaunchFailure, code)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrLaunch)
}

// stdinFrom replaces os.Stdin with a pipe holding content for the rest of the test.
// Tests using it must not run in parallel.
func stdinFrom(t *testing.T, content string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	original := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = original
		_ = r.Close()
	})
}

func TestCapturingSpawners_InheritStdin(t *testing.T) {
	args := []string{"read", "x;", "echo", "got=$x"}
	spawners := map[string]PipeSpawnFunc{
		"SpawnCapture":        SpawnCapture,
		"EscapedSpawnCapture": EscapedSpawnCapture,
	}

	for name, fn := range spawners {
		t.Run(name, func(t *testing.T) {
			stdinFrom(t, "fromparent\n")

			var stdout, stderr bytes.Buffer
			// A nil escape keeps the words as written for the escaped spawner too.
			code, err := fn(context.Background(), "/bin/sh", nil, "read", args, nil, &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, ExitCodeSuccess, code)
			assert.Equal(t, "got=fromparent\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}
