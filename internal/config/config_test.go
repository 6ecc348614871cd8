// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/subsys/internal/issue"
	"github.com/invowk/subsys/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, loaded.Path)
	assert.Equal(t, DefaultConfig(), loaded.Config)
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
platform: "msys2"
shell: "bash"
`)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	require.NoError(t, err)

	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, PlatformMSYS2, loaded.Config.Platform)
	assert.Equal(t, ProgramName("bash"), loaded.Config.Shell)
	assert.Equal(t, ProgramName("cygpath"), loaded.Config.PathTranslator, "unset fields keep defaults")
	assert.Equal(t, OutputText, loaded.Config.OutputFormat)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `output_format: "toml"`)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, OutputTOML, loaded.Config.OutputFormat)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	require.Error(t, err)

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, missing, ae.Resource)
	assert.Equal(t, issue.ConfigLoadFailedId, ae.Issue)
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown platform", `platform: "cygwin"`, "platform"},
		{"unknown field", `container_engine: "docker"`, "container_engine"},
		{"wrong type", `log_level: 3`, "log_level"},
		{"blank shell", `shell: "  "`, "shell"},
		{"syntax error", `platform: "mingw`, "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var ae *issue.ActionableError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, "load configuration", ae.Operation)
			assert.True(t, ae.HasSuggestions())
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `platform: "mingw"`)

	t.Setenv("SUBSYS_PLATFORM", "msys")
	t.Setenv("SUBSYS_PATH_TRANSLATOR", `C:\msys64\usr\bin\cygpath.exe`)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	require.NoError(t, err)
	assert.Equal(t, PlatformMSYS, loaded.Config.Platform)
	assert.Equal(t, ProgramName(`C:\msys64\usr\bin\cygpath.exe`), loaded.Config.PathTranslator)
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("SUBSYS_LOG_LEVEL", "loud")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidLogLevel)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path, err := CreateDefaultConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.cue"), path)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded.Config)

	// An existing file is left alone.
	require.NoError(t, os.WriteFile(path, []byte(`platform: "posix"`), 0o644))
	_, err = CreateDefaultConfig(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `platform: "posix"`, string(data))
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid, errs := DefaultConfig().IsValid()
	assert.True(t, valid)
	assert.Empty(t, errs)

	cfg := Config{Platform: "cygwin", Shell: " ", PathTranslator: "cygpath", LogLevel: "info", OutputFormat: "json"}
	valid, errs = cfg.IsValid()
	require.False(t, valid)
	require.Len(t, errs, 1)

	var invalid *InvalidConfigError
	require.ErrorAs(t, errs[0], &invalid)
	assert.Len(t, invalid.FieldErrors, 3)
	assert.True(t, errors.Is(errs[0], ErrInvalidPlatformName))
	assert.True(t, errors.Is(errs[0], ErrInvalidProgramName))
	assert.True(t, errors.Is(errs[0], ErrInvalidOutputFormat))
	assert.False(t, errors.Is(errs[0], ErrInvalidLogLevel))
}

func TestInvalidPlatformNameError_ListsValidNames(t *testing.T) {
	t.Parallel()

	err := &InvalidPlatformNameError{Value: "cygwin"}
	assert.Equal(t, `invalid platform "cygwin" (valid: auto, posix, win32, mingw, msys, msys2)`, err.Error())
}

func TestLoad_WorkingDirectoryFallback(t *testing.T) {
	wd := t.TempDir()
	writeConfig(t, wd, `log_level: "debug"`)
	testutil.MustChdir(t, wd)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "config.cue", loaded.Path)
	assert.Equal(t, LogLevelDebug, loaded.Config.LogLevel)
}
