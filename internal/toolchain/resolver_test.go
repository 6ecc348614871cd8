// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package toolchain

// Tests that write helper scripts do not run in parallel: a concurrent fork can
// hold the script open for writing and make exec fail with ETXTBSY.

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/testutil"
)

func TestResolver_WithInstallationRoot(t *testing.T) {
	dir := t.TempDir()
	cygpath := testutil.FakeCygpath(t, dir, `C:\msys64\usr\bin`)
	r := NewResolver(NewTranslator(StaticLocator{"cygpath": cygpath}, ""))

	env := hostenv.FromMap(map[string]string{
		"MSYSTEM":      "UCRT64",
		"MINGW_PREFIX": "/c/msys64/ucrt64",
	})

	got, err := r.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.False(t, got.Legacy)
	assert.Equal(t, "/c/msys64/ucrt64", got.Root)
	assert.Equal(t, []string{filepath.Join("/c/msys64/ucrt64", "bin"), `C:\msys64\usr\bin`}, got.Paths)
}

func TestResolver_LegacyFallbackSkipsHelper(t *testing.T) {
	t.Parallel()

	called := false
	locator := LocatorFunc(func(string) (string, error) {
		called = true
		return "", &NotFoundError{Name: "cygpath"}
	})
	r := NewResolver(NewTranslator(locator, ""))

	got, err := r.Resolve(context.Background(), hostenv.FromMap(map[string]string{"MSYSTEM": "MINGW64"}))
	require.NoError(t, err)
	assert.False(t, called, "helper must not be located without an installation root")
	assert.True(t, got.Legacy)
	assert.Equal(t, []string{`C:\msys64\bin`, `C:\msys\bin`}, got.Paths)
}

func TestResolver_HelperMissingIsFatal(t *testing.T) {
	t.Parallel()

	r := NewResolver(NewTranslator(StaticLocator{}, ""))
	_, err := r.Resolve(context.Background(), hostenv.FromMap(map[string]string{"MINGW_PREFIX": `C:\msys64\mingw64`}))

	require.ErrorIs(t, err, ErrPathResolution)
	require.ErrorIs(t, err, ErrNotFound)

	var pre *PathResolutionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "cygpath", pre.Helper)
	assert.Equal(t, "/usr/bin", pre.Path)
}

func TestResolver_HelperFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	failing := testutil.WriteScript(t, dir, "cygpath", "echo 'cannot convert' >&2\nexit 1")
	r := NewResolver(NewTranslator(StaticLocator{"cygpath": failing}, ""))

	_, err := r.Resolve(context.Background(), hostenv.FromMap(map[string]string{"MINGW_PREFIX": `C:\msys64\clang64`}))
	require.ErrorIs(t, err, ErrPathResolution)
	assert.Contains(t, err.Error(), "cannot convert")
}

func TestTranslator_EmptyOutputIsFatal(t *testing.T) {
	dir := t.TempDir()
	silent := testutil.WriteScript(t, dir, "cygpath", "exit 0")
	tr := NewTranslator(StaticLocator{"cygpath": silent}, "")

	_, err := tr.ToNative(context.Background(), "/usr/bin")
	require.ErrorIs(t, err, ErrPathResolution)
}

func TestTranslator_CustomHelper(t *testing.T) {
	dir := t.TempDir()
	helper := testutil.FakeCygpath(t, dir, `D:\tools\usr\bin`)
	tr := NewTranslator(StaticLocator{"my-cygpath": helper}, "my-cygpath")

	got, err := tr.ToNative(context.Background(), "/usr/bin")
	require.NoError(t, err)
	assert.Equal(t, `D:\tools\usr\bin`, got)
}

func TestLegacyPaths_FreshSlice(t *testing.T) {
	t.Parallel()

	a := LegacyPaths()
	a[0] = "mutated"
	assert.Equal(t, `C:\msys64\bin`, LegacyPaths()[0])
}
