// SPDX-License-Identifier: MPL-2.0

// Package toolchain resolves the binary directories of the active subsystem
// toolchain. Several MSYS2 environments (ucrt64, mingw64, clang64, ...) usually sit
// side by side under one installation; the resolver must return the directories of
// the one the build was started from, never a guess that may pick up binaries from
// another.
package toolchain
