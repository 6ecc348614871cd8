// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/subsys/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/subsys/config.cue on macOS, %APPDATA%\subsys\config.cue
// on Windows), then ./config.cue. SUBSYS_* environment variables override file values.
//
// Files are validated against an embedded CUE schema (config_schema.cue); the merged
// result, environment included, is validated again by Config.IsValid.
package config
