// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package spawn

import "os/exec"

func prepareCommandLine(*exec.Cmd, string, string, string) {}
