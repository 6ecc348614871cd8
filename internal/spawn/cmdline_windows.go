// SPDX-License-Identifier: MPL-2.0

//go:build windows

package spawn

import (
	"os/exec"
	"syscall"
)

// prepareCommandLine passes the line to cmd.exe verbatim. Go's default argument
// escaping uses \" which cmd.exe does not understand.
func prepareCommandLine(cmd *exec.Cmd, sh, flag, line string) {
	if flag != "/C" {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: syscall.EscapeArg(sh) + " " + flag + " " + line,
	}
}
