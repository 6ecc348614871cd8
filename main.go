// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/subsys/cmd/subsys"

func main() {
	cmd.Execute()
}
