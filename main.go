// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/modpad/modpad/cmd/modpad"

func main() {
	cmd.Execute()
}
