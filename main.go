// SPDX-License-Identifier: MPL-2.0

// crdetect reports which container engine (Docker or Podman) is installed
// and usable on the host, and whether it runs in rootless mode.
package main

import (
	cmd "crdetect/cmd/crdetect"
)

func main() {
	cmd.Execute()
}
