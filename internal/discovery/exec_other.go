//go:build !unix

package discovery

import "os/exec"

// process groups are unix only, fall back to killing the direct child
func killProcessGroup(cmd *exec.Cmd) {}
