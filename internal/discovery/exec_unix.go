//go:build unix

package discovery

import (
	"os/exec"
	"syscall"
)

// killProcessGroup makes ctx cancellation kill cmd and everything it forked
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
