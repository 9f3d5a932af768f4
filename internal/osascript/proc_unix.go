//go:build unix

package osascript

import (
	"os/exec"
	"syscall"
)

// configureProcess starts the child in its own process group so a timeout
// kills anything it spawned as well.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
