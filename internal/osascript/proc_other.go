//go:build !unix

package osascript

import "os/exec"

// configureProcess keeps exec.CommandContext's default kill of the child.
func configureProcess(cmd *exec.Cmd) {}
