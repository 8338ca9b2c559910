//go:build !windows

// Package process starts renderer subprocesses in their own process group
// and kills the whole group on timeout.
package process

import (
	"os/exec"
	"syscall"
)

// SetNewGroup makes cmd the leader of a new process group.
func SetNewGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillProcessGroup sends SIGKILL to the process group led by pid.
func KillProcessGroup(pid int) {
	// Best effort: the leader may already have exited.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
