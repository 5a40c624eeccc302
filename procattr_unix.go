//go:build !windows

package wkhtml

import (
	"os/exec"
	"syscall"
)

// setProcAttr places the child in its own process group so cancellation
// can kill the renderer together with any helper processes it spawns.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
