//go:build windows

package wkhtml

import "os/exec"

// setProcAttr is a no-op on Windows; cancellation uses taskkill /T for
// tree termination instead of process groups.
func setProcAttr(_ *exec.Cmd) {}
