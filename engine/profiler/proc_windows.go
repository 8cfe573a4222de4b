//go:build profile && windows

package profiler

import "syscall"

// keep speedscope from flashing a console window
func viewerAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
