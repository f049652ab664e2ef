//go:build !linux && !windows

package sysinfo

// ThreadID returns -1 on platforms without a portable thread id
func ThreadID() int {
	return -1
}
