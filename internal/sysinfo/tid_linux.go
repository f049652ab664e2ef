//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

// ThreadID returns the kernel id of the calling OS thread.
// Goroutines may migrate between threads between calls.
func ThreadID() int {
	return unix.Gettid()
}
