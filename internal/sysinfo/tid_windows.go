//go:build windows

package sysinfo

import "golang.org/x/sys/windows"

// ThreadID returns the id of the calling OS thread.
// Goroutines may migrate between threads between calls.
func ThreadID() int {
	return int(windows.GetCurrentThreadId())
}
