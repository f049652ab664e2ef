package sysinfo

import "os"

// ProcessID returns the current process id
func ProcessID() int {
	return os.Getpid()
}
