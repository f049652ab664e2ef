package sysinfo

import (
	"errors"
	"sync/atomic"
	"syscall"
)

// successDescription is what strerror(0) reports
const successDescription = "Success"

type errBox struct{ err error }

var lastErr atomic.Pointer[errBox]

// RecordError stores err as the last system error. A nil err clears it.
func RecordError(err error) {
	if err == nil {
		lastErr.Store(nil)
		return
	}
	lastErr.Store(&errBox{err: err})
}

// LastError returns the last recorded system error, or nil
func LastError() error {
	if b := lastErr.Load(); b != nil {
		return b.err
	}
	return nil
}

// Describe renders err the way strerror would: the errno text when err
// wraps a syscall.Errno, err.Error() otherwise, and "Success" for nil.
func Describe(err error) string {
	if err == nil {
		return successDescription
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return successDescription
		}
		return errno.Error()
	}
	return err.Error()
}
