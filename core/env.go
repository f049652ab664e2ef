package core

import (
	"time"

	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// Env bundles the providers a record depends on.
// A nil field means "use the default provider".
type Env struct {
	// Now returns the current local wall-clock time
	Now func() time.Time
	// ThreadID returns the id of the calling OS thread
	ThreadID func() int
	// ProcessID returns the id of the current process
	ProcessID func() int
	// LastError returns the most recent system error, or nil
	LastError func() error
}

// DefaultEnv returns an Env wired to the real providers
func DefaultEnv() Env {
	return Env{
		Now:       time.Now,
		ThreadID:  sysinfo.ThreadID,
		ProcessID: sysinfo.ProcessID,
		LastError: sysinfo.LastError,
	}
}

// WithDefaults returns a copy of e with every nil provider replaced by its default
func (e Env) WithDefaults() Env {
	d := DefaultEnv()
	if e.Now == nil {
		e.Now = d.Now
	}
	if e.ThreadID == nil {
		e.ThreadID = d.ThreadID
	}
	if e.ProcessID == nil {
		e.ProcessID = d.ProcessID
	}
	if e.LastError == nil {
		e.LastError = d.LastError
	}
	return e
}

// CoarseEnv returns DefaultEnv with Now served by the coarse clock.
// It starts the clock if it is not running yet.
func CoarseEnv() Env {
	StartCoarseClock()
	e := DefaultEnv()
	e.Now = CoarseNow
	return e
}
