package handler

import (
	"github.com/philipp01105/tinylog/core"
)

// Sink is a best-effort log destination.
//
// Log never reports failure: a record that cannot be written is
// dropped and accounted in the sink's Stats. Only opening a
// destination can fail, and that happens before a Sink exists.
type Sink interface {
	// Log formats and writes one record. format and args follow fmt.Sprintf.
	Log(caller core.Caller, level core.Level, flags core.Flags, format string, args ...any)
}

// StatsProvider is implemented by sinks that keep write statistics
type StatsProvider interface {
	Stats() Snapshot
}
