package streamhandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/handler"
)

// lockedWriter serializes Write and Flush calls on a writer that is not
// safe for concurrent use.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	if err == nil {
		if fl, ok := lw.w.(flusher); ok {
			err = fl.Flush()
		}
	}
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// StreamConfig holds configuration for a stream handler
type StreamConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Env supplies time, thread id, process id and last error (default: core.DefaultEnv)
	Env core.Env
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File; set true for
	// other goroutine-safe writers.
	ConcurrentWriter bool
}

// StreamHandler is a handler.Sink writing records to an io.Writer.
// It holds no per-record state and never closes the writer.
type StreamHandler struct {
	writer    io.Writer
	formatter *formatter.Formatter
	stats     *handler.Stats
}

var (
	_ handler.Sink          = (*StreamHandler)(nil)
	_ handler.StatsProvider = (*StreamHandler)(nil)
)

// NewStreamHandler creates a stream handler
func NewStreamHandler(cfg StreamConfig) *StreamHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	w := cfg.Writer
	if !cfg.ConcurrentWriter && !isConcurrentSafeWriter(w) {
		w = &lockedWriter{w: w}
	}
	return &StreamHandler{
		writer:    w,
		formatter: formatter.New(cfg.Env),
		stats:     handler.NewStats(),
	}
}

// Log writes one record. core.FlagRollOver is ignored.
func (h *StreamHandler) Log(caller core.Caller, level core.Level, flags core.Flags, format string, args ...any) {
	if h == nil {
		return
	}
	if writeRecord(h.formatter, h.writer, caller, level, flags, format, args) {
		h.stats.IncrementWritten()
		return
	}
	h.stats.IncrementDropped(level)
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
