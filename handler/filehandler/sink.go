package filehandler

import (
	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// Log writes one record. Nothing happens on a nil or closed handler.
// With core.FlagRollOver set the file is rotated first when it is over
// the size limit. A record that cannot be written is dropped and counted.
func (h *FileHandler) Log(caller core.Caller, level core.Level, flags core.Flags, format string, args ...any) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return
	}

	h.formatter.FormatPrefix(&h.prefix, level, flags, caller)
	if h.prefix.Truncated() {
		h.stats.IncrementTruncated()
	}

	if flags.Has(core.FlagRollOver) && !h.rotateIfNeeded() {
		h.stats.IncrementDropped(level)
		return
	}
	h.buf.Reset()
	h.formatter.AppendRecord(&h.buf, h.prefix.Bytes(), level, format, args)
	if _, err := h.file.Write(h.buf.Bytes()); err != nil {
		sysinfo.RecordError(err)
		h.stats.IncrementDropped(level)
		return
	}
	h.stats.IncrementWritten()
}

// LogToFile writes one record to h on behalf of caller
func LogToFile(caller core.Caller, h *FileHandler, level core.Level, flags core.Flags, format string, args ...any) {
	h.Log(caller, level, flags, format, args...)
}
