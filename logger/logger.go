package logger

import (
	"io"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/handler/filehandler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

// callerFlags are the flags that need the call site resolved
const callerFlags = core.FlagFile | core.FlagFunc | core.FlagLine

// Logger writes records to a sink with a fixed set of flags (immutable)
type Logger struct {
	sink       handler.Sink
	flags      core.Flags
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       handler.Sink
	flags      core.Flags
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		flags:      core.FlagsAll, // Default flags
		callerSkip: 2,             // Default skip for captureCaller
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(s handler.Sink) *Builder {
	b.sink = s
	return b
}

// WithFlags sets the fields rendered in each record prefix
func (b *Builder) WithFlags(flags core.Flags) *Builder {
	b.flags = flags
	return b
}

// WithCallerSkip skips additional stack frames when resolving the call
// site. Wrappers around Logger use it to report their own caller.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = 2 + skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		sink:       b.sink,
		flags:      b.flags,
		callerSkip: b.callerSkip,
	}
}

// WithFlags creates a new Logger sharing the sink with different flags
func (l *Logger) WithFlags(flags core.Flags) *Logger {
	return &Logger{
		sink:       l.sink,
		flags:      flags,
		callerSkip: l.callerSkip,
	}
}

// Flags returns the flags applied to every record
func (l *Logger) Flags() core.Flags {
	return l.flags
}

// log is the internal logging method shared by the level methods.
// It must be called directly by them so callerSkip stays correct.
func (l *Logger) log(level core.Level, format string, args []any) {
	// Sink check - exit if no sink (avoid any work)
	if l.sink == nil {
		return
	}

	var caller core.Caller
	if l.flags&callerFlags != 0 {
		caller = core.CallerAt(l.callerSkip)
	}
	l.sink.Log(caller, level, l.flags, format, args...)
}

// Logf logs a message at the given level
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.log(level, format, args)
}

// Printf logs a message without a level token
func (l *Logger) Printf(format string, args ...any) {
	l.log(core.LevelNone, format, args)
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.log(core.DebugLevel, format, args)
}

// Infof logs an info message
func (l *Logger) Infof(format string, args ...any) {
	l.log(core.InfoLevel, format, args)
}

// Warningf logs a warning message followed by the last system error
func (l *Logger) Warningf(format string, args ...any) {
	l.log(core.WarningLevel, format, args)
}

// Criticalf logs a critical message followed by the last system error
func (l *Logger) Criticalf(format string, args ...any) {
	l.log(core.CriticalLevel, format, args)
}

// Close closes the logger's sink if it can be closed
func (l *Logger) Close() error {
	if c, ok := l.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ToFile writes one record to h, resolving the caller's location when
// flags ask for it. Nothing happens when h is nil or closed.
func ToFile(h *filehandler.FileHandler, level core.Level, flags core.Flags, format string, args ...any) {
	if h == nil {
		return
	}
	filehandler.LogToFile(captureCaller(flags, 2), h, level, flags, format, args...)
}

// ToStream writes one record to w, resolving the caller's location when
// flags ask for it. Nothing happens when w is nil.
func ToStream(w io.Writer, level core.Level, flags core.Flags, format string, args ...any) {
	streamhandler.LogToStream(captureCaller(flags, 2), w, core.Env{}, level, flags, format, args...)
}

// captureCaller resolves the frame skip levels above itself, or returns
// the zero Caller when no caller field is enabled.
func captureCaller(flags core.Flags, skip int) core.Caller {
	if flags&callerFlags == 0 {
		return core.Caller{}
	}
	return core.CallerAt(skip)
}
