package handler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tinylog/core"
)

// ZapCore adapts a Sink to zapcore.Core so zap loggers can write through
// tinylog sinks. Fields are appended to the message as key=value pairs
// in key order.
type ZapCore struct {
	zapcore.LevelEnabler
	sink   Sink
	flags  core.Flags
	fields []zapcore.Field
}

// NewZapCore creates a zap core writing to s with the given flags.
// A nil enabler enables every level.
func NewZapCore(s Sink, flags core.Flags, enab zapcore.LevelEnabler) *ZapCore {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &ZapCore{
		LevelEnabler: enab,
		sink:         s,
		flags:        flags,
	}
}

// With returns a copy of the core carrying additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds the core to ce when the entry level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and passes it to the sink. It never fails.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Message
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		msg = appendZapFields(msg, enc.Fields)
	}

	var caller core.Caller
	if ent.Caller.Defined {
		caller = core.Caller{
			File:     ent.Caller.File,
			Function: core.ShortFunction(ent.Caller.Function),
			Line:     ent.Caller.Line,
		}
	}

	c.sink.Log(caller, zapLevelToCore(ent.Level), c.flags, "%s", msg)
	return nil
}

// Sync is a no-op: sinks write synchronously.
func (c *ZapCore) Sync() error {
	return nil
}

func appendZapFields(msg string, fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(quoteIfNeeded(fmt.Sprint(fields[k])))
	}
	return sb.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.CriticalLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
