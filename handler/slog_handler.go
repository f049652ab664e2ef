package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philipp01105/tinylog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Sink.
// This allows code written against log/slog to write through tinylog sinks.
// Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	sink  Sink
	flags core.Flags
	level slog.Leveler
	attrs string
	group string
}

// NewSlogHandler creates a new slog.Handler adapter writing to s with the given flags.
// If opts.Level is set, records below it are discarded by slog before reaching s.
func NewSlogHandler(s Sink, flags core.Flags, opts *slog.HandlerOptions) *SlogHandler {
	h := &SlogHandler{
		sink:  s,
		flags: flags,
	}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if s.level == nil {
		return true
	}
	return level >= s.level.Level()
}

// Handle renders the record message and attributes and passes them to the sink.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})

	s.sink.Log(core.CallerFromPC(record.PC), slogLevelToCore(record.Level), s.flags, "%s", sb.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	clone := *s
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.CriticalLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", prefixing the key with the group path.
// Group attributes are flattened into dotted keys.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		return strconv.Quote(s)
	}
	return s
}
