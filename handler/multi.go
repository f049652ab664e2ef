package handler

import (
	"errors"
	"io"

	"github.com/philipp01105/tinylog/core"
)

// MultiSink sends each record to multiple sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink. Nil sinks are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Log forwards the record to every sink in order.
// Each sink applies the flags it understands; stream sinks ignore RollOver.
func (m *MultiSink) Log(caller core.Caller, level core.Level, flags core.Flags, format string, args ...any) {
	for _, s := range m.sinks {
		s.Log(caller, level, flags, format, args...)
	}
}

// Len returns the number of sinks
func (m *MultiSink) Len() int {
	return len(m.sinks)
}

// Close closes every sink that implements io.Closer
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
