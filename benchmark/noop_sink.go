package benchmark

import (
	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
)

// noopSink accepts records without formatting them
type noopSink struct{}

func newNoopSink() handler.Sink {
	return noopSink{}
}

func (noopSink) Log(_ core.Caller, _ core.Level, _ core.Flags, format string, _ ...any) {
	_ = len(format)
}
